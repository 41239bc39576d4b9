package settings

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/nnonaka/KeePassium/internal/events"
	"github.com/nnonaka/KeePassium/internal/passgen"
	"github.com/nnonaka/KeePassium/internal/store"
)

// One slot per key. The slot carries the key's documented default and
// its raw encoding; the accessor methods below are the public surface.
var (
	settingsVersion         = intSlot(KeySettingsVersion, 0)
	filesSortOrder          = enumSlot(KeyFilesSortOrder, FilesSortNone, FilesSortOrder.Valid)
	backupFilesVisible      = boolSlot(KeyBackupFilesVisible, false)
	rememberDatabaseKey     = boolSlot(KeyRememberDatabaseKey, true)
	keepKeyFileAssociations = boolSlot(KeyKeepKeyFileAssociations, true)
	appLockEnabled          = boolSlot(KeyAppLockEnabled, false)
	biometricAppLock        = boolSlot(KeyBiometricAppLockEnabled, true)
	lockAllOnFailedPasscode = boolSlot(KeyLockAllDatabasesOnFailedPasscode, true)
	appLockTimeout          = enumSlot(KeyAppLockTimeout, AppLockImmediately, AppLockTimeout.Valid)
	databaseLockTimeout     = enumSlot(KeyDatabaseLockTimeout, DatabaseLockAfter1Hour, DatabaseLockTimeout.Valid)
	clipboardTimeout        = enumSlot(KeyClipboardTimeout, ClipboardAfter1Minute, ClipboardTimeout.Valid)
	startWithSearch         = boolSlot(KeyStartWithSearch, false)
	groupSortOrder          = enumSlot(KeyGroupSortOrder, GroupSortNone, GroupSortOrder.Valid)
	entryListDetail         = enumSlot(KeyEntryListDetail, EntryDetailUserName, EntryListDetail.Valid)
	entryViewerPage         = intSlot(KeyEntryViewerPage, 0)
	backupDatabaseOnSave    = boolSlot(KeyBackupDatabaseOnSave, true)
	backupKeepingDuration   = enumSlot(KeyBackupKeepingDuration, BackupKeepForever, BackupKeepingDuration.Valid)
	autoFillFinishedOK      = boolSlot(KeyAutoFillFinishedOK, true)
	copyTOTPOnAutoFill      = boolSlot(KeyCopyTOTPOnAutoFill, true)
	passGenLength           = intSlot(KeyPasswordGeneratorLength, passgen.DefaultLength)
	passGenLowerCase        = boolSlot(KeyPasswordGeneratorIncludeLowerCase, true)
	passGenUpperCase        = boolSlot(KeyPasswordGeneratorIncludeUpperCase, true)
	passGenSpecials         = boolSlot(KeyPasswordGeneratorIncludeSpecials, true)
	passGenDigits           = boolSlot(KeyPasswordGeneratorIncludeDigits, true)
	passGenLookAlike        = boolSlot(KeyPasswordGeneratorIncludeLookAlike, false)
	passcodeKeyboardType    = enumSlot(KeyPasscodeKeyboardType, PasscodeKeyboardNumeric, PasscodeKeyboardType.Valid)
)

// Options configures construction-time behaviour that cannot be derived
// from the store itself.
type Options struct {
	// TestEnvironment marks sandbox/beta installs, where first-launch
	// detection must not fire. Supplied by the platform bootstrap.
	TestEnvironment bool
}

// Settings is the single authoritative read/write path for every user
// preference. Construct one per process over the shared backing store
// and pass it to consumers; there is no package-level instance.
type Settings struct {
	backing store.Backing
	bus     *events.Bus[Key]

	// firstLaunch is fixed at construction: initialization may write a
	// version marker right after, so re-deriving later would lie.
	firstLaunch bool
}

// Open constructs a Settings over the shared backing store.
func Open(b store.Backing, opts Options) *Settings {
	s := &Settings{
		backing: b,
		bus:     events.NewBus[Key](),
	}
	_, hasVersion := s.read(KeySettingsVersion)
	s.firstLaunch = !hasVersion && !opts.TestEnvironment
	return s
}

// Notifier is the change bus; every published event is the key of a
// setting whose effective value just changed in this process.
func (s *Settings) Notifier() *events.Bus[Key] {
	return s.bus
}

// Subscribe registers handler for change notifications. Shorthand for
// Notifier().Subscribe.
func (s *Settings) Subscribe(handler func(Key)) *events.Subscription[Key] {
	return s.bus.Subscribe(handler)
}

// read returns the raw stored value. Store-level read failures degrade
// to "absent" with a diagnostic; the caller falls back to the default.
func (s *Settings) read(key Key) (string, bool) {
	raw, ok, err := s.backing.Get(string(key))
	if err != nil {
		log.Printf("settings: read %s: %v", key, err)
		return "", false
	}
	return raw, ok
}

func (s *Settings) write(key Key, raw string) {
	if err := s.backing.Set(string(key), raw); err != nil {
		log.Printf("settings: write %s: %v", key, err)
	}
}

func (s *Settings) remove(key Key) {
	if err := s.backing.Delete(string(key)); err != nil {
		log.Printf("settings: delete %s: %v", key, err)
	}
}

// ─── Version & first launch ───────────────────────────────────────────────

// SettingsVersion is the persisted schema version, for external
// migration code. 0 means nothing was ever migrated.
func (s *Settings) SettingsVersion() int     { return settingsVersion.get(s) }
func (s *Settings) SetSettingsVersion(v int) { settingsVersion.set(s, v) }

// IsFirstLaunch reports whether no version marker had ever been
// persisted when this instance was constructed. Fixed for the lifetime
// of the instance.
func (s *Settings) IsFirstLaunch() bool { return s.firstLaunch }

// FirstLaunchTimestamp returns when the app first ran. The first read
// that finds nothing stored writes the current time; every later read,
// including after restart, returns that persisted value.
func (s *Settings) FirstLaunchTimestamp() time.Time {
	if raw, ok := s.read(KeyFirstLaunchTimestamp); ok {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return time.Unix(n, 0)
		}
	}
	now := time.Now()
	s.write(KeyFirstLaunchTimestamp, strconv.FormatInt(now.Unix(), 10))
	return time.Unix(now.Unix(), 0)
}

// ─── User activity ────────────────────────────────────────────────────────

// RecentUserActivityTimestamp is the last recorded user interaction;
// now when nothing was recorded yet.
func (s *Settings) RecentUserActivityTimestamp() time.Time {
	if raw, ok := s.read(KeyRecentUserActivityTimestamp); ok {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return time.Unix(n, 0)
		}
	}
	return time.Now()
}

// SetRecentUserActivityTimestamp records a user interaction. Writes are
// coalesced at whole-second granularity: a timestamp within the same
// second as the stored one is dropped without a write or notification,
// bounding write frequency under rapid activity.
func (s *Settings) SetRecentUserActivityTimestamp(t time.Time) {
	if raw, ok := s.read(KeyRecentUserActivityTimestamp); ok {
		if stored, err := strconv.ParseInt(raw, 10, 64); err == nil && stored == t.Unix() {
			return
		}
	}
	s.write(KeyRecentUserActivityTimestamp, strconv.FormatInt(t.Unix(), 10))
	s.bus.Publish(KeyRecentUserActivityTimestamp)
}

// ─── File list ────────────────────────────────────────────────────────────

func (s *Settings) FilesSortOrder() FilesSortOrder     { return filesSortOrder.get(s) }
func (s *Settings) SetFilesSortOrder(v FilesSortOrder) { filesSortOrder.set(s, v) }

func (s *Settings) BackupFilesVisible() bool     { return backupFilesVisible.get(s) }
func (s *Settings) SetBackupFilesVisible(v bool) { backupFilesVisible.set(s, v) }

// StartupDatabase is the database to open automatically on launch, nil
// when none is configured.
func (s *Settings) StartupDatabase() *FileRef {
	raw, ok := s.read(KeyStartupDatabase)
	if !ok {
		return nil
	}
	var ref FileRef
	if err := json.Unmarshal([]byte(raw), &ref); err != nil {
		return nil
	}
	return &ref
}

// SetStartupDatabase sets the database to open on launch; nil clears it.
func (s *Settings) SetStartupDatabase(ref *FileRef) {
	old := s.StartupDatabase()
	if ref == nil {
		s.remove(KeyStartupDatabase)
	} else {
		data, err := json.Marshal(ref)
		if err != nil {
			log.Printf("settings: encode %s: %v", KeyStartupDatabase, err)
			return
		}
		s.write(KeyStartupDatabase, string(data))
	}
	if !refsEqual(old, ref) {
		s.bus.Publish(KeyStartupDatabase)
	}
}

func (s *Settings) RememberDatabaseKey() bool     { return rememberDatabaseKey.get(s) }
func (s *Settings) SetRememberDatabaseKey(v bool) { rememberDatabaseKey.set(s, v) }

// ─── App lock ─────────────────────────────────────────────────────────────

func (s *Settings) AppLockEnabled() bool     { return appLockEnabled.get(s) }
func (s *Settings) SetAppLockEnabled(v bool) { appLockEnabled.set(s, v) }

func (s *Settings) BiometricAppLockEnabled() bool     { return biometricAppLock.get(s) }
func (s *Settings) SetBiometricAppLockEnabled(v bool) { biometricAppLock.set(s, v) }

func (s *Settings) LockAllDatabasesOnFailedPasscode() bool {
	return lockAllOnFailedPasscode.get(s)
}
func (s *Settings) SetLockAllDatabasesOnFailedPasscode(v bool) {
	lockAllOnFailedPasscode.set(s, v)
}

func (s *Settings) AppLockTimeout() AppLockTimeout     { return appLockTimeout.get(s) }
func (s *Settings) SetAppLockTimeout(v AppLockTimeout) { appLockTimeout.set(s, v) }

func (s *Settings) DatabaseLockTimeout() DatabaseLockTimeout {
	return databaseLockTimeout.get(s)
}
func (s *Settings) SetDatabaseLockTimeout(v DatabaseLockTimeout) {
	databaseLockTimeout.set(s, v)
}

func (s *Settings) ClipboardTimeout() ClipboardTimeout     { return clipboardTimeout.get(s) }
func (s *Settings) SetClipboardTimeout(v ClipboardTimeout) { clipboardTimeout.set(s, v) }

func (s *Settings) PasscodeKeyboardType() PasscodeKeyboardType {
	return passcodeKeyboardType.get(s)
}
func (s *Settings) SetPasscodeKeyboardType(v PasscodeKeyboardType) {
	passcodeKeyboardType.set(s, v)
}

// ─── Viewer ───────────────────────────────────────────────────────────────

func (s *Settings) StartWithSearch() bool     { return startWithSearch.get(s) }
func (s *Settings) SetStartWithSearch(v bool) { startWithSearch.set(s, v) }

func (s *Settings) GroupSortOrder() GroupSortOrder     { return groupSortOrder.get(s) }
func (s *Settings) SetGroupSortOrder(v GroupSortOrder) { groupSortOrder.set(s, v) }

func (s *Settings) EntryListDetail() EntryListDetail     { return entryListDetail.get(s) }
func (s *Settings) SetEntryListDetail(v EntryListDetail) { entryListDetail.set(s, v) }

func (s *Settings) EntryViewerPage() int     { return entryViewerPage.get(s) }
func (s *Settings) SetEntryViewerPage(v int) { entryViewerPage.set(s, v) }

// ─── Backups ──────────────────────────────────────────────────────────────

func (s *Settings) BackupDatabaseOnSave() bool     { return backupDatabaseOnSave.get(s) }
func (s *Settings) SetBackupDatabaseOnSave(v bool) { backupDatabaseOnSave.set(s, v) }

func (s *Settings) BackupKeepingDuration() BackupKeepingDuration {
	return backupKeepingDuration.get(s)
}
func (s *Settings) SetBackupKeepingDuration(v BackupKeepingDuration) {
	backupKeepingDuration.set(s, v)
}

// ─── AutoFill ─────────────────────────────────────────────────────────────

func (s *Settings) AutoFillFinishedOK() bool { return autoFillFinishedOK.get(s) }

// SetAutoFillFinishedOK persists the flag and flushes the backing store:
// the extension may be torn down by the OS right after setting it, and
// the main app reads the flag to detect AutoFill crashes.
func (s *Settings) SetAutoFillFinishedOK(v bool) {
	autoFillFinishedOK.set(s, v)
	if err := s.backing.Flush(); err != nil {
		log.Printf("settings: flush after %s: %v", KeyAutoFillFinishedOK, err)
	}
}

func (s *Settings) CopyTOTPOnAutoFill() bool     { return copyTOTPOnAutoFill.get(s) }
func (s *Settings) SetCopyTOTPOnAutoFill(v bool) { copyTOTPOnAutoFill.set(s, v) }

// ─── Password generator ───────────────────────────────────────────────────

func (s *Settings) PasswordGeneratorLength() int     { return passGenLength.get(s) }
func (s *Settings) SetPasswordGeneratorLength(v int) { passGenLength.set(s, v) }

func (s *Settings) PasswordGeneratorIncludeLowerCase() bool     { return passGenLowerCase.get(s) }
func (s *Settings) SetPasswordGeneratorIncludeLowerCase(v bool) { passGenLowerCase.set(s, v) }

func (s *Settings) PasswordGeneratorIncludeUpperCase() bool     { return passGenUpperCase.get(s) }
func (s *Settings) SetPasswordGeneratorIncludeUpperCase(v bool) { passGenUpperCase.set(s, v) }

func (s *Settings) PasswordGeneratorIncludeSpecials() bool     { return passGenSpecials.get(s) }
func (s *Settings) SetPasswordGeneratorIncludeSpecials(v bool) { passGenSpecials.set(s, v) }

func (s *Settings) PasswordGeneratorIncludeDigits() bool     { return passGenDigits.get(s) }
func (s *Settings) SetPasswordGeneratorIncludeDigits(v bool) { passGenDigits.set(s, v) }

func (s *Settings) PasswordGeneratorIncludeLookAlike() bool     { return passGenLookAlike.get(s) }
func (s *Settings) SetPasswordGeneratorIncludeLookAlike(v bool) { passGenLookAlike.set(s, v) }

// PasswordGeneratorParams collects the generator preferences into the
// parameter set passgen.Generate consumes.
func (s *Settings) PasswordGeneratorParams() passgen.Params {
	return passgen.Params{
		Length:           s.PasswordGeneratorLength(),
		IncludeLowerCase: s.PasswordGeneratorIncludeLowerCase(),
		IncludeUpperCase: s.PasswordGeneratorIncludeUpperCase(),
		IncludeSpecials:  s.PasswordGeneratorIncludeSpecials(),
		IncludeDigits:    s.PasswordGeneratorIncludeDigits(),
		IncludeLookAlike: s.PasswordGeneratorIncludeLookAlike(),
	}
}
