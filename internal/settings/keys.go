// Package settings is the authoritative store for user preferences. It
// maps a closed set of typed setting keys to values in the shared backing
// store, resolves absent or undecodable values to documented defaults,
// and publishes the key of every effective change on an event bus.
package settings

// Key identifies one persisted setting slot. Key strings are the
// persistence format, shared with the extension process and with every
// past and future version of the app; they must never be renamed or
// reused for a different meaning.
type Key string

const (
	KeySettingsVersion                   Key = "settingsVersion"
	KeyFirstLaunchTimestamp              Key = "firstLaunchTimestamp"
	KeyFilesSortOrder                    Key = "filesSortOrder"
	KeyBackupFilesVisible                Key = "backupFilesVisible"
	KeyStartupDatabase                   Key = "startupDatabase"
	KeyRememberDatabaseKey               Key = "rememberDatabaseKey"
	KeyKeepKeyFileAssociations           Key = "keepKeyFileAssociations"
	KeyKeyFileAssociations               Key = "keyFileAssociations"
	KeyAppLockEnabled                    Key = "appLockEnabled"
	KeyBiometricAppLockEnabled           Key = "biometricAppLockEnabled"
	KeyLockAllDatabasesOnFailedPasscode  Key = "lockAllDatabasesOnFailedPasscode"
	KeyRecentUserActivityTimestamp       Key = "recentUserActivityTimestamp"
	KeyAppLockTimeout                    Key = "appLockTimeout"
	KeyDatabaseLockTimeout               Key = "databaseLockTimeout"
	KeyClipboardTimeout                  Key = "clipboardTimeout"
	KeyStartWithSearch                   Key = "startWithSearch"
	KeyGroupSortOrder                    Key = "groupSortOrder"
	KeyEntryListDetail                   Key = "entryListDetail"
	KeyEntryViewerPage                   Key = "entryViewerPage"
	KeyBackupDatabaseOnSave              Key = "backupDatabaseOnSave"
	KeyBackupKeepingDuration             Key = "backupKeepingDuration"
	KeyAutoFillFinishedOK                Key = "autoFillFinishedOK"
	KeyCopyTOTPOnAutoFill                Key = "copyTOTPOnAutoFill"
	KeyPasswordGeneratorLength           Key = "passwordGeneratorLength"
	KeyPasswordGeneratorIncludeLowerCase Key = "passwordGeneratorIncludeLowerCase"
	KeyPasswordGeneratorIncludeUpperCase Key = "passwordGeneratorIncludeUpperCase"
	KeyPasswordGeneratorIncludeSpecials  Key = "passwordGeneratorIncludeSpecials"
	KeyPasswordGeneratorIncludeDigits    Key = "passwordGeneratorIncludeDigits"
	KeyPasswordGeneratorIncludeLookAlike Key = "passwordGeneratorIncludeLookAlike"
	KeyPasscodeKeyboardType              Key = "passcodeKeyboardType"
)

var allKeys = []Key{
	KeySettingsVersion,
	KeyFirstLaunchTimestamp,
	KeyFilesSortOrder,
	KeyBackupFilesVisible,
	KeyStartupDatabase,
	KeyRememberDatabaseKey,
	KeyKeepKeyFileAssociations,
	KeyKeyFileAssociations,
	KeyAppLockEnabled,
	KeyBiometricAppLockEnabled,
	KeyLockAllDatabasesOnFailedPasscode,
	KeyRecentUserActivityTimestamp,
	KeyAppLockTimeout,
	KeyDatabaseLockTimeout,
	KeyClipboardTimeout,
	KeyStartWithSearch,
	KeyGroupSortOrder,
	KeyEntryListDetail,
	KeyEntryViewerPage,
	KeyBackupDatabaseOnSave,
	KeyBackupKeepingDuration,
	KeyAutoFillFinishedOK,
	KeyCopyTOTPOnAutoFill,
	KeyPasswordGeneratorLength,
	KeyPasswordGeneratorIncludeLowerCase,
	KeyPasswordGeneratorIncludeUpperCase,
	KeyPasswordGeneratorIncludeSpecials,
	KeyPasswordGeneratorIncludeDigits,
	KeyPasswordGeneratorIncludeLookAlike,
	KeyPasscodeKeyboardType,
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(allKeys))
	for _, k := range allKeys {
		m[string(k)] = k
	}
	return m
}()

// KeyFromString resolves a raw identifier to a known Key. Only needed at
// serialization boundaries (the cross-process relay); identifiers written
// by a newer app version resolve to false and must be dropped, not
// treated as fatal.
func KeyFromString(raw string) (Key, bool) {
	k, ok := keysByName[raw]
	return k, ok
}
