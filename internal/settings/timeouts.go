package settings

import (
	"math"
	"time"
)

// The timeout enums persist as their integer number of seconds. The
// numbers are the on-disk format shared with older installs: never
// renumber a case. Two values are reserved across the family:
// 0 means "immediately" and -1 means "never" (BackupKeepingDuration
// spells its -1 "forever" instead).

// AppLockTimeout is how long the app stays unlocked after the user
// leaves it.
type AppLockTimeout int

const (
	AppLockNever          AppLockTimeout = -1
	AppLockImmediately    AppLockTimeout = 0
	AppLockAfter3Seconds  AppLockTimeout = 3
	AppLockAfter15Seconds AppLockTimeout = 15
	AppLockAfter30Seconds AppLockTimeout = 30
	AppLockAfter1Minute   AppLockTimeout = 60
	AppLockAfter2Minutes  AppLockTimeout = 120
	AppLockAfter5Minutes  AppLockTimeout = 300
)

// AppLockTimeoutValues lists every case in presentation order.
func AppLockTimeoutValues() []AppLockTimeout {
	return []AppLockTimeout{
		AppLockNever,
		AppLockImmediately,
		AppLockAfter3Seconds,
		AppLockAfter15Seconds,
		AppLockAfter30Seconds,
		AppLockAfter1Minute,
		AppLockAfter2Minutes,
		AppLockAfter5Minutes,
	}
}

// Valid reports whether t is a known case.
func (t AppLockTimeout) Valid() bool {
	switch t {
	case AppLockNever, AppLockImmediately, AppLockAfter3Seconds,
		AppLockAfter15Seconds, AppLockAfter30Seconds,
		AppLockAfter1Minute, AppLockAfter2Minutes, AppLockAfter5Minutes:
		return true
	}
	return false
}

// Seconds returns the persisted integer encoding.
func (t AppLockTimeout) Seconds() int { return int(t) }

func (t AppLockTimeout) String() string { return timeoutString(int(t)) }

// DatabaseLockTimeout is how long an open database stays unlocked with no
// user activity.
type DatabaseLockTimeout int

const (
	DatabaseLockNever          DatabaseLockTimeout = -1
	DatabaseLockImmediately    DatabaseLockTimeout = 0
	DatabaseLockAfter1Minute   DatabaseLockTimeout = 60
	DatabaseLockAfter5Minutes  DatabaseLockTimeout = 300
	DatabaseLockAfter15Minutes DatabaseLockTimeout = 900
	DatabaseLockAfter30Minutes DatabaseLockTimeout = 1800
	DatabaseLockAfter1Hour     DatabaseLockTimeout = 3600
	DatabaseLockAfter2Hours    DatabaseLockTimeout = 7200
	DatabaseLockAfter4Hours    DatabaseLockTimeout = 14400
	DatabaseLockAfter8Hours    DatabaseLockTimeout = 28800
	DatabaseLockAfter24Hours   DatabaseLockTimeout = 86400
)

// DatabaseLockTimeoutValues lists every case in presentation order.
func DatabaseLockTimeoutValues() []DatabaseLockTimeout {
	return []DatabaseLockTimeout{
		DatabaseLockNever,
		DatabaseLockImmediately,
		DatabaseLockAfter1Minute,
		DatabaseLockAfter5Minutes,
		DatabaseLockAfter15Minutes,
		DatabaseLockAfter30Minutes,
		DatabaseLockAfter1Hour,
		DatabaseLockAfter2Hours,
		DatabaseLockAfter4Hours,
		DatabaseLockAfter8Hours,
		DatabaseLockAfter24Hours,
	}
}

// Valid reports whether t is a known case.
func (t DatabaseLockTimeout) Valid() bool {
	switch t {
	case DatabaseLockNever, DatabaseLockImmediately,
		DatabaseLockAfter1Minute, DatabaseLockAfter5Minutes,
		DatabaseLockAfter15Minutes, DatabaseLockAfter30Minutes,
		DatabaseLockAfter1Hour, DatabaseLockAfter2Hours,
		DatabaseLockAfter4Hours, DatabaseLockAfter8Hours,
		DatabaseLockAfter24Hours:
		return true
	}
	return false
}

// Seconds returns the persisted integer encoding.
func (t DatabaseLockTimeout) Seconds() int { return int(t) }

// Less orders timeouts by effective duration. Never counts as longer
// than every finite timeout.
func (t DatabaseLockTimeout) Less(other DatabaseLockTimeout) bool {
	return t.effectiveSeconds() < other.effectiveSeconds()
}

func (t DatabaseLockTimeout) effectiveSeconds() int64 {
	if t == DatabaseLockNever {
		return math.MaxInt64
	}
	return int64(t)
}

func (t DatabaseLockTimeout) String() string { return timeoutString(int(t)) }

// ClipboardTimeout is how long copied values stay on the clipboard.
type ClipboardTimeout int

const (
	ClipboardNever          ClipboardTimeout = -1
	ClipboardImmediately    ClipboardTimeout = 0
	ClipboardAfter10Seconds ClipboardTimeout = 10
	ClipboardAfter20Seconds ClipboardTimeout = 20
	ClipboardAfter30Seconds ClipboardTimeout = 30
	ClipboardAfter1Minute   ClipboardTimeout = 60
	ClipboardAfter2Minutes  ClipboardTimeout = 120
	ClipboardAfter3Minutes  ClipboardTimeout = 180
)

// ClipboardTimeoutValues lists every case in presentation order.
func ClipboardTimeoutValues() []ClipboardTimeout {
	return []ClipboardTimeout{
		ClipboardNever,
		ClipboardImmediately,
		ClipboardAfter10Seconds,
		ClipboardAfter20Seconds,
		ClipboardAfter30Seconds,
		ClipboardAfter1Minute,
		ClipboardAfter2Minutes,
		ClipboardAfter3Minutes,
	}
}

// Valid reports whether t is a known case.
func (t ClipboardTimeout) Valid() bool {
	switch t {
	case ClipboardNever, ClipboardImmediately, ClipboardAfter10Seconds,
		ClipboardAfter20Seconds, ClipboardAfter30Seconds,
		ClipboardAfter1Minute, ClipboardAfter2Minutes, ClipboardAfter3Minutes:
		return true
	}
	return false
}

// Seconds returns the persisted integer encoding.
func (t ClipboardTimeout) Seconds() int { return int(t) }

func (t ClipboardTimeout) String() string { return timeoutString(int(t)) }

// BackupKeepingDuration is how long backup copies of databases are kept
// before cleanup.
type BackupKeepingDuration int

const (
	BackupKeepForever BackupKeepingDuration = -1
	BackupKeep1Hour   BackupKeepingDuration = 3600
	BackupKeep1Day    BackupKeepingDuration = 86400
	BackupKeep2Days   BackupKeepingDuration = 172800
	BackupKeep1Week   BackupKeepingDuration = 604800
	BackupKeep1Month  BackupKeepingDuration = 2592000
)

// BackupKeepingDurationValues lists every case in presentation order.
func BackupKeepingDurationValues() []BackupKeepingDuration {
	return []BackupKeepingDuration{
		BackupKeep1Hour,
		BackupKeep1Day,
		BackupKeep2Days,
		BackupKeep1Week,
		BackupKeep1Month,
		BackupKeepForever,
	}
}

// Valid reports whether d is a known case.
func (d BackupKeepingDuration) Valid() bool {
	switch d {
	case BackupKeepForever, BackupKeep1Hour, BackupKeep1Day,
		BackupKeep2Days, BackupKeep1Week, BackupKeep1Month:
		return true
	}
	return false
}

// Seconds returns the persisted integer encoding.
func (d BackupKeepingDuration) Seconds() int { return int(d) }

// Duration returns the keeping period; Forever is effectively infinite.
func (d BackupKeepingDuration) Duration() time.Duration {
	if d == BackupKeepForever {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d) * time.Second
}

func (d BackupKeepingDuration) String() string {
	if d == BackupKeepForever {
		return "forever"
	}
	return timeoutString(int(d))
}

// timeoutString renders the integer encoding for diagnostics; display
// strings for the UI are localized elsewhere.
func timeoutString(seconds int) string {
	switch seconds {
	case -1:
		return "never"
	case 0:
		return "immediately"
	}
	return (time.Duration(seconds) * time.Second).String()
}

// Duration returns the lock delay as a time.Duration; Never is
// effectively infinite.
func (t AppLockTimeout) Duration() time.Duration { return secondsDuration(int(t)) }

// Duration returns the lock delay as a time.Duration; Never is
// effectively infinite.
func (t DatabaseLockTimeout) Duration() time.Duration { return secondsDuration(int(t)) }

// Duration returns the clear delay as a time.Duration; Never is
// effectively infinite.
func (t ClipboardTimeout) Duration() time.Duration { return secondsDuration(int(t)) }

func secondsDuration(seconds int) time.Duration {
	if seconds < 0 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(seconds) * time.Second
}
