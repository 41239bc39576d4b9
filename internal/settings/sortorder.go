package settings

import (
	"strings"
	"time"
)

// Record is the accessor surface the sort orders compare on. Groups,
// entries and file references all expose it.
type Record interface {
	Name() string
	CreatedAt() time.Time
	ModifiedAt() time.Time
}

type sortField int

const (
	sortByName sortField = iota
	sortByCreationTime
	sortByModificationTime
)

func recordLess(a, b Record, field sortField, descending bool) bool {
	if descending {
		a, b = b, a
	}
	switch field {
	case sortByName:
		return strings.ToLower(a.Name()) < strings.ToLower(b.Name())
	case sortByCreationTime:
		return a.CreatedAt().Before(b.CreatedAt())
	case sortByModificationTime:
		return a.ModifiedAt().Before(b.ModifiedAt())
	}
	return false
}

// GroupSortOrder orders groups and entries inside the database viewer.
type GroupSortOrder int

const (
	GroupSortNone                 GroupSortOrder = 0
	GroupSortNameAsc              GroupSortOrder = 1
	GroupSortNameDesc             GroupSortOrder = 2
	GroupSortCreationTimeAsc      GroupSortOrder = 3
	GroupSortCreationTimeDesc     GroupSortOrder = 4
	GroupSortModificationTimeAsc  GroupSortOrder = 5
	GroupSortModificationTimeDesc GroupSortOrder = 6
)

// GroupSortOrderValues lists every case in presentation order.
func GroupSortOrderValues() []GroupSortOrder {
	return []GroupSortOrder{
		GroupSortNone,
		GroupSortNameAsc,
		GroupSortNameDesc,
		GroupSortCreationTimeAsc,
		GroupSortCreationTimeDesc,
		GroupSortModificationTimeAsc,
		GroupSortModificationTimeDesc,
	}
}

// Valid reports whether o is a known case.
func (o GroupSortOrder) Valid() bool {
	return o >= GroupSortNone && o <= GroupSortModificationTimeDesc
}

// Less reports whether a sorts before b under this order.
// GroupSortNone always reports false, preserving existing order.
func (o GroupSortOrder) Less(a, b Record) bool {
	switch o {
	case GroupSortNameAsc:
		return recordLess(a, b, sortByName, false)
	case GroupSortNameDesc:
		return recordLess(a, b, sortByName, true)
	case GroupSortCreationTimeAsc:
		return recordLess(a, b, sortByCreationTime, false)
	case GroupSortCreationTimeDesc:
		return recordLess(a, b, sortByCreationTime, true)
	case GroupSortModificationTimeAsc:
		return recordLess(a, b, sortByModificationTime, false)
	case GroupSortModificationTimeDesc:
		return recordLess(a, b, sortByModificationTime, true)
	}
	return false
}

// FilesSortOrder orders database files in the file picker.
type FilesSortOrder int

const (
	FilesSortNone                 FilesSortOrder = 0
	FilesSortNameAsc              FilesSortOrder = 1
	FilesSortNameDesc             FilesSortOrder = 2
	FilesSortCreationTimeAsc      FilesSortOrder = 3
	FilesSortCreationTimeDesc     FilesSortOrder = 4
	FilesSortModificationTimeAsc  FilesSortOrder = 5
	FilesSortModificationTimeDesc FilesSortOrder = 6
)

// FilesSortOrderValues lists every case in presentation order.
func FilesSortOrderValues() []FilesSortOrder {
	return []FilesSortOrder{
		FilesSortNone,
		FilesSortNameAsc,
		FilesSortNameDesc,
		FilesSortCreationTimeAsc,
		FilesSortCreationTimeDesc,
		FilesSortModificationTimeAsc,
		FilesSortModificationTimeDesc,
	}
}

// Valid reports whether o is a known case.
func (o FilesSortOrder) Valid() bool {
	return o >= FilesSortNone && o <= FilesSortModificationTimeDesc
}

// Less reports whether a sorts before b under this order.
// FilesSortNone always reports false, preserving existing order.
func (o FilesSortOrder) Less(a, b Record) bool {
	switch o {
	case FilesSortNameAsc:
		return recordLess(a, b, sortByName, false)
	case FilesSortNameDesc:
		return recordLess(a, b, sortByName, true)
	case FilesSortCreationTimeAsc:
		return recordLess(a, b, sortByCreationTime, false)
	case FilesSortCreationTimeDesc:
		return recordLess(a, b, sortByCreationTime, true)
	case FilesSortModificationTimeAsc:
		return recordLess(a, b, sortByModificationTime, false)
	case FilesSortModificationTimeDesc:
		return recordLess(a, b, sortByModificationTime, true)
	}
	return false
}

// EntryListDetail selects the secondary line shown for each entry in
// list views.
type EntryListDetail int

const (
	EntryDetailNone             EntryListDetail = 0
	EntryDetailUserName         EntryListDetail = 1
	EntryDetailPassword         EntryListDetail = 2
	EntryDetailURL              EntryListDetail = 3
	EntryDetailNotes            EntryListDetail = 4
	EntryDetailLastModifiedDate EntryListDetail = 5
)

// EntryListDetailValues lists every case in presentation order.
func EntryListDetailValues() []EntryListDetail {
	return []EntryListDetail{
		EntryDetailNone,
		EntryDetailUserName,
		EntryDetailPassword,
		EntryDetailURL,
		EntryDetailNotes,
		EntryDetailLastModifiedDate,
	}
}

// Valid reports whether d is a known case.
func (d EntryListDetail) Valid() bool {
	return d >= EntryDetailNone && d <= EntryDetailLastModifiedDate
}

// PasscodeKeyboardType selects the keyboard shown for app passcode entry.
type PasscodeKeyboardType int

const (
	PasscodeKeyboardNumeric      PasscodeKeyboardType = 0
	PasscodeKeyboardAlphanumeric PasscodeKeyboardType = 1
)

// PasscodeKeyboardTypeValues lists every case in presentation order.
func PasscodeKeyboardTypeValues() []PasscodeKeyboardType {
	return []PasscodeKeyboardType{PasscodeKeyboardNumeric, PasscodeKeyboardAlphanumeric}
}

// Valid reports whether t is a known case.
func (t PasscodeKeyboardType) Valid() bool {
	return t == PasscodeKeyboardNumeric || t == PasscodeKeyboardAlphanumeric
}
