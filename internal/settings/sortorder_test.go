package settings

import (
	"sort"
	"testing"
	"time"
)

// fakeRecord satisfies Record for comparator tests.
type fakeRecord struct {
	name     string
	created  time.Time
	modified time.Time
}

func (r fakeRecord) Name() string          { return r.name }
func (r fakeRecord) CreatedAt() time.Time  { return r.created }
func (r fakeRecord) ModifiedAt() time.Time { return r.modified }

var (
	day1 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	day3 = time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
)

func testRecords() []fakeRecord {
	return []fakeRecord{
		{name: "banking", created: day3, modified: day1},
		{name: "Email", created: day1, modified: day3},
		{name: "archive", created: day2, modified: day2},
	}
}

func sortedNames(records []fakeRecord, less func(a, b Record) bool) []string {
	sort.SliceStable(records, func(i, j int) bool {
		return less(records[i], records[j])
	})
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.name
	}
	return names
}

func TestGroupSortByName(t *testing.T) {
	names := sortedNames(testRecords(), GroupSortNameAsc.Less)
	want := []string{"archive", "banking", "Email"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("name ascending = %v, want %v (case-insensitive)", names, want)
		}
	}

	names = sortedNames(testRecords(), GroupSortNameDesc.Less)
	want = []string{"Email", "banking", "archive"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("name descending = %v, want %v", names, want)
		}
	}
}

func TestGroupSortByTimes(t *testing.T) {
	names := sortedNames(testRecords(), GroupSortCreationTimeAsc.Less)
	if names[0] != "Email" || names[2] != "banking" {
		t.Errorf("creation ascending = %v", names)
	}

	names = sortedNames(testRecords(), GroupSortModificationTimeDesc.Less)
	if names[0] != "Email" || names[2] != "banking" {
		t.Errorf("modification descending = %v", names)
	}
}

func TestNoSortingPreservesOrder(t *testing.T) {
	names := sortedNames(testRecords(), GroupSortNone.Less)
	want := []string{"banking", "Email", "archive"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("noSorting reordered: %v, want %v", names, want)
		}
	}

	names = sortedNames(testRecords(), FilesSortNone.Less)
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("files noSorting reordered: %v, want %v", names, want)
		}
	}
}

func TestFilesSortByModification(t *testing.T) {
	names := sortedNames(testRecords(), FilesSortModificationTimeAsc.Less)
	want := []string{"banking", "archive", "Email"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("files modification ascending = %v, want %v", names, want)
		}
	}
}

func TestSortOrderValidity(t *testing.T) {
	if GroupSortOrder(7).Valid() {
		t.Error("7 is not a known group sort order")
	}
	if GroupSortOrder(-1).Valid() {
		t.Error("-1 is not a known group sort order")
	}
	if !FilesSortModificationTimeDesc.Valid() {
		t.Error("modification descending is a known files sort order")
	}
	if EntryListDetail(9).Valid() {
		t.Error("9 is not a known entry list detail")
	}
	if PasscodeKeyboardType(2).Valid() {
		t.Error("2 is not a known passcode keyboard type")
	}
}
