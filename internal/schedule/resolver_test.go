package schedule

import (
	"testing"
	"time"
)

// refTime builds a local timestamp on a day with the given weekday.
// 2025-06-01 is a Sunday.
func refTime(t *testing.T, day time.Weekday, hour, minute int) time.Time {
	t.Helper()
	base := time.Date(2025, time.June, 1, hour, minute, 0, 0, time.Local)
	return base.AddDate(0, 0, int(day-base.Weekday()))
}

func TestNextOccurrence(t *testing.T) {
	entries := []Entry{
		{Category: SundayMass, Times: "8:00, 10:00, 6:00pm"},
		{Category: WeekdayMass, Times: "Mon to Fri 7:00am"},
		{Category: AnticipatedSundayMass, Times: "Sat 6:00pm"},
	}

	cases := []struct {
		name     string
		day      time.Weekday
		hour     int
		minute   int
		expected int
		ok       bool
	}{
		{"sunday mid-morning picks next mass", time.Sunday, 9, 30, 600, true},
		{"sunday late evening has none left", time.Sunday, 23, 0, 0, false},
		{"sunday early picks first", time.Sunday, 6, 0, 480, true},
		{"exact start time still counts", time.Sunday, 10, 0, 600, true},
		{"weekday morning", time.Wednesday, 6, 0, 420, true},
		{"weekday after mass", time.Wednesday, 8, 0, 0, false},
		{"saturday vigil only", time.Saturday, 12, 0, 1080, true},
		{"saturday weekday entry excluded by restriction", time.Saturday, 6, 0, 1080, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NextOccurrence(entries, refTime(t, tc.day, tc.hour, tc.minute))
			if ok != tc.ok {
				t.Fatalf("NextOccurrence ok = %v; want %v", ok, tc.ok)
			}
			if ok && got != tc.expected {
				t.Fatalf("NextOccurrence = %d; want %d", got, tc.expected)
			}
		})
	}
}

func TestNextOccurrence_DuplicateTimesCollapse(t *testing.T) {
	entries := []Entry{
		{Category: SundayMass, Times: "10:00"},
		{Category: SundayMass, Times: "10:00, 5:00pm"},
	}
	got, ok := NextOccurrence(entries, refTime(t, time.Sunday, 9, 0))
	if !ok || got != 600 {
		t.Fatalf("NextOccurrence = %d, %v; want 600, true", got, ok)
	}
}

func TestNextOccurrence_NoEntries(t *testing.T) {
	if _, ok := NextOccurrence(nil, refTime(t, time.Sunday, 9, 0)); ok {
		t.Fatal("expected no occurrence for empty entry list")
	}
}

func TestResolverLookup(t *testing.T) {
	table := Table{
		"st josephs":   {{Category: SundayMass, Times: "8:00, 10:00"}},
		"sacred heart": {{Category: WeekdayMass, Times: "Mon to Fri 6:30am"}},
	}
	r := NewResolver(table)

	cases := []struct {
		name    string
		rawName string
		ok      bool
		count   int
	}{
		{"exact display name", "St. Joseph's Church", true, 1},
		{"case and wording variant", "saint joseph's CHURCH", true, 1},
		{"unknown venue", "Holy Spirit Chapel", false, 0},
		{"empty name never matches", "", false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entries, ok := r.Lookup(tc.rawName)
			if ok != tc.ok {
				t.Fatalf("Lookup(%q) ok = %v; want %v", tc.rawName, ok, tc.ok)
			}
			if len(entries) != tc.count {
				t.Fatalf("Lookup(%q) returned %d entries; want %d", tc.rawName, len(entries), tc.count)
			}
		})
	}
}
