package schedule

import "time"

// Resolver answers schedule lookups against an immutable table. The
// table is injected at construction so callers (and tests) control
// exactly what data is visible; there is no package-level state.
type Resolver struct {
	table Table
}

// NewResolver returns a Resolver over the given table. The table must
// not be mutated after this call.
func NewResolver(table Table) *Resolver {
	return &Resolver{table: table}
}

// Lookup normalizes rawName and returns the schedule entries filed
// under the resulting key. A missing key is a normal outcome, reported
// via the bool; an empty normalized name never matches.
func (r *Resolver) Lookup(rawName string) ([]Entry, bool) {
	key := Normalize(rawName)
	if key == "" {
		return nil, false
	}
	entries, ok := r.table[key]
	return entries, ok
}

// NextOccurrence returns the earliest service time today at or after
// ref, as minutes since midnight. Entries are filtered to the
// categories applicable on ref's weekday, then entries whose
// day-restriction prefix excludes today are skipped, and finally the
// minimum remaining time not yet passed is selected. The bool is false
// when no service remains today, which is a normal terminal state.
func NextOccurrence(entries []Entry, ref time.Time) (int, bool) {
	today := ref.Weekday()
	nowMinutes := ref.Hour()*60 + ref.Minute()
	applicable := CategoriesFor(today)

	best, found := 0, false
	for _, e := range entries {
		if !containsCategory(applicable, e.Category) {
			continue
		}
		if DayRestrictionConflict(e.Times, today) {
			continue
		}
		for _, t := range ParseTimes(e.Times) {
			if t < nowMinutes {
				continue
			}
			if !found || t < best {
				best, found = t, true
			}
		}
	}
	return best, found
}

func containsCategory(cats []Category, c Category) bool {
	for _, cat := range cats {
		if cat == c {
			return true
		}
	}
	return false
}
