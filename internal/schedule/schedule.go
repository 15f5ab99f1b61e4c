// Package schedule resolves free-text mass schedule data into concrete
// next-service times. The dataset maps canonical parish keys to raw
// schedule lines ("8:00, 10:00, 6:00pm", "Mon to Fri 7:00am"); this
// package normalizes venue names into those keys, parses the embedded
// clock times, and selects the next applicable time for a reference
// instant.
package schedule

import "time"

// Category classifies a schedule entry by liturgical day-type. The
// string values are the wire values used by the dataset.
type Category string

const (
	SundayMass            Category = "Sunday Masses"
	WeekdayMass           Category = "Weekday Masses"
	AnticipatedSundayMass Category = "Anticipated Sunday Masses"
)

// Entry is one raw schedule line for a parish, verbatim from the
// dataset. Times may contain zero, one, or many clock times and an
// optional day-restriction prefix ("Mon to Fri ...").
type Entry struct {
	Category Category `json:"category"`
	Times    string   `json:"time"`
}

// Table maps a canonical parish key (see Normalize) to its schedule
// entries. Tables are built once at startup and treated as read-only
// thereafter, so they are safe for concurrent lookups.
type Table map[string][]Entry

// CategoriesFor returns the entry categories applicable on the given
// weekday. Saturday includes anticipated Sunday masses alongside the
// weekday ones: a Saturday evening mass counts toward the Sunday
// obligation.
func CategoriesFor(day time.Weekday) []Category {
	switch day {
	case time.Sunday:
		return []Category{SundayMass}
	case time.Saturday:
		return []Category{WeekdayMass, AnticipatedSundayMass}
	default:
		return []Category{WeekdayMass}
	}
}
