package models

import "masstimes/internal/schedule"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Venue is one place of worship returned by a search. A batch of
// venues is built per query, decorated with distance and schedule
// fields, rendered, and discarded; nothing is persisted.
type Venue struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	Address     string      `json:"address,omitempty"`
	DistanceKm  float64     `json:"distanceKm,omitempty"`

	// Schedule holds the matched dataset entries verbatim; nil when the
	// venue has no schedule data.
	Schedule []schedule.Entry `json:"massSchedule,omitempty"`

	// NextMassTime is minutes since midnight, local time, or nil when
	// no service remains today (or no schedule matched).
	NextMassTime *int `json:"nextMassTime,omitempty"`
}

// ParishSchedule is the unit stored in the object store: one parish's
// schedule entries under its display name.
type ParishSchedule struct {
	Parish  string           `json:"parish"`
	Entries []schedule.Entry `json:"entries"`
}
