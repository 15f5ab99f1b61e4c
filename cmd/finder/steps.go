package main

import (
	"context"
	"fmt"
	"time"

	"masstimes/internal/enrich"
	"masstimes/internal/models"
	"masstimes/internal/schedule"
	"masstimes/pkg/geo"
)

func distanceStep(originLat, originLon float64) enrich.Step[models.Venue] {
	return func(_ context.Context, v *models.Venue) error {
		v.DistanceKm = geo.DistanceKm(originLat, originLon, v.Coordinates.Lat, v.Coordinates.Lon)
		return nil
	}
}

func scheduleStep(resolver *schedule.Resolver) enrich.Step[models.Venue] {
	return func(_ context.Context, v *models.Venue) error {
		if entries, ok := resolver.Lookup(v.Name); ok {
			v.Schedule = entries
		}
		return nil
	}
}

// nextMassStep runs after scheduleStep's stage so it sees the matched
// entries.
func nextMassStep(now time.Time) enrich.Step[models.Venue] {
	return func(_ context.Context, v *models.Venue) error {
		if v.Schedule == nil {
			return nil
		}
		if next, ok := schedule.NextOccurrence(v.Schedule, now); ok {
			v.NextMassTime = &next
		}
		return nil
	}
}

// formatMinutes renders minutes-since-midnight as a 12-hour clock time.
func formatMinutes(m int) string {
	hour, minute := m/60, m%60
	meridiem := "am"
	if hour >= 12 {
		meridiem = "pm"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d%s", display, minute, meridiem)
}
