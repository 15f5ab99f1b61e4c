package enrich

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"masstimes/internal/models"
	"masstimes/internal/schedule"
	"masstimes/pkg/geo"
)

func decorate(t *testing.T, p *Pipeline[models.Venue], venues []*models.Venue) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	in := make(chan *models.Venue, len(venues))
	for _, v := range venues {
		in <- v
	}
	close(in)
	p.Process(ctx, in)
}

func TestPipeline_VenueDecoration(t *testing.T) {
	table := schedule.Table{
		"st josephs": {{Category: schedule.SundayMass, Times: "8:00, 10:00, 6:00pm"}},
	}
	resolver := schedule.NewResolver(table)
	origin := models.Coordinates{Lat: -33.8151, Lon: 151.0011}
	// Sunday 9:30am.
	now := time.Date(2025, time.June, 1, 9, 30, 0, 0, time.Local)

	distanceStep := func(_ context.Context, v *models.Venue) error {
		v.DistanceKm = geo.DistanceKm(origin.Lat, origin.Lon, v.Coordinates.Lat, v.Coordinates.Lon)
		return nil
	}
	scheduleStep := func(_ context.Context, v *models.Venue) error {
		if entries, ok := resolver.Lookup(v.Name); ok {
			v.Schedule = entries
		}
		return nil
	}
	nextMassStep := func(_ context.Context, v *models.Venue) error {
		if v.Schedule == nil {
			return nil
		}
		if next, ok := schedule.NextOccurrence(v.Schedule, now); ok {
			v.NextMassTime = &next
		}
		return nil
	}

	p := NewPipeline(
		NewStage(distanceStep, scheduleStep),
		NewStage(nextMassStep),
	)

	matched := &models.Venue{ID: 1, Name: "St. Joseph's Church", Coordinates: origin}
	unmatched := &models.Venue{ID: 2, Name: "Holy Spirit Chapel", Coordinates: models.Coordinates{Lat: -33.9, Lon: 151.1}}
	decorate(t, p, []*models.Venue{matched, unmatched})

	if matched.NextMassTime == nil || *matched.NextMassTime != 600 {
		t.Errorf("matched venue NextMassTime = %v; want 600", matched.NextMassTime)
	}
	if matched.Schedule == nil {
		t.Error("matched venue should carry its schedule entries")
	}
	if unmatched.NextMassTime != nil || unmatched.Schedule != nil {
		t.Errorf("unmatched venue must stay undecorated, got %+v", unmatched)
	}
	if unmatched.DistanceKm == 0 {
		t.Error("distance step must still run for unmatched venues")
	}
}

func TestPipeline_OrderIndependence(t *testing.T) {
	table := schedule.Table{
		"st josephs":   {{Category: schedule.SundayMass, Times: "8:00, 10:00"}},
		"sacred heart": {{Category: schedule.SundayMass, Times: "9:00, 5:30pm"}},
		"st brigids":   {{Category: schedule.SundayMass, Times: "7:30"}},
	}
	resolver := schedule.NewResolver(table)
	now := time.Date(2025, time.June, 1, 8, 30, 0, 0, time.Local)

	build := func() []*models.Venue {
		return []*models.Venue{
			{ID: 1, Name: "St. Joseph's Church"},
			{ID: 2, Name: "Sacred Heart Parish"},
			{ID: 3, Name: "St. Brigid's Church"},
		}
	}
	run := func(venues []*models.Venue) map[int64]*int {
		p := NewPipeline(
			NewStage(func(_ context.Context, v *models.Venue) error {
				if entries, ok := resolver.Lookup(v.Name); ok {
					v.Schedule = entries
				}
				return nil
			}),
			NewStage(func(_ context.Context, v *models.Venue) error {
				if v.Schedule == nil {
					return nil
				}
				if next, ok := schedule.NextOccurrence(v.Schedule, now); ok {
					v.NextMassTime = &next
				}
				return nil
			}),
		)
		decorate(t, p, venues)
		results := make(map[int64]*int)
		for _, v := range venues {
			results[v.ID] = v.NextMassTime
		}
		return results
	}

	forward := build()
	reversed := build()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	a, b := run(forward), run(reversed)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("decoration depends on batch order: %v vs %v", a, b)
	}
	if a[1] == nil || *a[1] != 600 {
		t.Errorf("venue 1 next time = %v; want 600", a[1])
	}
	if a[3] != nil {
		t.Errorf("venue 3 last mass already passed, next time = %v; want nil", a[3])
	}
}

func TestPipeline_StepErrorDoesNotStopBatch(t *testing.T) {
	failing := func(_ context.Context, v *models.Venue) error {
		return errors.New("mock step failed")
	}
	marking := func(_ context.Context, v *models.Venue) error {
		v.Address = "decorated"
		return nil
	}

	p := NewPipeline(NewStage[models.Venue](failing), NewStage[models.Venue](marking))
	v := &models.Venue{ID: 1, Name: "St. Anne's"}
	decorate(t, p, []*models.Venue{v})

	if v.Address != "decorated" {
		t.Fatalf("later stage did not run after a step error, venue = %+v", v)
	}
}
