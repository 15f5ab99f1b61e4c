package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"masstimes/internal/enrich"
	"masstimes/internal/env"
	"masstimes/internal/keys"
	"masstimes/internal/models"
	"masstimes/internal/schedule"
	"masstimes/internal/storage"
	"masstimes/pkg/graceful"
	"masstimes/pkg/location"
	"masstimes/pkg/overpass"
)

// excludedNames drops venues whose names contradict the catholic POI
// tagging. The OSM data is community-maintained and a handful of
// venues carry the wrong denomination tag.
var excludedNames = []string{
	"anglican", "baptist", "uniting", "presbyterian",
	"methodist", "orthodox", "lutheran", "pentecostal",
}

func main() {
	env.LoadEnv()

	place := flag.String("place", "", "place name to search around (geocoded via Nominatim)")
	lat := flag.Float64("lat", 0, "latitude to search around (used when -place is empty)")
	lon := flag.Float64("lon", 0, "longitude to search around (used when -place is empty)")
	radius := flag.Int("radius", 5000, "search radius in meters")
	flag.Parse()

	if *place == "" && !coordsProvided(flag.CommandLine) {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	resolver := schedule.NewResolver(loadTable(ctx))

	originLat, originLon := *lat, *lon
	if *place != "" {
		loc, err := location.NewClient().Geocode(ctx, *place)
		if err != nil {
			log.Fatalf("Could not geocode %q: %v", *place, err)
		}
		originLat, originLon = loc.Latitude, loc.Longitude
		log.Printf("Searching around %s (%f, %f)", *place, originLat, originLon)
	}

	poi := overpass.NewClient(env.GetEnv("OVERPASS_ENDPOINT", overpass.DefaultEndpoint))
	elements, err := poi.NearbyPlacesOfWorship(ctx, originLat, originLon, *radius)
	if err != nil {
		log.Fatalf("Venue lookup failed: %v", err)
	}

	venues := make([]models.Venue, 0, len(elements))
	for _, e := range elements {
		if e.Name() == "" {
			continue
		}
		venues = append(venues, e.Venue())
	}
	venues = models.NewNameFilter(excludedNames).Apply(venues)
	log.Printf("Found %d venues within %dm", len(venues), *radius)

	pipeline := enrich.NewPipeline(
		enrich.NewStage(distanceStep(originLat, originLon), scheduleStep(resolver)),
		enrich.NewStage(nextMassStep(time.Now())),
	)
	in := make(chan *models.Venue, len(venues))
	for i := range venues {
		in <- &venues[i]
	}
	close(in)
	pipeline.Process(ctx, in)

	sort.Slice(venues, func(i, j int) bool {
		return venues[i].DistanceKm < venues[j].DistanceKm
	})

	for _, v := range venues {
		status := "no schedule data"
		if v.Schedule != nil {
			if v.NextMassTime != nil {
				status = "next mass " + formatMinutes(*v.NextMassTime)
			} else {
				status = "no more masses today"
			}
		}
		fmt.Printf("%-44s %6.2f km  %s\n", v.Name, v.DistanceKm, status)
		if v.Address != "" {
			fmt.Printf("    %s\n", v.Address)
		}
	}
}

// coordsProvided reports whether -lat or -lon was given explicitly, so
// the valid coordinate (0, 0) is distinguishable from unset flags.
func coordsProvided(fs *flag.FlagSet) bool {
	provided := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "lat" || f.Name == "lon" {
			provided = true
		}
	})
	return provided
}

// loadTable picks the schedule table source from the environment:
// SCHEDULE_FILE names a JSON dataset, SCHEDULE_DSN a postgres
// database, SCHEDULE_BUCKET a MinIO bucket of parish objects. With
// none set, venues are listed without schedules.
func loadTable(ctx context.Context) schedule.Table {
	if path, ok := os.LookupEnv("SCHEDULE_FILE"); ok {
		table, err := schedule.LoadTable(path)
		if err != nil {
			log.Fatalf("Failed to load schedule table: %v", err)
		}
		log.Printf("Loaded schedules for %d parishes from %s", len(table), path)
		return table
	}
	if dsn, ok := os.LookupEnv("SCHEDULE_DSN"); ok {
		table, err := storage.LoadTableFromPostgres(ctx, dsn)
		if err != nil {
			log.Fatalf("Failed to load schedule table: %v", err)
		}
		log.Printf("Loaded schedules for %d parishes from postgres", len(table))
		return table
	}
	if bucket, ok := os.LookupEnv("SCHEDULE_BUCKET"); ok {
		store, err := storage.NewScheduleStore(keys.ParishSchedule)
		if err != nil {
			log.Fatalf("Failed to connect to schedule store: %v", err)
		}
		table, err := store.LoadTable(ctx, bucket)
		if err != nil {
			log.Fatalf("Failed to load schedule table: %v", err)
		}
		log.Printf("Loaded schedules for %d parishes from bucket %s", len(table), bucket)
		return table
	}
	log.Println("No SCHEDULE_FILE, SCHEDULE_DSN or SCHEDULE_BUCKET set; continuing without schedule data.")
	return schedule.Table{}
}
