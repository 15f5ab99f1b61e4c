package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"masstimes/internal/env"
	"masstimes/internal/keys"
	"masstimes/internal/models"
	"masstimes/internal/schedule"
	"masstimes/internal/storage"
)

func main() {
	env.LoadEnv()

	file := flag.String("file", "schedules.json", "schedule dataset to load")
	flag.Parse()

	bucketName := env.MustGetEnv("SCHEDULE_BUCKET_NAME")
	ctx := context.Background()
	start := time.Now()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Error reading dataset: %v", err)
	}
	var dataset map[string][]schedule.Entry
	if err := json.Unmarshal(data, &dataset); err != nil {
		log.Fatalf("Error decoding dataset: %v", err)
	}
	fmt.Printf("Loading %d parish schedules from %s...\n", len(dataset), *file)

	store, err := storage.NewScheduleStore(keys.ParishSchedule)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := store.CreateBucket(ctx, bucketName, ""); err != nil {
		log.Fatal(err)
	}

	scheduleCh := make(chan models.ParishSchedule)
	go func() {
		defer close(scheduleCh)
		for parish, entries := range dataset {
			scheduleCh <- models.ParishSchedule{Parish: parish, Entries: entries}
		}
	}()
	store.StoreFromChannel(ctx, bucketName, scheduleCh)

	fmt.Printf("\nFinished loading all schedules, took %s\n", time.Since(start))
}
