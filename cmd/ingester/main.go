// The ingester keeps a schedule table snapshot in sync with the object
// store: it consumes bucket-notification events from Kafka and folds
// each referenced parish schedule into a rebuilt table.
package main

import (
	"context"
	"log"

	"masstimes/internal/env"
	"masstimes/internal/keys"
	"masstimes/internal/models"
	"masstimes/internal/schedule"
	"masstimes/internal/service"
	"masstimes/internal/storage"
	"masstimes/pkg/graceful"
	"masstimes/pkg/kafkaclient"
)

func main() {
	env.LoadEnv()

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	kafkaBroker := env.MustGetEnv("KAFKA_BROKER")
	kafkaTopic := env.MustGetEnv("KAFKA_TOPIC")
	kafkaGroupID := env.MustGetEnv("KAFKA_GROUP_ID")

	log.Printf("Connecting to Kafka broker: %s on topic: %s with group ID: %s", kafkaBroker, kafkaTopic, kafkaGroupID)

	consumer, err := kafkaclient.NewKafkaConsumer(kafkaTopic, kafkaGroupID, kafkaBroker)
	if err != nil {
		log.Fatalf("Failed to create kafka consumer %v", err)
	}

	store, err := storage.NewScheduleStore(keys.ParishSchedule)
	if err != nil {
		log.Fatal(err)
	}

	consumer.StartConsuming(ctx)
	iterator := service.NewIterator(consumer, func(ctx context.Context, bucket, key string) (*models.ParishSchedule, error) {
		return store.GetObject(ctx, bucket, key)
	})

	table := make(schedule.Table)
	for obj := range iterator.Objects(ctx) {
		key := schedule.Normalize(obj.Data.Parish)
		if key == "" {
			log.Printf("Ignoring schedule with unusable parish name %q", obj.Data.Parish)
			continue
		}
		table[key] = obj.Data.Entries
		log.Printf("Updated schedule for '%s' (%d parishes known)", obj.Data.Parish, len(table))
	}

	consumer.Stop()
	log.Printf("Ingester exiting with %d parishes in the table.", len(table))
}
