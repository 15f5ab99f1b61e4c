// Package service wires the schedule ingestion stream together: it
// consumes bucket-notification events from a message source (Kafka via
// pkg/kafkaclient), loads the referenced schedule objects from
// S3/MinIO through a pluggable LoaderFunc, and yields them for
// downstream table building.
package service

import (
	"context"
	"encoding/json"
	"log"
	"net/url"

	"github.com/minio/minio-go/v7/pkg/notification"
)

// Iterator consumes messages from a MessageIterator, interprets each
// message as a MinIO/S3 notification, loads the referenced object via
// its LoaderFunc, and yields FetchedObject items on a channel. It is
// generic over the loaded item type T.
//
// The Iterator does not manage the lifecycle of the underlying message
// source; callers start and stop their consumer outside and pass in an
// implementation of MessageIterator.
type Iterator[T any] struct {
	msgIterator MessageIterator
	loader      LoaderFunc[T]
}

func NewIterator[T any](iterator MessageIterator, loader LoaderFunc[T]) *Iterator[T] {
	return &Iterator[T]{
		msgIterator: iterator,
		loader:      loader,
	}
}

// Objects starts a goroutine that receives notification messages,
// loads each referenced object, and emits it on the returned channel.
// The message offset is committed only after a successful load.
// Deserialization and load errors are logged and the message skipped;
// the channel is closed when the underlying Messages() channel closes.
func (it *Iterator[T]) Objects(ctx context.Context) <-chan *FetchedObject[T] {
	out := make(chan *FetchedObject[T])
	go func() {
		defer close(out)

		for msg := range it.msgIterator.Messages() {
			var event notification.Info
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("Error unmarshalling notification: %v", err)
				continue
			}
			if len(event.Records) == 0 {
				log.Printf("Notification with no records, skipping")
				continue
			}
			s3 := event.Records[0].S3
			objectKey, err := url.QueryUnescape(s3.Object.Key)
			if err != nil {
				log.Printf("Error decoding object key %q: %v", s3.Object.Key, err)
				continue
			}
			data, err := it.loader(ctx, s3.Bucket.Name, objectKey)
			if err != nil {
				log.Printf("Error loading object: %v", err)
				continue
			}

			out <- &FetchedObject[T]{Data: data, Event: event}

			if err := it.msgIterator.CommitOffset(ctx, msg); err != nil {
				log.Printf("Failed to commit offset: %v", err)
			}
		}
	}()
	return out
}
