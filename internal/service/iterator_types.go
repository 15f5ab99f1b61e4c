package service

import (
	"context"

	"github.com/minio/minio-go/v7/pkg/notification"
	"github.com/segmentio/kafka-go"
)

// MessageIterator is the contract for consuming bucket-notification
// messages from a Kafka topic. Implementations own the lifecycle of
// the underlying consumer.
type MessageIterator interface {
	// Messages returns a receive-only channel of Kafka messages. The
	// channel is closed by the implementation when the consumer is
	// stopped or the underlying source is exhausted.
	Messages() <-chan kafka.Message

	// CommitOffset acknowledges that a message has been successfully
	// processed. Implementations using auto-commit may make this a
	// no-op.
	CommitOffset(ctx context.Context, msg kafka.Message) error
}

// LoaderFunc loads and decodes an object of type T from the object
// store, given the bucket and key named in a notification event.
// Implementations should be read-only and honor the context.
type LoaderFunc[T any] func(ctx context.Context, bucket, key string) (T, error)

// FetchedObject pairs a decoded object with the notification event
// that triggered its retrieval.
type FetchedObject[T any] struct {
	Data  T
	Event notification.Info
}
