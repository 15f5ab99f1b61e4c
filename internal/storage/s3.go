package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"masstimes/internal/models"
	"masstimes/internal/schedule"
)

// KeyFunc computes the object key under which a parish schedule is
// stored.
type KeyFunc func(models.ParishSchedule) string

// ScheduleStore is a client for parish schedule objects in
// S3-compatible storage.
type ScheduleStore struct {
	client *minio.Client
	keyFor KeyFunc
	count  int
}

// NewScheduleStore initializes a storage client from the MINIO_*
// environment variables.
func NewScheduleStore(keyFor KeyFunc) (*ScheduleStore, error) {
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	if minioEndpoint == "" || minioAccessKey == "" || minioSecretKey == "" {
		return nil, fmt.Errorf("missing one or more required environment variables: MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY")
	}

	minioClient, err := minio.New(minioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(minioAccessKey, minioSecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	log.Println("Successfully connected to MinIO endpoint:", minioEndpoint)
	return &ScheduleStore{client: minioClient, keyFor: keyFor}, nil
}

func (s *ScheduleStore) CreateBucket(ctx context.Context, bucketName string, location string) (bool, error) {
	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return false, fmt.Errorf("error checking bucket existence: %v", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location}); err != nil {
			return false, err
		}
	}
	return true, nil
}

// StoreFromChannel reads parish schedules from a channel and stores
// each one in the given bucket, skipping parishes whose name
// normalizes to nothing (they could never be looked up).
func (s *ScheduleStore) StoreFromChannel(ctx context.Context, bucketName string, schedules <-chan models.ParishSchedule) {
	var wg sync.WaitGroup

	for ps := range schedules {
		if schedule.Normalize(ps.Parish) == "" {
			log.Printf("Skipping parish with unusable name %q", ps.Parish)
			continue
		}
		s.count++
		wg.Add(1)
		go func(p models.ParishSchedule) {
			defer wg.Done()
			if err := s.storeSingle(ctx, bucketName, p); err != nil {
				log.Printf("Error storing schedule for '%s': %v", p.Parish, err)
			}
		}(ps)
	}

	wg.Wait()
	log.Printf("Finished storing all schedules from the channel. Count %d \n", s.count)
}

// storeSingle stores one parish schedule. It will not overwrite an
// object that already exists.
func (s *ScheduleStore) storeSingle(ctx context.Context, bucketName string, ps models.ParishSchedule) error {
	objectKey := s.keyFor(ps)

	_, err := s.client.StatObject(ctx, bucketName, objectKey, minio.StatObjectOptions{})
	if err == nil {
		log.Printf("Schedule for '%s' already exists in bucket '%s'. Ignoring write operation.", ps.Parish, bucketName)
		return nil
	}
	if minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return fmt.Errorf("failed to check for existing object: %v", err)
	}

	data, err := json.Marshal(ps)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule to JSON: %v", err)
	}

	_, err = s.client.PutObject(
		ctx,
		bucketName,
		objectKey,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to store object in S3: %v", err)
	}

	log.Printf("Successfully stored schedule for '%s' in bucket '%s' with key '%s'", ps.Parish, bucketName, objectKey)
	return nil
}

// GetObject retrieves one parish schedule object by key.
func (s *ScheduleStore) GetObject(ctx context.Context, bucketName string, objectKey string) (*models.ParishSchedule, error) {
	object, err := s.client.GetObject(ctx, bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from S3: %v", err)
	}
	defer object.Close()

	var ps models.ParishSchedule
	if err := json.NewDecoder(object).Decode(&ps); err != nil {
		return nil, fmt.Errorf("failed to decode JSON from stream: %v", err)
	}
	return &ps, nil
}

// LoadTable lists every schedule object in the bucket and assembles
// the full lookup table, keyed by normalized parish name. Intended to
// run once at process start.
func (s *ScheduleStore) LoadTable(ctx context.Context, bucketName string) (schedule.Table, error) {
	table := make(schedule.Table)

	for object := range s.client.ListObjects(ctx, bucketName, minio.ListObjectsOptions{
		Prefix:    "schedules/",
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("listing schedule objects: %v", object.Err)
		}
		ps, err := s.GetObject(ctx, bucketName, object.Key)
		if err != nil {
			log.Printf("Skipping unreadable object '%s': %v", object.Key, err)
			continue
		}
		foldParish(table, ps)
	}
	return table, nil
}

// foldParish merges one parish schedule into the table under its
// normalized key; parishes whose name normalizes to nothing are
// dropped so an empty key can never match.
func foldParish(table schedule.Table, ps *models.ParishSchedule) {
	key := schedule.Normalize(ps.Parish)
	if key == "" {
		return
	}
	table[key] = append(table[key], ps.Entries...)
}
