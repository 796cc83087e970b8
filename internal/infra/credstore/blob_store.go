// Package credstore keeps the cached sign-in credential on the device.
package credstore

import (
	"context"
	"log/slog"

	"tontine/config"
	"tontine/internal/domain/service"
	"tontine/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const contentType = "text/plain; charset=utf-8"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// BlobStore is a CredentialStore backed by a gocloud blob bucket, one object per key.
type BlobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.CredentialStore, error) {
	store, err := Open(context.Background(), params.Config.CredentialStore.BucketURL, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens the bucket at bucketURL.
func Open(ctx context.Context, bucketURL string, logger *slog.Logger) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open credential bucket %q", bucketURL)
	}

	return &BlobStore{bucket: bucket, logger: logger}, nil
}

// Get returns the value stored under key. ok is false when nothing is stored.
func (s *BlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "read credential %q", key)
	}

	return string(data), true, nil
}

// Set stores value under key, replacing any previous value.
func (s *BlobStore) Set(ctx context.Context, key, value string) error {
	if err := s.bucket.WriteAll(ctx, key, []byte(value), &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "write credential %q", key)
	}

	s.logger.Debug("Credential stored", slog.String("key", key))

	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *BlobStore) Remove(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "remove credential %q", key)
	}

	s.logger.Debug("Credential removed", slog.String("key", key))

	return nil
}

// Close releases the bucket.
func (s *BlobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
