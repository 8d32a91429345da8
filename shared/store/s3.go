package store

import (
	"context"
	"errors"
	"stayledger/infras/s3"
	"stayledger/shared/constant"
)

const objectSuffix = ".json"

type s3Store struct {
	bucket s3.S3
}

// NewS3 writes each key as one JSON object.
func NewS3(bucket s3.S3) Store {
	return &s3Store{bucket: bucket}
}

func (s *s3Store) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := s.bucket.Download(ctx, key+objectSuffix)
	if errors.Is(err, s3.ErrObjectNotFound) {
		return nil, ErrNotFound
	}

	return value, err
}

func (s *s3Store) Save(ctx context.Context, key string, value []byte) error {
	return s.bucket.Upload(ctx, key+objectSuffix, constant.ContentTypeJSON, value)
}
