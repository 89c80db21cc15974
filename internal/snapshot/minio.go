package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"dimred/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore keeps the snapshot as a single object in an S3-compatible bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
	object string
}

func NewMinioStore(ctx context.Context, cfg config.MinioCfg) (*MinioStore, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("snapshot: minio needs endpoint and bucket")
	}
	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: minio client: %w", err)
	}
	s := &MinioStore{client: cli, bucket: cfg.Bucket, object: cfg.Object}
	if err := s.ensureBucket(ctx, cfg.Region); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MinioStore) Location() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.object)
}

func (s *MinioStore) ensureBucket(ctx context.Context, region string) error {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("snapshot: bucket %s: %w", s.bucket, err)
	}
	if ok {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("snapshot: make bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Save is a single PutObject; S3 replaces objects atomically.
func (s *MinioStore) Save(ctx context.Context, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/x-protobuf"})
	if err != nil {
		return fmt.Errorf("snapshot: put %s: %w", s.Location(), err)
	}
	return nil
}

func (s *MinioStore) Load(ctx context.Context) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.mapErr(err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return data, nil
}

func (s *MinioStore) mapErr(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%w: %s", ErrNotFound, s.Location())
	}
	return fmt.Errorf("snapshot: get %s: %w", s.Location(), err)
}
