package s3

import (
	"context"
	"fmt"
	"path"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/infrastructure/logger"
	"github.com/bnema/vidqueue/internal/port"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// Mirror copies published thumbnails to an S3-compatible bucket and hands out
// the object URL. The local copy stays in place for the static handler.
type Mirror struct {
	client *minio.Client
	bucket string
	local  port.ThumbnailStore
}

func NewMirror(cfg Config, local port.ThumbnailStore) (*Mirror, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}
	return &Mirror{client: client, bucket: cfg.Bucket, local: local}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (m *Mirror) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", m.bucket, err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", m.bucket, err)
	}
	logger.Info.Printf("created bucket %s", m.bucket)
	return nil
}

func objectKey(jobID string) string {
	return path.Join("thumbnails", domain.ThumbnailFilename(jobID))
}

func (m *Mirror) Publish(ctx context.Context, jobID, localPath string) (string, error) {
	if _, err := m.local.Publish(ctx, jobID, localPath); err != nil {
		return "", err
	}

	key := objectKey(jobID)
	_, err := m.client.FPutObject(ctx, m.bucket, key, localPath, minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}
	return m.client.EndpointURL().String() + "/" + m.bucket + "/" + key, nil
}

func (m *Mirror) Remove(ctx context.Context, jobID string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, objectKey(jobID), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("s3 remove object: %w", err)
	}
	return m.local.Remove(ctx, jobID)
}

var _ port.ThumbnailStore = (*Mirror)(nil)
