package artifact

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/slipway-ci/slipway/config"
)

// linkTTL bounds how long a published report link stays valid.
const linkTTL = 7 * 24 * time.Hour

// MinioStore archives reports in an S3-compatible bucket and links them with
// presigned GET URLs.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore connects to the S3-compatible endpoint named by cfg.
func NewMinioStore(cfg config.ArtifactsRef) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey(), cfg.SecretKey(), ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to object store: %w", err)
	}
	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

func (s *MinioStore) Archive(ctx context.Context, src, key string) (string, error) {
	opts := minio.PutObjectOptions{ContentType: contentType(src)}
	if _, err := s.client.FPutObject(ctx, s.bucket, key, src, opts); err != nil {
		return "", fmt.Errorf("uploading report: %w", err)
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, linkTTL, nil)
	if err != nil {
		return "", fmt.Errorf("presigning report link: %w", err)
	}
	return u.String(), nil
}

func contentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
