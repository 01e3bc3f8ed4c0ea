// Package objectstore serves time-limited download URLs for managed files.
// Raw object locations never leave the server.
package objectstore

import (
	"context"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/valdes557/digitalmarket/internal/adapter/config"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"go.uber.org/zap"
)

type MinioStore struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

func NewMinioStore(ctx context.Context, cfg *config.Storage, log *zap.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	log.Info("object store initialized",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.Bucket),
		zap.Bool("bucketExists", exists))

	return &MinioStore{
		client: client,
		bucket: cfg.Bucket,
		logger: log,
	}, nil
}

func (s *MinioStore) PresignDownload(ctx context.Context, objectKey string, ttl time.Duration) (string, error) {
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey, ttl, url.Values{})
	if err != nil {
		s.logger.Error("presign failed", zap.String("object", objectKey), zap.Error(err))
		return "", domain.ErrStorageUnavailable
	}
	return presigned.String(), nil
}

// Disabled is the fallback when no object store is configured: only files
// with a static path can be served.
type Disabled struct{}

func (Disabled) PresignDownload(ctx context.Context, objectKey string, ttl time.Duration) (string, error) {
	return "", domain.ErrStorageUnavailable
}
