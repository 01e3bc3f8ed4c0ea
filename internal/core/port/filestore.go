package port

import (
	"context"
	"time"
)

// FileStore produces short-lived download URLs for managed objects.
// Raw object locations never reach a client.
//
//go:generate mockgen -source=filestore.go -destination=mock/filestore.go -package=mock
type FileStore interface {
	PresignDownload(ctx context.Context, objectKey string, ttl time.Duration) (string, error)
}
