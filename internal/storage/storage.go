package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"absss-backend/config"
)

// MediaStore hosts uploaded binaries. The backend only stores the URL it
// hands back; it never reads the objects again.
type MediaStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	URL(key string) string
	Delete(ctx context.Context, key string) error
}

// New picks the host named by cfg.Provider. It returns nil, nil when no
// provider is configured.
func New(ctx context.Context, cfg config.MediaConfig) (MediaStore, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "minio":
		return NewMinioStore(ctx, cfg)
	case "s3":
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown media provider %q", cfg.Provider)
	}
}

// publicURL joins base and key. Without a base, the object is addressed
// path-style on the endpoint.
func publicURL(base, endpoint, bucket string, useSSL bool, key string) string {
	if base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	host := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	return fmt.Sprintf("%s://%s/%s/%s", scheme, strings.TrimRight(host, "/"), bucket, key)
}
