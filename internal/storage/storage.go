package storage

import (
	"fmt"
	"io"
	"log/slog"

	cfg "github.com/gracechapel/api/internal/config"
)

// Storage defines the interface for file storage operations
type Storage interface {
	// Save stores a file at the given path
	Save(path string, file io.Reader) error

	// Delete removes a file at the given path; a missing file is not an error
	Delete(path string) error

	// URL returns the public URL for accessing the file
	URL(path string) string
}

// New creates the storage backend selected by config.
// "local" writes under the upload directory; "s3" targets any S3-compatible
// service (AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2, etc.).
func New(c *cfg.Config) (Storage, error) {
	switch c.StorageDriver {
	case "local", "":
		slog.Info("initializing local storage", "dir", c.UploadDir)
		return NewLocalStorage(c.UploadDir)
	case "s3":
		slog.Info("initializing S3 storage",
			"bucket", c.S3Bucket,
			"region", c.S3Region,
			"endpoint", c.S3Endpoint,
		)
		return NewS3Storage(S3Config{
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Endpoint:  c.S3Endpoint,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
}
