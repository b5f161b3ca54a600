// Package storage wraps Google Cloud Storage access for bill objects.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	gcs "cloud.google.com/go/storage"
)

// ObjectStore is the storage surface the pipeline needs: confirm an object
// exists, fetch its bytes, and (for the upload tool) write a local file.
type ObjectStore interface {
	Exists(ctx context.Context, bucket, object string) error
	Download(ctx context.Context, bucket, object string) ([]byte, error)
	Upload(ctx context.Context, bucket, object, filePath string) error
}

// Client implements ObjectStore on top of a shared *storage.Client. The
// client's lifecycle is owned by the process entry point.
type Client struct {
	gcs *gcs.Client
}

// NewClient creates a storage client using Application Default Credentials.
func NewClient(ctx context.Context) (*Client, error) {
	c, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("NewClient: create storage client: %w", err)
	}
	return &Client{gcs: c}, nil
}

// Close releases the underlying client connection.
func (c *Client) Close() error {
	if c.gcs != nil {
		return c.gcs.Close()
	}
	return nil
}

// Exists performs a metadata read against the object, the equivalent of a
// HEAD request. It returns an error when the object is missing or
// unreadable.
func (c *Client) Exists(ctx context.Context, bucket, object string) error {
	if _, err := c.gcs.Bucket(bucket).Object(object).Attrs(ctx); err != nil {
		return fmt.Errorf("Exists: stat object %s/%s: %w", bucket, object, err)
	}
	return nil
}

// Download fetches the full object bytes.
func (c *Client) Download(ctx context.Context, bucket, object string) ([]byte, error) {
	rc, err := c.gcs.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("Download: reading object %s/%s: %w", bucket, object, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("Download: reading bytes: %w", err)
	}

	return data, nil
}

// Upload writes a local file to the bucket under the given object name.
func (c *Client) Upload(ctx context.Context, bucket, object, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("Upload: open file %q: %w", filePath, err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := c.gcs.Bucket(bucket).Object(object).NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return fmt.Errorf("Upload: copy file to writer: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("Upload: finalize upload: %w", err)
	}

	return nil
}

var _ ObjectStore = (*Client)(nil)
