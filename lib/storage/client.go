package storage

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/sitebeam/config"
)

// Client wraps the S3-compatible object store used for drawing files,
// documents and warranty attachments. All file processing (rasterization,
// thumbnails) happens outside this service; we only move bytes via presigned URLs.
type Client struct {
	api    *minio.Client
	bucket string
}

// NewClient builds a storage client from the application config
func NewClient(cfg *config.Config) (*Client, error) {
	api, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &Client{api: api, bucket: cfg.StorageBucket}, nil
}

// EnsureBucket creates the bucket if it does not exist yet
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return err
	}
	if !exists {
		if err := c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
		log.Printf("✅ Created storage bucket %s", c.bucket)
	}
	return nil
}

// PresignUpload returns a presigned PUT URL for a new object key
func (c *Client) PresignUpload(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := c.api.PresignedPutObject(ctx, c.bucket, key, expiry)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// PresignDownload returns a presigned GET URL for an existing object key
func (c *Client) PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error) {
	params := url.Values{}
	u, err := c.api.PresignedGetObject(ctx, c.bucket, key, expiry, params)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Remove deletes an object, best effort
func (c *Client) Remove(ctx context.Context, key string) error {
	return c.api.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{})
}
