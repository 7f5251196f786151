package infra

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Jeremi16/synify-be/config"
)

const (
	// Presigned URL lifetimes. Streaming URLs are short-lived on purpose;
	// upload URLs get a little longer for slow admin connections.
	DownloadURLExpiry = 300 * time.Second
	UploadURLExpiry   = 600 * time.Second
)

type MinioClient struct {
	Client   *minio.Client
	Admin    *madmin.AdminClient
	Bucket   string
	Endpoint string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}

	accessKey := cfg.Minio.AccessKey
	if accessKey == "" {
		panic("MinIO access key is not configured")
	}

	secretKey := cfg.Minio.SecretKey
	if secretKey == "" {
		panic("MinIO secret key is not configured")
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	madminClient, err := madmin.New(endpoint, accessKey, secretKey, cfg.Minio.UseSSL)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO admin client: %v", err))
	}

	return &MinioClient{
		Client:   minioClient,
		Admin:    madminClient,
		Bucket:   cfg.Minio.Bucket,
		Endpoint: endpoint,
	}
}

// EnsureBucket creates the media bucket if it doesn't exist.
func (m *MinioClient) EnsureBucket(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := m.Client.MakeBucket(ctx, m.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// PresignedGetURL returns a time-bound URL for streaming an object directly
// from storage. The backend never proxies the bytes itself.
func (m *MinioClient) PresignedGetURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("object key cannot be empty")
	}

	signed, err := m.Client.PresignedGetObject(ctx, m.Bucket, key, DownloadURLExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign download URL: %w", err)
	}

	return signed.String(), nil
}

// PresignedPutURL returns a time-bound URL for uploading an object directly
// to storage.
func (m *MinioClient) PresignedPutURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("object key cannot be empty")
	}

	signed, err := m.Client.PresignedPutObject(ctx, m.Bucket, key, UploadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign upload URL: %w", err)
	}

	return signed.String(), nil
}

// PutObject writes a blob under the given key. Used by the ingestion
// pipeline, which holds the bytes it fetched from the downloader API.
func (m *MinioClient) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return fmt.Errorf("object key cannot be empty")
	}

	_, err := m.Client.PutObject(ctx, m.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}

	return nil
}

// ObjectExists performs an on-demand existence check for a stored key.
func (m *MinioClient) ObjectExists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, fmt.Errorf("object key cannot be empty")
	}

	_, err := m.Client.StatObject(ctx, m.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object: %w", err)
	}

	return true, nil
}

// RemoveObject deletes a blob. Callers treat failures as best-effort.
func (m *MinioClient) RemoveObject(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("object key cannot be empty")
	}

	if err := m.Client.RemoveObject(ctx, m.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// Health probes the storage backend through the admin API.
func (m *MinioClient) Health(ctx context.Context) error {
	if _, err := m.Admin.ServerInfo(ctx); err != nil {
		return fmt.Errorf("storage backend unhealthy: %w", err)
	}
	return nil
}
