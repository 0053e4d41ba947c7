// Package publish uploads finished renders to S3-compatible object
// storage.
package publish

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fbxshot/fbxshot/cmd/internal/job"
	"github.com/fbxshot/fbxshot/cmd/internal/logs"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config holds the connection settings, normally filled from viper
// (upload_endpoint, upload_access_key, upload_secret_key, upload_ssl).
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// Upload copies the rendered image to dest, given as "bucket/key". The
// key may contain further slashes.
func Upload(ctx context.Context, cfg Config, dest, filePath string) error {
	bucket, key, err := splitDest(dest)
	if err != nil {
		return err
	}
	if cfg.Endpoint == "" {
		return &job.ConfigurationError{Flag: "upload", Reason: "no upload_endpoint configured"}
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return &job.PathError{Path: dest, Err: err}
	}

	info, err := client.FPutObject(ctx, bucket, key, filePath, minio.PutObjectOptions{
		ContentType: contentType(filePath),
	})
	if err != nil {
		return &job.PathError{Path: dest, Err: err}
	}

	logs.Info.Printf("Uploaded %s to %s/%s (%d bytes)\n", filePath, bucket, key, info.Size)
	return nil
}

func splitDest(dest string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(dest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", &job.ConfigurationError{
			Flag:   "upload",
			Reason: fmt.Sprintf("expected bucket/key, got %q", dest),
		}
	}
	return bucket, key, nil
}

func contentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".exr":
		return "image/x-exr"
	}
	return "application/octet-stream"
}
