// Package s3 provides the S3-backed implementation of the asset storage
// collaborator used to hold avatar and cover images.
package s3

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	portssvc "github.com/vidstream/vidstream_backend/internal/core/ports/services"
	"github.com/vidstream/vidstream_backend/internal/platform/config"
)

// AssetStorage implements portssvc.AssetStorageSvcFacade on top of an
// S3-compatible object store (AWS S3 or MinIO via a custom endpoint).
type AssetStorage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

var _ portssvc.AssetStorageSvcFacade = (*AssetStorage)(nil)

// NewAssetStorage builds the S3 client from application configuration.
func NewAssetStorage(ctx context.Context, cfg *config.Config) (*AssetStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &AssetStorage{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}, nil
}

// objectKey spreads uploads over date-based prefixes so buckets stay listable.
func objectKey(fileName string) string {
	d := time.Now()
	ext := path.Ext(fileName)
	return fmt.Sprintf("assets/%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.NewString(), ext)
}

// UploadAsset stores the asset and returns its stable public URL.
func (s *AssetStorage) UploadAsset(ctx context.Context, asset portssvc.AssetReference) (string, error) {
	key := objectKey(asset.FileName)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   asset.Body,
	}
	if asset.ContentType != "" {
		input.ContentType = aws.String(asset.ContentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}

	return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
}
