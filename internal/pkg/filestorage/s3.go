package filestorage

import (
	"bytes"
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/eohue/ibookee-web-sub001/internal/pkg/logger"
)

// S3Storage stores objects in an AWS S3 bucket. It is the primary backend of
// the storage chain.
type S3Storage struct {
	client *s3.Client
	bucket string
	region string
}

// NewS3Storage builds an S3 client from static credentials. Returns an error
// when the bucket or credentials are unset so the chain can skip the backend.
func NewS3Storage(ctx context.Context, bucket, region, accessKeyID, secretAccessKey string) (*S3Storage, error) {
	if bucket == "" || accessKeyID == "" {
		return nil, fmt.Errorf("s3 storage not configured")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &S3Storage{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

func (s *S3Storage) Name() string {
	return "s3"
}

// Store uploads the object and returns its virtual-hosted bucket URL.
func (s *S3Storage) Store(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("S3 upload failed")
		return "", fmt.Errorf("failed to upload to s3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	logger.Info().Str("key", key).Str("url", url).Msg("File stored in S3")
	return url, nil
}

// Delete removes the object from the bucket.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		logger.Error().Err(err).Str("key", key).Msg("S3 delete failed")
		return fmt.Errorf("failed to delete from s3: %w", err)
	}
	return nil
}
