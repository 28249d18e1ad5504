package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	storage_go "github.com/supabase-community/storage-go"

	"github.com/eohue/ibookee-web-sub001/internal/pkg/logger"
)

// SupabaseStorage stores objects in a Supabase storage bucket. It sits
// between S3 and local disk in the storage chain.
type SupabaseStorage struct {
	client *storage_go.Client
	bucket string
}

// NewSupabaseStorage builds a Supabase storage client. Returns an error when
// the project URL or service key is unset so the chain can skip the backend.
func NewSupabaseStorage(projectURL, serviceKey, bucket string) (*SupabaseStorage, error) {
	if projectURL == "" || serviceKey == "" {
		return nil, fmt.Errorf("supabase storage not configured")
	}

	storageURL := strings.TrimRight(projectURL, "/") + "/storage/v1"
	return &SupabaseStorage{
		client: storage_go.NewClient(storageURL, serviceKey, nil),
		bucket: bucket,
	}, nil
}

func (s *SupabaseStorage) Name() string {
	return "supabase"
}

// Store uploads the object and returns its public URL.
func (s *SupabaseStorage) Store(_ context.Context, key, contentType string, data []byte) (string, error) {
	upsert := true
	_, err := s.client.UploadFile(s.bucket, key, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Supabase upload failed")
		return "", fmt.Errorf("failed to upload to supabase: %w", err)
	}

	resp := s.client.GetPublicUrl(s.bucket, key)
	logger.Info().Str("key", key).Str("url", resp.SignedURL).Msg("File stored in Supabase")
	return resp.SignedURL, nil
}

// Delete removes the object from the bucket.
func (s *SupabaseStorage) Delete(_ context.Context, key string) error {
	if _, err := s.client.RemoveFile(s.bucket, []string{key}); err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Supabase delete failed")
		return fmt.Errorf("failed to delete from supabase: %w", err)
	}
	return nil
}
