package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/filestorage"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/images"
)

// imageExtensions are the upload types that go through the image pipeline.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// documentExtensions are passed to storage untouched.
var documentExtensions = map[string]bool{
	".pdf": true,
}

// UploadService validates uploads, runs images through the resize/WebP
// pipeline and persists them via the storage chain.
type UploadService interface {
	// UploadFile stores one uploaded file and returns its public URL.
	UploadFile(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
	// DeleteFile removes a previously uploaded object by its storage key.
	DeleteFile(ctx context.Context, key string) error
}

type uploadServiceImpl struct {
	storage     filestorage.Storage
	processor   *images.Processor
	maxFileSize int64
	logger      zerolog.Logger
}

// NewUploadService creates a new upload service instance. maxFileSizeMB
// bounds the accepted upload size.
func NewUploadService(storage filestorage.Storage, processor *images.Processor, maxFileSizeMB int, logger zerolog.Logger) UploadService {
	return &uploadServiceImpl{
		storage:     storage,
		processor:   processor,
		maxFileSize: int64(maxFileSizeMB) * 1024 * 1024,
		logger:      logger,
	}
}

// UploadFile checks the extension allow-list and size cap, converts images
// to size-capped WebP, and stores the result.
func (s *uploadServiceImpl) UploadFile(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("%w: no file provided", apperrors.ErrValidationFailed)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	isImage := imageExtensions[ext]
	if !isImage && !documentExtensions[ext] {
		return "", apperrors.ErrFileTypeNotAllowed
	}

	if s.maxFileSize > 0 && fileHeader.Size > s.maxFileSize {
		return "", apperrors.ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if s.maxFileSize > 0 {
		reader = io.LimitReader(file, s.maxFileSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if s.maxFileSize > 0 && int64(len(data)) > s.maxFileSize {
		return "", apperrors.ErrFileTooLarge
	}

	var key, contentType string
	if isImage {
		processed, err := s.processor.Process(data)
		if err != nil {
			return "", err
		}
		data = processed
		key = "images/" + uuid.New().String() + ".webp"
		contentType = "image/webp"
	} else {
		key = "files/" + uuid.New().String() + ext
		contentType = "application/pdf"
	}

	url, err := s.storage.Store(ctx, key, contentType, data)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	s.logger.Info().Str("filename", fileHeader.Filename).Str("key", key).Msg("Upload stored")
	return url, nil
}

// DeleteFile removes an uploaded object
func (s *uploadServiceImpl) DeleteFile(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("%w: storage key is required", apperrors.ErrValidationFailed)
	}
	return s.storage.Delete(ctx, key)
}
