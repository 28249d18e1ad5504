package filestorage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eohue/ibookee-web-sub001/internal/pkg/logger"
)

// LocalStorage writes objects to the local filesystem. It is the terminal
// fallback of the storage chain and always succeeds when the disk does.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a LocalStorage rooted at basePath. Returned URLs
// are baseURL + "/uploads/" + key.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

func (ls *LocalStorage) Name() string {
	return "local"
}

// Store writes the object under basePath/key, creating subdirectories as
// needed.
func (ls *LocalStorage) Store(_ context.Context, key, _ string, data []byte) (string, error) {
	dstPath := filepath.Join(ls.basePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create upload subdirectory")
		return "", fmt.Errorf("failed to create upload subdirectory: %w", err)
	}

	if err := os.WriteFile(dstPath, data, 0o644); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write file")
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	url := ls.baseURL + "/uploads/" + key
	logger.Info().Str("key", key).Str("url", url).Msg("File stored locally")
	return url, nil
}

// Delete removes the object; a missing file is treated as already deleted.
func (ls *LocalStorage) Delete(_ context.Context, key string) error {
	path := filepath.Join(ls.basePath, filepath.FromSlash(key))

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Warn().Str("path", path).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(path); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
