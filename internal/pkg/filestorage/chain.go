package filestorage

import (
	"context"
	"fmt"

	"github.com/eohue/ibookee-web-sub001/internal/pkg/logger"
)

// Chain tries each backend in order and returns the first successful
// result. Uploads only fail when every configured backend fails.
type Chain struct {
	backends []Storage
}

// NewChain builds a chain from the given backends, skipping nils so callers
// can pass unconfigured backends directly.
func NewChain(backends ...Storage) *Chain {
	chain := &Chain{}
	for _, b := range backends {
		if b != nil {
			chain.backends = append(chain.backends, b)
		}
	}
	return chain
}

func (c *Chain) Name() string {
	return "chain"
}

// Store attempts each backend in order.
func (c *Chain) Store(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if len(c.backends) == 0 {
		return "", fmt.Errorf("no storage backends configured")
	}

	var lastErr error
	for _, backend := range c.backends {
		url, err := backend.Store(ctx, key, contentType, data)
		if err == nil {
			return url, nil
		}
		logger.Warn().Err(err).Str("backend", backend.Name()).Str("key", key).Msg("Storage backend failed, trying next")
		lastErr = err
	}

	return "", fmt.Errorf("all storage backends failed: %w", lastErr)
}

// Delete removes the object from every backend. A backend that never held
// the object reports success, so the aggregate stays idempotent.
func (c *Chain) Delete(ctx context.Context, key string) error {
	var lastErr error
	for _, backend := range c.backends {
		if err := backend.Delete(ctx, key); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
