package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesTargetOrList(t *testing.T) {
	assert.True(t, Is(ErrProjectNotFound, ErrProjectNotFound))
	assert.True(t, Is(ErrEventNotFound, ErrResourceNotFound, ErrProjectNotFound, ErrEventNotFound))
	assert.False(t, Is(ErrEventNotFound, ErrResourceNotFound, ErrProjectNotFound))
	assert.True(t, Is(fmt.Errorf("wrapped: %w", ErrPostNotFound), ErrResourceNotFound, ErrPostNotFound))
}

func TestDomainSentinelsAreDistinct(t *testing.T) {
	// Each domain not-found error is its own sentinel, not a wrapper
	// around the generic one.
	assert.False(t, errors.Is(ErrProjectNotFound, ErrResourceNotFound))
	assert.False(t, errors.Is(ErrEventNotFound, ErrProjectNotFound))
}

func TestCustomErrorUnwrapsToSentinel(t *testing.T) {
	err := NewResourceNotFoundError("project 9 does not exist")
	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.Contains(t, err.Error(), "project 9 does not exist")

	conflict := NewConflictError("duplicate slug")
	assert.True(t, errors.Is(conflict, ErrConflict))
}
