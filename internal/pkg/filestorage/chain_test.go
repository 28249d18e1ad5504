package filestorage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	name      string
	storeErr  error
	deleteErr error
	stored    map[string][]byte
	deleted   []string
}

func newFakeBackend(name string, storeErr error) *fakeBackend {
	return &fakeBackend{name: name, storeErr: storeErr, stored: map[string][]byte{}}
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Store(_ context.Context, key, _ string, data []byte) (string, error) {
	if f.storeErr != nil {
		return "", f.storeErr
	}
	f.stored[key] = data
	return "https://" + f.name + ".example/" + key, nil
}

func (f *fakeBackend) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return f.deleteErr
}

func TestChainStoreUsesFirstBackend(t *testing.T) {
	primary := newFakeBackend("s3", nil)
	fallback := newFakeBackend("local", nil)
	chain := NewChain(primary, fallback)

	url, err := chain.Store(context.Background(), "images/a.webp", "image/webp", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example/images/a.webp", url)
	assert.Empty(t, fallback.stored)
}

func TestChainStoreFallsBack(t *testing.T) {
	primary := newFakeBackend("s3", errors.New("bucket unreachable"))
	fallback := newFakeBackend("local", nil)
	chain := NewChain(primary, fallback)

	url, err := chain.Store(context.Background(), "images/a.webp", "image/webp", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, "https://local.example/images/a.webp", url)
}

func TestChainStoreAllFail(t *testing.T) {
	chain := NewChain(
		newFakeBackend("s3", errors.New("s3 down")),
		newFakeBackend("local", errors.New("disk full")),
	)

	_, err := chain.Store(context.Background(), "k", "image/webp", nil)
	assert.ErrorContains(t, err, "disk full")
}

func TestChainStoreNoBackends(t *testing.T) {
	chain := NewChain(nil, nil)
	_, err := chain.Store(context.Background(), "k", "image/webp", nil)
	assert.ErrorContains(t, err, "no storage backends")
}

func TestChainDeleteHitsEveryBackend(t *testing.T) {
	primary := newFakeBackend("s3", nil)
	primary.deleteErr = errors.New("s3 delete failed")
	fallback := newFakeBackend("local", nil)
	chain := NewChain(primary, fallback)

	err := chain.Delete(context.Background(), "images/a.webp")
	assert.Error(t, err)
	assert.Equal(t, []string{"images/a.webp"}, primary.deleted)
	assert.Equal(t, []string{"images/a.webp"}, fallback.deleted)
}
