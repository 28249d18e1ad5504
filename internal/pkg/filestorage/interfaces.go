// Package filestorage provides the upload backends (S3, Supabase storage,
// local disk) behind one Storage interface, plus a fallback chain that tries
// them in order.
package filestorage

import "context"

// Storage persists an uploaded object and returns its public URL.
type Storage interface {
	// Name identifies the backend in logs.
	Name() string
	// Store writes the object under key and returns the URL clients use to
	// fetch it. Key is a relative path such as "images/abc.webp".
	Store(ctx context.Context, key, contentType string, data []byte) (string, error)
	// Delete removes a previously stored object. Deleting a missing object
	// is not an error.
	Delete(ctx context.Context, key string) error
}
