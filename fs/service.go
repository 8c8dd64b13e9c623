package fs

import (
	"context"
)

// Service abstracts content transfer so loaders can run against local files,
// in-memory storage in tests, or any scheme the backing layer supports.
type Service interface {
	// Exists checks whether an asset is present at the given URL.
	Exists(ctx context.Context, URL string) (bool, error)
	// Download returns the content of the asset at the given URL.
	Download(ctx context.Context, URL string) ([]byte, error)
	// Upload stores content at the given URL.
	Upload(ctx context.Context, URL string, data []byte) error
}
