package pairly

import (
	"context"

	"github.com/viant/pairly/fs"
	"github.com/viant/pairly/service"
)

// Load builds a ready dataset service from a config URL. It is a convenience
// facade over service.LoadConfig and service.New sharing one file service.
func Load(ctx context.Context, configURL string) (*service.Service, error) {
	fsys := fs.NewAFS()
	config, err := service.LoadConfig(ctx, fsys, configURL)
	if err != nil {
		return nil, err
	}
	return service.New(ctx, config, service.WithFS(fsys))
}
