package fs

import (
	"bytes"
	"context"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// afsService is a Service implemented using github.com/viant/afs
type afsService struct {
	svc afs.Service
}

// NewAFS constructs a Service backed by the default AFS service.
func NewAFS() Service {
	return &afsService{svc: afs.New()}
}

func (a *afsService) Exists(ctx context.Context, URL string) (bool, error) {
	return a.svc.Exists(ctx, URL)
}

func (a *afsService) Download(ctx context.Context, URL string) ([]byte, error) {
	return a.svc.DownloadWithURL(ctx, URL)
}

func (a *afsService) Upload(ctx context.Context, URL string, data []byte) error {
	return a.svc.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data))
}
