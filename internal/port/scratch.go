package port

import (
	"context"
	"io"
)

// ScratchStore abstracts the transient per-upload file location. Files are
// written, read back for extraction, and removed within a single request.
type ScratchStore interface {
	Save(ctx context.Context, name string, body io.Reader) (string, error)
	Read(ctx context.Context, name string) ([]byte, error)
	Remove(ctx context.Context, name string) error
	Ping(ctx context.Context) error
}
