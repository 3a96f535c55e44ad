package pipeline

import (
	"context"
	"io"

	"github.com/matzehuels/stacklayout/pkg/document"
)

// Load reads the document at path. The format follows the file extension.
func Load(ctx context.Context, path string) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return document.ReadFile(path)
}

// Decode reads a document from r in the given format.
func Decode(ctx context.Context, r io.Reader, format document.Format) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return document.Read(r, format)
}
