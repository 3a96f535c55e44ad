package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/stacklayout/pkg/errors"
	"github.com/matzehuels/stacklayout/pkg/render"
	"github.com/matzehuels/stacklayout/pkg/render/nodelink"
	"github.com/matzehuels/stacklayout/pkg/tree"
)

// Render generates output artifacts for a laid-out tree in the requested
// formats.
func Render(ctx context.Context, root *tree.Node, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := renderFormat(ctx, root, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, root *tree.Node, format string, opts Options) ([]byte, error) {
	drawOpts := []render.Option{render.WithScale(opts.Scale)}

	switch format {
	case FormatJSON:
		return render.JSON(root)
	case FormatSVG:
		return render.SVG(root, drawOpts...), nil
	case FormatPNG:
		return render.PNG(root, drawOpts...)
	case FormatDOT:
		return []byte(nodelink.ToDOT(root, nodelink.Options{Detailed: opts.Detailed})), nil
	case FormatGraph:
		return nodelink.RenderSVG(ctx, nodelink.ToDOT(root, nodelink.Options{Detailed: opts.Detailed}))
	case FormatText:
		return []byte(render.Text(root)), nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
}
