package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stacklayout/pkg/document"
	"github.com/matzehuels/stacklayout/pkg/errors"
	"github.com/matzehuels/stacklayout/pkg/layout"
	"github.com/matzehuels/stacklayout/pkg/measure"
	"github.com/matzehuels/stacklayout/pkg/observability"
	"github.com/matzehuels/stacklayout/pkg/tree"
)

// Runner executes the pipeline. Both CLI and server use it.
//
// The Runner keeps no layout results. Every Layout call compiles a fresh
// tree, so multiple goroutines can safely share one Runner. The only shared
// state is the set of named measurers, whose text metrics are memoized.
type Runner struct {
	Logger *log.Logger

	mu        sync.Mutex
	measurers map[string]measure.Measurer
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Logger:    logger,
		measurers: make(map[string]measure.Measurer),
	}
}

// Execute runs the complete layout → render pipeline for doc.
func (r *Runner) Execute(ctx context.Context, doc *document.Document, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Width: opts.ResolveWidth(docWidth(doc))}

	// Stage 1: Layout
	layoutStart := time.Now()
	root, err := r.Layout(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Root = root
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.NodeCount = root.Count()
	result.Stats.Size = root.Frame().Size()

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, root, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	return result, nil
}

// Layout compiles doc into a new tree and lays it out.
func (r *Runner) Layout(ctx context.Context, doc *document.Document, opts Options) (*tree.Node, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "no document")
	}

	m, err := r.measurer(opts)
	if err != nil {
		return nil, err
	}
	root, err := doc.Compile(m)
	if err != nil {
		return nil, err
	}
	return r.LayoutTree(ctx, root, opts.ResolveWidth(doc.Width), opts)
}

// LayoutTree lays out an already built tree at width.
func (r *Runner) LayoutTree(ctx context.Context, root *tree.Node, width int, opts Options) (*tree.Node, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "no tree to lay out")
	}
	if err := errors.ValidateWidth(width); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	nodes := root.Count()
	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, width, nodes)

	start := time.Now()
	computeLayout(layout.New(opts.Logger), root, width)
	elapsed := time.Since(start)

	size := root.Frame().Size()
	hooks.OnLayoutComplete(ctx, width, size, elapsed, nil)

	opts.Logger.Info("computed layout",
		"width", width,
		"nodes", nodes,
		"size", size.String(),
		"duration", elapsed)

	return root, nil
}

// Render generates artifacts for a laid-out tree.
func (r *Runner) Render(ctx context.Context, root *tree.Node, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.Formats)

	start := time.Now()
	artifacts, err := Render(ctx, root, opts)
	elapsed := time.Since(start)

	total := 0
	for _, data := range artifacts {
		total += len(data)
	}
	hooks.OnRenderComplete(ctx, opts.Formats, total, elapsed, err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"bytes", total,
		"duration", elapsed)

	return artifacts, nil
}

// measurer returns the override from opts or a shared memoized measurer for
// the named kind.
func (r *Runner) measurer(opts Options) (measure.Measurer, error) {
	if opts.Measure != nil {
		return opts.Measure, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.measurers == nil {
		r.measurers = make(map[string]measure.Measurer)
	}
	if m, ok := r.measurers[opts.Measurer]; ok {
		return m, nil
	}
	m, err := measure.ByName(opts.Measurer)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "measurer")
	}
	r.measurers[opts.Measurer] = m
	return m, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func docWidth(doc *document.Document) int {
	if doc == nil {
		return 0
	}
	return doc.Width
}
