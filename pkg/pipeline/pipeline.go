// Package pipeline provides the document → layout → render pipeline for
// stacklayout.
//
// The CLI and the HTTP server both run documents through this package so that
// defaults, validation and instrumentation stay identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Decode a TOML or JSON view document
//  2. Layout: Compile the document into a fresh tree and run the engine
//  3. Render: Generate output in various formats (JSON, SVG, PNG, DOT, text)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	doc, err := pipeline.Load(ctx, "card.toml")
//	result, err := runner.Execute(ctx, doc, pipeline.Options{
//	    Width:   320,
//	    Formats: []string{"svg", "json"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stacklayout/pkg/errors"
	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/measure"
	"github.com/matzehuels/stacklayout/pkg/tree"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the proposed root width when neither the options nor
	// the document name one.
	DefaultWidth = 320

	// DefaultFormat is the output format when none is requested.
	DefaultFormat = FormatJSON

	// DefaultMeasurer is the text measurer used when none is named.
	DefaultMeasurer = measure.NameCell

	// DefaultScale is the drawing scale for SVG and PNG output.
	DefaultScale = 1.0

	// MaxScale bounds the drawing scale. Raster memory grows with its square.
	MaxScale = 16.0
)

// Format constants for output formats.
const (
	FormatJSON  = "json"
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatDOT   = "dot"
	FormatGraph = "graph"
	FormatText  = "text"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON:  true,
	FormatSVG:   true,
	FormatPNG:   true,
	FormatDOT:   true,
	FormatGraph: true,
	FormatText:  true,
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatJSON:  "application/json",
	FormatSVG:   "image/svg+xml",
	FormatPNG:   "image/png",
	FormatDOT:   "text/vnd.graphviz",
	FormatGraph: "image/svg+xml",
	FormatText:  "text/plain; charset=utf-8",
}

// Extensions maps each format to the file extension the CLI writes.
var Extensions = map[string]string{
	FormatJSON:  ".json",
	FormatSVG:   ".svg",
	FormatPNG:   ".png",
	FormatDOT:   ".dot",
	FormatGraph: ".graph.svg",
	FormatText:  ".txt",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Layout options
	Width    int    `json:"width,omitempty"`
	Measurer string `json:"measurer,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // Detailed node labels in DOT output

	// Runtime options (not serialized)
	Logger  *log.Logger      `json:"-"`
	Measure measure.Measurer `json:"-"` // Overrides Measurer when set

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Root is the laid-out tree.
	Root *tree.Node

	// Width is the proposed root width the layout used.
	Width int

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	Size       geom.Size
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, svg, png, dot, graph, text)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout validates and sets defaults for layout computation. A
// zero Width is left for [Options.ResolveWidth] to fill from the document.
func (o *Options) ValidateForLayout() error {
	if err := errors.ValidateWidth(o.Width); err != nil {
		return err
	}
	if o.Measurer == "" {
		o.Measurer = DefaultMeasurer
	}
	if o.Measure == nil {
		if _, err := measure.ByName(o.Measurer); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "measurer")
		}
	}
	o.setLogger()
	return nil
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must not exceed %g: %g", MaxScale, o.Scale)
	}
	o.setLogger()
	return ValidateFormats(o.Formats)
}

// ResolveWidth picks the proposed root width: the options' width, then the
// document's, then [DefaultWidth].
func (o *Options) ResolveWidth(docWidth int) int {
	switch {
	case o.Width > 0:
		return o.Width
	case docWidth > 0:
		return docWidth
	}
	return DefaultWidth
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
