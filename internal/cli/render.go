package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stacklayout/pkg/pipeline"
)

// renderCommand creates the render command for drawing laid-out documents.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Lay out a view document and render it",
		Long: `Lay out a view document and render it.

Supported formats:
  svg    boxes and text as SVG
  png    raster image
  json   node geometry
  dot    Graphviz source of the view tree
  graph  view tree drawn by Graphviz as SVG
  text   indented terminal outline

Each format is written to <output><extension>, where output defaults to the
input path without its extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = pipeline.ParseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: input without extension)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "svg", "output format(s): svg, png, json, dot, graph, text (comma-separated)")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "proposed root width (default: document width or 320)")
	cmd.Flags().StringVar(&opts.Measurer, "measurer", pipeline.DefaultMeasurer, "text measurer: cell, face")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "drawing scale for svg and png")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include origins and insets in dot and graph labels")

	return cmd
}

// runRender runs the full pipeline and writes one file per format. The text
// format is also printed to stdout.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts pipeline.Options, output string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	doc, err := pipeline.Load(ctx, input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	prog := newProgress(c.Logger)
	var spinner *Spinner
	if needsSpinner(opts.Formats) {
		spinner = newSpinnerWithContext(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
		spinner.Start()
	}

	result, err := c.newRunner().Execute(ctx, doc, opts)
	if spinner != nil {
		if err != nil && !spinner.Cancelled() {
			spinner.StopWithError("Render failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := output
	if base == "" {
		base = basePath(input)
	}

	formats := make([]string, 0, len(result.Artifacts))
	for f := range result.Artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	var paths []string
	for _, f := range formats {
		path := base + pipeline.Extensions[f]
		if err := os.WriteFile(path, result.Artifacts[f], 0o644); err != nil {
			return fmt.Errorf("write %s output %s: %w", f, path, err)
		}
		paths = append(paths, path)
	}
	prog.done(fmt.Sprintf("Rendered %d formats", len(formats)))

	if text, ok := result.Artifacts[pipeline.FormatText]; ok {
		fmt.Fprint(out, string(text))
		printNewline(out)
	}

	printSuccess(out, "Render complete at width %d", result.Width)
	for _, p := range paths {
		printFile(out, p)
	}
	printStats(out, result.Stats.NodeCount, result.Stats.Size, result.Stats.LayoutTime+result.Stats.RenderTime)

	return nil
}

// needsSpinner reports whether formats include one slow enough to show
// progress for: rasterizing or running Graphviz.
func needsSpinner(formats []string) bool {
	for _, f := range formats {
		if f == pipeline.FormatPNG || f == pipeline.FormatGraph {
			return true
		}
	}
	return false
}
