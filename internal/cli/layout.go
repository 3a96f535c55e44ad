package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stacklayout/pkg/pipeline"
)

// layoutCommand creates the layout command for computing element geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var output string
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [document]",
		Short: "Compute the layout of a view document",
		Long: `Compute the layout of a view document.

The layout command reads a TOML or JSON view document, proposes the document
width (or --width) to its root, and writes every node's origin and size as
JSON. Use "-o -" to print the layout to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "proposed root width (default: document width or 320)")
	cmd.Flags().StringVar(&opts.Measurer, "measurer", pipeline.DefaultMeasurer, "text measurer: cell, face")

	return cmd
}

// runLayout loads the document, computes the layout, and writes it as JSON.
func (c *CLI) runLayout(cmd *cobra.Command, input string, opts pipeline.Options, output string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := pipeline.Load(ctx, input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	opts.Formats = []string{pipeline.FormatJSON}
	result, err := c.newRunner().Execute(ctx, doc, opts)
	if err != nil {
		return err
	}

	data := result.Artifacts[pipeline.FormatJSON]
	out := cmd.OutOrStdout()
	if output == "-" {
		_, err := out.Write(data)
		return err
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath(input) + ".layout.json"
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess(out, "Layout complete at width %d", result.Width)
	printFile(out, outputPath)
	printStats(out, result.Stats.NodeCount, result.Stats.Size, result.Stats.LayoutTime)
	printNewline(out)
	printNextStep(out, "Render", appName+" render "+input+" -f svg")

	return nil
}
