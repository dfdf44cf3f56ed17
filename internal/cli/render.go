package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotgen/pkg/errors"
	"github.com/matzehuels/dotgen/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path, "-" for stdout
	format  string // output format: "dot" or "json"
	noCache bool   // disable the render cache
	refresh bool   // bypass cached output and re-render
}

// renderCommand creates the render command for serializing graph documents.
//
// Default settings:
//   - format: dot
//   - output: derived from the input path (graph.json -> graph.dot)
//   - caching: enabled (~/.cache/dotgen/)
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: pipeline.FormatDOT}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph document to DOT",
		Long: `Render a graph document to DOT.

The input is a JSON or TOML file describing a graph: nodes, edges,
subgraphs, and attributes. The output is Graphviz DOT with all
identifier quoting and string escaping handled.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or '-' for stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), json")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if a cached result exists")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Input:   input,
		Format:  opts.format,
		Refresh: opts.refresh,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d nodes, %d edges", result.Stats.NodeCount, result.Stats.EdgeCount))

	if opts.output == "-" {
		_, err = cmd.OutOrStdout().Write(result.Output)
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = outputFor(input, opts.format)
	}
	if outputPath == input {
		return errors.New(errors.ErrCodeInvalidPath, "output %q would overwrite the input", outputPath)
	}
	if err := errors.ValidateOutputPath(outputPath); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, result.Output, 0o644); err != nil {
		return err
	}

	printSuccess("Generated %s", outputPath)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.Cached)
	return nil
}

// outputFor derives the output path from the input path by swapping the
// extension for the format (deps.json -> deps.dot).
func outputFor(input, format string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
