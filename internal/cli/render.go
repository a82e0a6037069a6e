package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shiftreport/pkg/errors"
	"github.com/matzehuels/shiftreport/pkg/io"
	"github.com/matzehuels/shiftreport/pkg/pipeline"
	"github.com/matzehuels/shiftreport/pkg/render/sheet"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output        string   // output file (single format) or base path (multiple)
	formats       []string // png, jpeg, pdf, json, xlsx
	style         string   // TOML style override file
	pixelRatio    float64  // device pixel ratio of the raster
	locale        string   // BCP 47 tag for number formatting
	computeFooter bool     // derive average/min/max rows when the input has none
	maxWidth      int      // downsample raster output wider than this
	quality       int      // JPEG quality
	noCache       bool     // bypass the artifact cache entirely
	refresh       bool     // redraw even on a cache hit
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{pixelRatio: sheet.DefaultPixelRatio}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a report model to an image, PDF, or workbook",
		Long: `Render a report model (JSON or YAML) into one or more output files.

Raster formats (png, jpeg, pdf) share a single drawing; json exports the
layout plan and xlsx exports the data as a workbook.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(normaliseFormats(opts.formats)); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), jpeg, pdf, json, xlsx (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "TOML file overriding the default style")
	cmd.Flags().Float64Var(&opts.pixelRatio, "pixel-ratio", opts.pixelRatio, "device pixel ratio of the raster")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "locale for number formatting (default from style)")
	cmd.Flags().BoolVar(&opts.computeFooter, "compute-footer", false, "compute average/min/max rows when the input has no footer")
	cmd.Flags().IntVar(&opts.maxWidth, "max-width", 0, "downsample png/jpeg output wider than this many pixels")
	cmd.Flags().IntVar(&opts.quality, "quality", 0, "jpeg quality 1-100 (default 90)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "redraw even when the cache has the artifacts")

	return cmd
}

// runRender loads the model and style, runs the pipeline, and writes one
// file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	m, err := io.ImportFile(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded model",
		"title", m.Title,
		"parameters", m.ParameterCount(),
		"rows", len(m.Rows))

	style, err := loadStyle(opts.style)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	var spin *spinner
	if logger.GetLevel() > log.DebugLevel {
		spin = newSpinner(ctx, os.Stderr, "Rendering "+filepath.Base(input)).start()
	}
	result, err := runner.Execute(ctx, m, pipeline.Options{
		Formats:       opts.formats,
		PixelRatio:    opts.pixelRatio,
		Style:         &style,
		Locale:        opts.locale,
		ComputeFooter: opts.computeFooter,
		MaxWidth:      opts.maxWidth,
		Quality:       opts.quality,
		Refresh:       opts.refresh,
		Logger:        logger,
	})
	if spin != nil {
		spin.stop()
	}
	if err != nil {
		return err
	}

	formats := normaliseFormats(opts.formats)
	var written []string
	for _, f := range formats {
		path := outputPath(opts.output, input, f, len(formats) > 1)
		if err := writeArtifact(path, result.Artifacts[f]); err != nil {
			return err
		}
		written = append(written, path)
	}

	prog.done(fmt.Sprintf("Rendered %s", input))
	printSuccess("Rendered %s", StyleHighlight.Render(m.Title))
	for _, p := range written {
		printFile(p)
	}
	printStats(result)
	return nil
}

// normaliseFormats lowercases, maps "jpg" to "jpeg", and drops duplicates,
// matching the pipeline's own normalisation so paths line up with artifacts.
func normaliseFormats(formats []string) []string {
	opts := pipeline.Options{Formats: formats}
	opts.SetDefaults()
	return opts.Formats
}

// outputPath picks the file for one format. A single format with an
// explicit output path is written there as given; otherwise the base path
// gets the format's extension.
func outputPath(output, input, format string, multiple bool) string {
	if output != "" && !multiple && filepath.Ext(output) != "" {
		return output
	}
	return basePath(output, input) + pipeline.FileExtension(format)
}

// basePath derives the base output path from the output and input paths.
// Known format extensions are stripped from output; an empty output falls
// back to the input path without its extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if pipeline.ValidFormats[ext] || ext == "jpg" {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return output
}

func writeArtifact(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
