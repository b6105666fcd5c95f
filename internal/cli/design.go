package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solprov/tankdesign/pkg/docgen"
	"github.com/solprov/tankdesign/pkg/errors"
	"github.com/solprov/tankdesign/pkg/pipeline"
	"github.com/solprov/tankdesign/pkg/server"
)

// designOpts holds the command-line flags for the design command.
type designOpts struct {
	capacity float64 // tank capacity in liters (0 = config value)
	output   string  // output directory
	formats  string  // comma-separated output formats: md, html
	refresh  bool    // recompute instead of using the cache
	noCache  bool    // disable the cache entirely
}

// designCommand creates the design command for generating the document package.
func (c *CLI) designCommand() *cobra.Command {
	var opts designOpts

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Size the tank and generate the engineering document package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDesign(cmd, &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.capacity, "capacity", 0, "tank capacity in liters (default: config value)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: config value)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): md (default), html (comma-separated)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute instead of using cached results")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the cache")

	return cmd
}

func (c *CLI) runDesign(cmd *cobra.Command, opts *designOpts) error {
	ctx := cmd.Context()
	formats := parseFormats(opts.formats, []string{"md"})
	for _, f := range formats {
		if f != "md" && f != "html" {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be 'md' or 'html')", f)
		}
	}
	outDir := opts.output
	if outDir == "" {
		outDir = c.Config.Output.Dir
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	spin := newSpinner(ctx, "Sizing tank and generating documents...")
	spin.Start()
	result, err := runner.Execute(ctx, pipeline.Options{
		CapacityLiters: c.capacity(opts.capacity),
		Formats:        []string{pipeline.FormatMarkdown},
		Refresh:        opts.refresh,
		Logger:         c.Logger,
	})
	if err != nil {
		if spin.Cancelled() {
			spin.Stop()
			printWarning("Cancelled")
			return err
		}
		spin.StopWithError(errors.UserMessage(err))
		return err
	}
	spin.Stop()
	prog.done("Design pipeline finished")

	var written []string
	for filename, data := range result.Documents {
		for _, format := range formats {
			path, err := c.writeDocument(result, outDir, filename, format, data)
			if err != nil {
				return err
			}
			written = append(written, path)
		}
	}

	printSuccess("Generated %d files in %s", len(written), outDir)
	printDesignSummary(result.Spec.ActualLiters, result.Spec.DiameterMM,
		result.Spec.LengthMM, result.Spec.ShellThicknessMM, result.Spec.StandardSize)
	printStageStats(0, result.Stats.DocumentCount, result.CacheInfo.DocumentHit)
	for _, path := range written {
		printFile(path)
	}
	printNewline()
	printNextStep("Export the CAD model", fmt.Sprintf("%s model -o %s", appName, outDir))
	return nil
}

// writeDocument writes one document in the requested format. HTML output
// reuses the server's print-ready page rendering.
func (c *CLI) writeDocument(result *pipeline.Result, dir, filename, format string, md []byte) (string, error) {
	if format == "md" {
		return writeArtifact(dir, filename, md)
	}
	doc, err := docgen.Get(filename)
	if err != nil {
		return "", err
	}
	page, err := server.RenderPage(result.Spec, doc.Name)
	if err != nil {
		return "", err
	}
	return writeArtifact(dir, strings.TrimSuffix(filename, ".md")+".html", page)
}
