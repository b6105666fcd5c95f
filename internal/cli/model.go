package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solprov/tankdesign/pkg/errors"
	"github.com/solprov/tankdesign/pkg/pipeline"
)

// modelOpts holds the command-line flags for the model command.
type modelOpts struct {
	capacity float64 // tank capacity in liters (0 = config value)
	output   string  // output directory
	diagram  string  // comma-separated diagram formats: svg, png, dot
	withJSON bool    // also export the assembly tree as JSON
	refresh  bool    // recompute instead of using the cache
	noCache  bool    // disable the cache entirely
}

// modelCommand creates the model command for exporting the STEP model.
func (c *CLI) modelCommand() *cobra.Command {
	var opts modelOpts

	cmd := &cobra.Command{
		Use:   "model",
		Short: "Export the tank assembly as a STEP model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runModel(cmd, &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.capacity, "capacity", 0, "tank capacity in liters (default: config value)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: config value)")
	cmd.Flags().StringVarP(&opts.diagram, "diagram", "d", "", "component diagram format(s): svg, png, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.withJSON, "json", false, "also export the assembly tree as JSON")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute instead of using cached results")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the cache")

	return cmd
}

func (c *CLI) runModel(cmd *cobra.Command, opts *modelOpts) error {
	ctx := cmd.Context()

	formats := []string{pipeline.FormatSTEP}
	for _, f := range parseFormats(opts.diagram, nil) {
		if f != pipeline.FormatSVG && f != pipeline.FormatPNG && f != pipeline.FormatDOT {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid diagram format %q (must be 'svg', 'png', or 'dot')", f)
		}
		formats = append(formats, f)
	}
	if opts.withJSON {
		formats = append(formats, pipeline.FormatJSON)
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
	spin := newSpinner(ctx, "Building tank assembly...")
	spin.Start()
	result, err := runner.Execute(ctx, pipeline.Options{
		CapacityLiters: c.capacity(opts.capacity),
		Formats:        formats,
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
	prog.done("Model pipeline finished")

	var written []string
	for name, data := range result.Artifacts {
		path, err := writeArtifact(outDir, name, data)
		if err != nil {
			return err
		}
		written = append(written, path)
	}

	printSuccess("Exported %d-part assembly", result.Stats.PartCount)
	printStageStats(result.Stats.PartCount, 0, result.CacheInfo.ModelHit)
	for _, path := range written {
		printFile(path)
	}
	printNewline()
	printNextStep("Serve the documentation", fmt.Sprintf("%s serve", appName))
	return nil
}
