package cli

import (
	"github.com/spf13/cobra"

	"github.com/solprov/tankdesign/pkg/design"
	"github.com/solprov/tankdesign/pkg/docgen"
	"github.com/solprov/tankdesign/pkg/errors"
	"github.com/solprov/tankdesign/pkg/pdf"
)

// pdfOpts holds the command-line flags for the pdf command.
type pdfOpts struct {
	capacity  float64 // tank capacity in liters (0 = config value)
	output    string  // output directory
	serveAddr string  // base URL of a running documentation server
	browser   string  // browser binary override
	pick      bool    // interactively select documents
}

// pdfCommand creates the pdf command for exporting documents to PDF.
func (c *CLI) pdfCommand() *cobra.Command {
	var opts pdfOpts

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Export the document package to PDF via headless Chrome",
		Long: `Export every document in the package to PDF using a headless Chrome or
Chromium instance. By default the command renders each page itself; with
--serve-addr it prints the pages of a running documentation server instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPDF(cmd, &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.capacity, "capacity", 0, "tank capacity in liters (default: config value)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: config value)")
	cmd.Flags().StringVar(&opts.serveAddr, "serve-addr", "", "base URL of a running server (default: self-contained)")
	cmd.Flags().StringVar(&opts.browser, "browser", "", "path to a Chrome or Chromium binary")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "interactively select the documents to export")

	return cmd
}

func (c *CLI) runPDF(cmd *cobra.Command, opts *pdfOpts) error {
	ctx := cmd.Context()

	outDir := opts.output
	if outDir == "" {
		outDir = c.Config.Output.Dir
	}

	exporterOpts := pdf.Options{
		BaseURL:    opts.serveAddr,
		OutputDir:  outDir,
		BrowserBin: opts.browser,
		Logger:     c.Logger,
	}
	if opts.serveAddr == "" {
		spec, err := design.New(c.capacity(opts.capacity))
		if err != nil {
			return err
		}
		exporterOpts.Spec = spec
	}

	exporter, err := pdf.NewExporter(exporterOpts)
	if err != nil {
		return err
	}

	docs := docgen.All()
	if opts.pick {
		docs, err = pickDocuments()
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			printInfo("Nothing selected")
			return nil
		}
	}

	spin := newSpinner(ctx, "Printing documents to PDF...")
	spin.Start()
	paths, err := exporter.Export(ctx, docs)
	cancelled := spin.Cancelled()
	spin.Stop()

	for _, path := range paths {
		printFile(path)
	}
	if err != nil {
		if cancelled {
			printWarning("Cancelled")
			return err
		}
		if errors.Is(err, errors.ErrCodeBrowserUnavailable) {
			printError("No Chrome or Chromium found")
			printDetail("Install a browser or point --browser at one")
		} else {
			printError("%s", errors.UserMessage(err))
		}
		return err
	}
	printSuccess("Exported %d PDFs to %s", len(paths), outDir)
	return nil
}
