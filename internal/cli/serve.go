package cli

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/solprov/tankdesign/pkg/cache"
	"github.com/solprov/tankdesign/pkg/design"
	"github.com/solprov/tankdesign/pkg/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	capacity float64 // tank capacity in liters (0 = config value)
	addr     string  // listen address override
	redis    string  // redis address for the page cache
	noCache  bool    // disable the page cache
	open     bool    // open the dashboard in a browser
}

// serveCommand creates the serve command for the documentation server.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the documentation package over local HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.capacity, "capacity", 0, "tank capacity in liters (default: config value)")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default: config value)")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis address for the page cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the page cache")
	cmd.Flags().BoolVar(&opts.open, "open", false, "open the dashboard in the default browser")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()

	spec, err := design.New(c.capacity(opts.capacity))
	if err != nil {
		return err
	}

	if opts.redis != "" {
		c.Config.Cache.RedisAddr = opts.redis
	}
	store, err := c.newCache(ctx, opts.noCache)
	if err != nil {
		return err
	}

	addr := opts.addr
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", c.Config.Server.Addr, c.Config.Server.Port)
	}

	srv, err := server.New(server.Options{
		Addr:   addr,
		Spec:   spec,
		Cache:  store,
		Keyer:  cache.NewDefaultKeyer(),
		Logger: c.Logger,
		Title:  c.Config.Tank.Title,
	})
	if err != nil {
		return err
	}

	printInfo("Serving documentation on %s", StyleLink.Render("http://"+addr))
	printDetail("Press Ctrl+C to stop")

	if opts.open {
		go func() {
			time.Sleep(300 * time.Millisecond)
			openBrowser("http://" + addr)
		}()
	}

	return srv.Start(ctx)
}

// openBrowser opens url with the platform's default opener. Failures are
// ignored; the URL is already printed.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
