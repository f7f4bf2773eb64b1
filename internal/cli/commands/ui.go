package commands

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/gqlvis/internal/cli/config"
	"github.com/leapstack-labs/gqlvis/internal/ui"
)

// UIOptions holds options for the ui command.
type UIOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
	Dev       bool
}

// NewUICommand creates the ui command.
func NewUICommand() *cobra.Command {
	opts := &UIOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the schema visualizer",
		Long: `Start a local web server with the interactive schema visualizer.

The UI provides:
- An endpoint form to load any introspection-enabled API
- A drill-down outline of every object type and its fields
- A force-directed graph of type references with hover highlighting`,
		Example: `  # Start UI on default port
  gqlvis ui

  # Visualize a saved introspection response and reload it on change
  gqlvis ui --endpoint ./schema.json --watch

  # Start without auto-opening browser
  gqlvis ui --no-browser --port 3000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Reload file endpoints when they change")
	cmd.Flags().BoolVar(&opts.Dev, "dev", false, "Serve static assets from disk and enable live reload")
	_ = cmd.Flags().MarkHidden("dev")

	return cmd
}

func runUI(cmd *cobra.Command, opts *UIOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg
	uiCfg := cfg.UI

	// CLI flags override config file
	port := uiCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	autoOpen := uiCfg.AutoOpen
	if opts.NoBrowser {
		autoOpen = false
	}

	watch := uiCfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	secret := uiCfg.SessionSecret
	if secret == "" {
		secret = config.DefaultSessionSecret
	}

	svc, err := cmdCtx.NewLoader()
	if err != nil {
		return err
	}

	server := ui.NewServer(ui.Config{
		Loader:          svc,
		Port:            port,
		Watch:           watch,
		SessionSecret:   secret,
		DefaultEndpoint: cfg.Endpoint,
		AllowFiles:      uiCfg.AllowFiles,
		MaxWorkspaces:   uiCfg.MaxWorkspaces,
		LoadTimeout:     cfg.Fetch.Timeout,
		Dev:             opts.Dev,
		Logger:          cmdCtx.Logger,
	})

	url := fmt.Sprintf("http://localhost:%d", port)
	if autoOpen {
		go openBrowser(url)
	}

	r := cmdCtx.Renderer
	r.Printf("Starting UI server on %s\n", url)
	if secret == config.DefaultSessionSecret {
		r.Warning("using the built-in session secret; set ui.session_secret or GQLVIS_UI__SESSION_SECRET")
	}
	r.Muted("Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return server.Serve(ctx)
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
