package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/gqlvis/internal/cli/config"
	"github.com/leapstack-labs/gqlvis/internal/cli/output"
	"github.com/leapstack-labs/gqlvis/internal/introspect"
	"github.com/leapstack-labs/gqlvis/internal/loader"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with a renderer for the
// configured output mode.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode, err := output.ParseMode(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}, nil
}

// NewLoader creates the schema loader from the configuration.
func (c *CommandContext) NewLoader() (*loader.Service, error) {
	client := introspect.NewClient(
		introspect.WithTimeout(c.Cfg.Fetch.Timeout),
		introspect.WithRateLimit(c.Cfg.Fetch.RateLimit, c.Cfg.Fetch.Burst),
		introspect.WithLogger(c.Logger),
	)
	svc, err := loader.New(loader.Config{
		Fetcher:   client,
		Schema:    c.Cfg.SchemaOptions(),
		View:      c.Cfg.ViewOptions(),
		CacheSize: c.Cfg.Fetch.CacheSize,
		Logger:    c.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create loader: %w", err)
	}
	return svc, nil
}

// LoadSnapshot fetches and builds the schema of the configured endpoint.
func (c *CommandContext) LoadSnapshot(ctx context.Context) (*loader.Snapshot, error) {
	if c.Cfg.Endpoint == "" {
		return nil, fmt.Errorf("no endpoint configured: pass --endpoint or set endpoint in gqlvis.yaml")
	}
	svc, err := c.NewLoader()
	if err != nil {
		return nil, err
	}
	return svc.Load(ctx, c.Cfg.Endpoint)
}

// getConfig returns the current configuration, or the defaults when no
// configuration was loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Defaults()
}
