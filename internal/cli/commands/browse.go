package commands

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/gqlvis/internal/tui"
)

// NewBrowseCommand creates the browse command.
func NewBrowseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [type]",
		Short: "Browse the type outline in the terminal",
		Long: `Open an interactive outline of the schema. Move with the arrow keys, press
enter to open a type or follow an object-typed field, and esc to return to
the listing. The type under the cursor is highlighted together with its
neighbors.`,
		Example: `  # Browse the configured endpoint
  gqlvis browse

  # Start on a type
  gqlvis browse Ship --endpoint ./schema.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, args)
		},
	}
	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	if !cmdCtx.Renderer.IsTTY() {
		return errors.New("browse needs a terminal; use 'gqlvis outline' for scripted output")
	}

	snap, err := cmdCtx.LoadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	cfg := tui.Config{
		Title:  snap.Endpoint,
		Styles: cmdCtx.Renderer.Styles(),
	}
	if len(args) == 1 {
		cfg.Select = args[0]
	}

	p := tea.NewProgram(
		tui.New(snap.Outline(), cfg),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
