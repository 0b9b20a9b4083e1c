package client

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/dia-companion/internal/tui"
)

func (a *App) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal interface",
		Long: "Open the interactive terminal interface. A saved session is reused; " +
			"otherwise the login menu opens first.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := tui.New(a.api, a.gate, a.buildInfo, a.logger,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)

			err := ui.Run(cmd.Context())
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		},
	}
}
