package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("chat requires an interactive terminal; use `maatricare ask` instead")
			}

			// Collect the profile up front when none is set.
			if app.Store.Profile() == nil {
				var values profileFormValues
				if err := newProfileForm(&values).Run(); err != nil {
					return fmt.Errorf("profile setup: %w", err)
				}
				if err := app.Store.SetProfile(values.toProfile()); err != nil {
					return fmt.Errorf("setting profile: %w", err)
				}
			}

			_, err := tea.NewProgram(newChatModel(app)).Run()
			return err
		},
	}
}
