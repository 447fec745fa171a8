package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/anikatabassum/maatricare/internal/llm"
	"github.com/anikatabassum/maatricare/internal/patient"
)

// Responder runs one conversation turn. Satisfied by agent.Pipeline.
type Responder interface {
	Respond(ctx context.Context, input string) string
}

// App holds the collaborators CLI commands operate on.
type App struct {
	Assistant Responder
	Store     *patient.Store
	Monitor   *llm.Monitor

	// IsInteractive reports whether stdin is a terminal; the chat
	// command refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "maatricare" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "maatricare",
		Short: "Maternal health assistant for pregnant women in Bangladesh",
	}

	root.AddCommand(
		newChatCmd(app),
		newAskCmd(app),
		newProfileCmd(app),
		newStatsCmd(app),
	)

	return root
}
