package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anikatabassum/maatricare/internal/agent"
	"github.com/anikatabassum/maatricare/internal/cli/formatter"
)

func newAskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `ask "<question>"`,
		Short: "Ask a single question and print the answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := args[0]

			stopSpinner := formatter.StartSpinner("Thinking...")
			reply := app.Assistant.Respond(context.Background(), question)
			stopSpinner()

			intent := agent.ClassifyIntent(question)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReply(intent, reply))
			return nil
		},
	}
	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show model usage statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(app.Monitor.Stats()))
			return nil
		},
	}
}
