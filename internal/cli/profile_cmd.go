package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anikatabassum/maatricare/internal/cli/formatter"
	"github.com/anikatabassum/maatricare/internal/domain"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the patient profile",
	}
	cmd.AddCommand(newProfileSetCmd(app), newProfileShowCmd(app))
	return cmd
}

func newProfileSetCmd(app *App) *cobra.Command {
	var (
		name        string
		age         int
		lmp         string
		history     string
		allergies   []string
		medications []string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the patient profile non-interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := domain.PatientProfile{
				Name:           name,
				Age:            age,
				LMPDate:        lmp,
				MedicalHistory: history,
				Allergies:      allergies,
				Medications:    medications,
			}
			if err := app.Store.SetProfile(profile); err != nil {
				return fmt.Errorf("setting profile: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(app.Store.Profile(), app.Store.Medical()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "patient name")
	cmd.Flags().IntVar(&age, "age", 0, "age in years (18-60)")
	cmd.Flags().StringVar(&lmp, "lmp", domain.UnknownLMP, `last menstrual period (YYYY-MM-DD or "unknown")`)
	cmd.Flags().StringVar(&history, "history", "", "free-text medical history")
	cmd.Flags().StringSliceVar(&allergies, "allergy", nil, "known allergy (repeatable)")
	cmd.Flags().StringSliceVar(&medications, "medication", nil, "current medication (repeatable)")
	_ = cmd.MarkFlagRequired("age")

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current patient profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(app.Store.Profile(), app.Store.Medical()))
			return nil
		},
	}
}
