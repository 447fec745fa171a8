package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/anikatabassum/maatricare/internal/cli/formatter"
	"github.com/anikatabassum/maatricare/internal/domain"
)

// maatricareHuhTheme returns a custom huh theme using the Gruvbox palette.
func maatricareHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// profileFormValues holds the raw string inputs collected by the
// profile form before conversion to a domain.PatientProfile.
type profileFormValues struct {
	Name        string
	Age         string
	LMP         string
	History     string
	Allergies   string
	Medications string
}

// newProfileForm builds the multi-group profile setup form.
func newProfileForm(v *profileFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name (optional)").
				Value(&v.Name),
			huh.NewInput().
				Title("Age").
				Placeholder("25").
				Value(&v.Age).
				Validate(validateAge),
			huh.NewInput().
				Title(`Last menstrual period (YYYY-MM-DD or "unknown")`).
				Placeholder(domain.UnknownLMP).
				Value(&v.LMP).
				Validate(validateLMP),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Medical history (optional)").
				Value(&v.History),
			huh.NewInput().
				Title("Allergies (comma separated, optional)").
				Value(&v.Allergies),
			huh.NewInput().
				Title("Current medications (comma separated, optional)").
				Value(&v.Medications),
		),
	).WithTheme(maatricareHuhTheme()).WithShowHelp(false)
}

// toProfile converts collected form values into a PatientProfile.
// Assumes the form's validators already ran.
func (v *profileFormValues) toProfile() domain.PatientProfile {
	age, _ := strconv.Atoi(strings.TrimSpace(v.Age))
	lmp := strings.TrimSpace(v.LMP)
	if lmp == "" {
		lmp = domain.UnknownLMP
	}
	return domain.PatientProfile{
		Name:           strings.TrimSpace(v.Name),
		Age:            age,
		LMPDate:        lmp,
		MedicalHistory: strings.TrimSpace(v.History),
		Allergies:      splitList(v.Allergies),
		Medications:    splitList(v.Medications),
	}
}

func splitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func validateAge(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < domain.MinPatientAge || v > domain.MaxPatientAge {
		return fmt.Errorf("age must be between %d and %d", domain.MinPatientAge, domain.MaxPatientAge)
	}
	return nil
}

func validateLMP(s string) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == domain.UnknownLMP {
		return nil
	}
	if _, err := time.Parse(domain.DateFormat, trimmed); err != nil {
		return fmt.Errorf(`use YYYY-MM-DD or "unknown"`)
	}
	return nil
}
