package domain

import "time"

const (
	FirstTrimesterEndWeek  = 12
	SecondTrimesterEndWeek = 28
	PregnancyDurationDays  = 280
	MaxPregnancyWeeks      = 40
)

// MedicalState is derived from a PatientProfile and has no independent
// lifecycle: it is recomputed whenever a profile is set.
type MedicalState struct {
	CurrentWeek int
	Trimester   int
	DueDate     *time.Time
	RiskLevel   RiskLevel
}

// DefaultMedicalState is the state used when the LMP date is unknown
// or malformed.
func DefaultMedicalState() MedicalState {
	return MedicalState{
		CurrentWeek: 0,
		Trimester:   1,
		RiskLevel:   RiskLow,
	}
}

// ComputeMedicalState derives gestational week, trimester, and due date
// from the profile's LMP date relative to now. An unknown or malformed
// LMP yields the default state; derivation never fails.
func ComputeMedicalState(p *PatientProfile, now time.Time) MedicalState {
	lmp, ok := p.LMP()
	if !ok {
		return DefaultMedicalState()
	}

	days := int(now.Sub(lmp).Hours() / 24)
	if days < 0 {
		days = 0
	}
	week := days / 7

	trimester := 3
	switch {
	case week <= FirstTrimesterEndWeek:
		trimester = 1
	case week <= SecondTrimesterEndWeek:
		trimester = 2
	}

	due := lmp.AddDate(0, 0, PregnancyDurationDays)

	return MedicalState{
		CurrentWeek: week,
		Trimester:   trimester,
		DueDate:     &due,
		RiskLevel:   RiskLow,
	}
}
