package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinPatientAge = 18
	MaxPatientAge = 60

	// UnknownLMP is the sentinel value for a patient who cannot
	// recall their last menstrual period date.
	UnknownLMP = "unknown"

	// DateFormat is the accepted layout for all profile dates.
	DateFormat = "2006-01-02"
)

// PatientProfile holds the data collected at profile setup. It is treated
// as immutable after creation; edits replace the whole profile.
type PatientProfile struct {
	Name           string
	Age            int
	LMPDate        string // DateFormat or UnknownLMP
	MedicalHistory string
	Allergies      []string
	Medications    []string
	BMI            float64
	BloodType      string
}

// Validate checks age bounds and the required LMP field. The LMP date must
// be either the unknown sentinel or well-formed; a parseable-but-future
// date is accepted here and handled by derivation.
func (p *PatientProfile) Validate() error {
	if p.Age < MinPatientAge || p.Age > MaxPatientAge {
		return fmt.Errorf("age must be between %d and %d, got %d", MinPatientAge, MaxPatientAge, p.Age)
	}
	if strings.TrimSpace(p.LMPDate) == "" {
		return fmt.Errorf("lmp date is required (use %q if not known)", UnknownLMP)
	}
	return nil
}

// LMP parses the profile's LMP date. Returns ok=false for the unknown
// sentinel or a malformed date.
func (p *PatientProfile) LMP() (time.Time, bool) {
	if p.LMPDate == UnknownLMP {
		return time.Time{}, false
	}
	t, err := time.Parse(DateFormat, p.LMPDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
