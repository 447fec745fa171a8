package patient

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anikatabassum/maatricare/internal/domain"
)

// DefaultHistoryLimit bounds the conversation history when no explicit
// limit is configured.
const DefaultHistoryLimit = 200

// Store holds the current patient profile, its derived medical state,
// and a bounded conversation history. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	profile *domain.PatientProfile
	medical *domain.MedicalState

	history      []domain.Interaction
	historyLimit int

	// Now is the clock used for medical-state derivation and history
	// timestamps. Tests substitute a fixed time.
	Now func() time.Time
}

// NewStore creates a Store with the given history retention limit.
// Non-positive limits fall back to DefaultHistoryLimit.
func NewStore(historyLimit int) *Store {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Store{
		historyLimit: historyLimit,
		Now:          time.Now,
	}
}

// SetProfile validates and installs a profile, recomputing the derived
// medical state. On validation failure both the profile and the medical
// state are cleared, never left partially applied, and the error is
// returned for the caller to log.
func (s *Store) SetProfile(p domain.PatientProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := p.Validate(); err != nil {
		s.profile = nil
		s.medical = nil
		return fmt.Errorf("setting profile: %w", err)
	}

	state := domain.ComputeMedicalState(&p, s.Now())
	s.profile = &p
	s.medical = &state
	return nil
}

// Profile returns a copy of the current profile, or nil if unset.
func (s *Store) Profile() *domain.PatientProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Medical returns a copy of the derived medical state, or nil if no
// valid profile is set.
func (s *Store) Medical() *domain.MedicalState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.medical == nil {
		return nil
	}
	m := *s.medical
	return &m
}

// ContextSummary formats the current patient context for prompts.
func (s *Store) ContextSummary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil || s.medical == nil {
		return "No patient profile available"
	}
	return fmt.Sprintf("Patient: Age %d, Week %d, Trimester %d",
		s.profile.Age, s.medical.CurrentWeek, s.medical.Trimester)
}

// AddInteraction appends a completed turn to the history. When the
// retention limit is reached the oldest entry is evicted.
func (s *Store) AddInteraction(input, response string, metadata map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, domain.Interaction{
		ID:        uuid.NewString(),
		Input:     input,
		Response:  response,
		Timestamp: s.Now(),
		Metadata:  metadata,
	})
	if len(s.history) > s.historyLimit {
		s.history = append(s.history[:0], s.history[len(s.history)-s.historyLimit:]...)
	}
}

// History returns a copy of the retained interactions, oldest first.
func (s *Store) History() []domain.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Interaction, len(s.history))
	copy(out, s.history)
	return out
}
