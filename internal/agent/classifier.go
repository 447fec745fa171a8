package agent

import (
	"strings"

	"github.com/anikatabassum/maatricare/internal/domain"
)

// Keyword sets are checked in priority order; the first set with a
// match wins. Emergency always outranks everything else.
var emergencyKeywords = []string{
	"emergency", "urgent", "help", "bleeding heavily", "severe pain",
	"can't breathe", "chest pain", "dizzy", "faint", "contractions",
	"water broke", "baby not moving", "high blood pressure",
	"severe headache", "vision problems", "911", "999", "hospital",
}

var nutritionKeywords = []string{
	"food", "eat", "diet", "nutrition", "meal", "hungry", "appetite",
	"vitamin", "recipe", "breakfast", "lunch", "dinner",
}

var exerciseKeywords = []string{
	"exercise", "workout", "yoga", "walk", "fitness", "active",
	"movement", "stretch",
}

var moodKeywords = []string{
	"feel", "feeling", "sad", "depressed", "anxious", "worried",
	"scared", "upset", "emotional", "mood", "stress",
}

var schedulingKeywords = []string{
	"appointment", "schedule", "visit", "checkup", "doctor", "anc",
	"when should",
}

// ClassifyIntent maps free text to an intent by ordered substring
// membership. Deterministic, no scoring.
func ClassifyIntent(input string) domain.Intent {
	lower := strings.ToLower(input)

	switch {
	case matchesAny(lower, emergencyKeywords):
		return domain.IntentEmergency
	case matchesAny(lower, nutritionKeywords):
		return domain.IntentNutrition
	case matchesAny(lower, exerciseKeywords):
		return domain.IntentExercise
	case matchesAny(lower, moodKeywords):
		return domain.IntentMoodSupport
	case matchesAny(lower, schedulingKeywords):
		return domain.IntentScheduling
	default:
		return domain.IntentGeneral
	}
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
