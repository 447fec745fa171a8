package video

import (
	"fmt"
	"strings"
)

// moodQueries is the pool of search queries for mood support content.
// One is chosen at random per search for variety.
var moodQueries = []string{
	"pregnancy relaxation meditation",
	"prenatal positive affirmations",
	"pregnant women motivation videos",
	"pregnancy emotional support",
	"calming music for pregnancy",
	"pregnancy mindfulness meditation",
}

// exerciseQueries maps trimester to its pool of search queries.
var exerciseQueries = map[int][]string{
	1: {
		"first trimester safe exercises",
		"early pregnancy gentle workouts",
		"prenatal yoga first trimester",
		"pregnancy stretches first trimester",
		"safe exercises 0-12 weeks pregnancy",
	},
	2: {
		"second trimester pregnancy exercises",
		"prenatal yoga second trimester",
		"pregnancy workout 13-28 weeks",
		"pregnancy strength training second trimester",
		"safe prenatal fitness second trimester",
	},
	3: {
		"third trimester safe exercises",
		"late pregnancy gentle workouts",
		"prenatal yoga third trimester",
		"pregnancy exercises 28-40 weeks",
		"pregnancy back pain relief exercises",
	},
}

var moodPositive = []string{
	"relaxation", "meditation", "calming", "positive", "affirmation",
	"pregnancy", "prenatal", "mindfulness", "peaceful", "soothing",
}

var moodNegative = []string{
	"labor", "birth", "delivery", "pain", "contractions",
	"scary", "dangerous", "risk", "complication", "problem",
}

var exercisePositive = []string{
	"pregnancy", "prenatal", "safe", "gentle", "yoga",
	"stretch", "exercise", "workout", "fitness", "trimester",
}

var exerciseNegative = []string{
	"intense", "extreme", "advanced", "hardcore", "dangerous",
	"weight loss", "diet", "abs workout", "core workout",
}

// isAppropriateMoodTitle keeps titles that mention supportive themes
// and avoid anxiety-inducing ones.
func isAppropriateMoodTitle(title string) bool {
	lower := strings.ToLower(title)
	return containsAny(lower, moodPositive) && !containsAny(lower, moodNegative)
}

func isAppropriateExerciseTitle(title string) bool {
	lower := strings.ToLower(title)
	return containsAny(lower, exercisePositive) && !containsAny(lower, exerciseNegative)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func moodDescription(title string) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "meditation"):
		return "A guided meditation to help you relax and find inner peace"
	case strings.Contains(lower, "affirmation"):
		return "Positive affirmations to boost your confidence and mood"
	case strings.Contains(lower, "music"), strings.Contains(lower, "calming"):
		return "Soothing music to help you unwind and feel more peaceful"
	case strings.Contains(lower, "yoga"):
		return "Gentle yoga practice to reduce stress and anxiety"
	default:
		return "A supportive video to help improve your emotional wellbeing"
	}
}

func exerciseDescription(title string, trimester int) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "yoga"):
		return fmt.Sprintf("Safe prenatal yoga exercises perfect for trimester %d", trimester)
	case strings.Contains(lower, "stretch"):
		return fmt.Sprintf("Gentle stretching routine suitable for trimester %d", trimester)
	case strings.Contains(lower, "workout"):
		return fmt.Sprintf("Low-impact workout designed for trimester %d", trimester)
	case strings.Contains(lower, "back"):
		return fmt.Sprintf("Exercises to relieve back pain during trimester %d", trimester)
	default:
		return fmt.Sprintf("Safe pregnancy exercises appropriate for trimester %d", trimester)
	}
}
