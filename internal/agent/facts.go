package agent

import (
	"time"

	"github.com/anikatabassum/maatricare/internal/domain"
	"github.com/anikatabassum/maatricare/internal/video"
)

// FactSheet is the structured context a worker hands to the renderer.
// Kind selects which variant pointer is populated; a non-empty Err
// means the worker could not assemble its data and the renderer should
// use the intent's static fallback instead of calling the model.
type FactSheet struct {
	Kind domain.Intent
	Err  string

	Nutrition  *NutritionFacts
	Exercise   *ExerciseFacts
	Mood       *MoodFacts
	Scheduling *SchedulingFacts
	Emergency  *EmergencyFacts
	General    *GeneralFacts
}

// NutritionFacts carries trimester-appropriate food guidance.
type NutritionFacts struct {
	Trimester    int
	Week         int
	Context      string
	FoodsToFocus []string
	LocalFoods   []string
}

// ExerciseFacts carries trimester-appropriate activity guidance.
type ExerciseFacts struct {
	Trimester     int
	Week          int
	SafeExercises []string
	Videos        []video.Video
}

// MoodFacts carries emotional support resources.
type MoodFacts struct {
	CopingStrategies []string
	Videos           []video.Video
}

// SchedulingFacts carries the upcoming antenatal care visits.
type SchedulingFacts struct {
	CurrentWeek int
	NextVisits  []Visit
}

// Visit is one recommended antenatal care appointment.
type Visit struct {
	Week     int
	Date     time.Time
	Type     domain.VisitType
	Priority domain.VisitPriority
}

// EmergencyFacts carries static safety information. It never depends
// on profile or model availability.
type EmergencyFacts struct {
	Numbers          map[string]string
	ImmediateActions []string
}

// GeneralFacts carries conversation starters for open-ended queries.
type GeneralFacts struct {
	CommonTopics []string
}
