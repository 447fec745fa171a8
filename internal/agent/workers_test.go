package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anikatabassum/maatricare/internal/domain"
	"github.com/anikatabassum/maatricare/internal/video"
)

// stubSearcher returns canned videos or a canned error.
type stubSearcher struct {
	mood     []video.Video
	exercise []video.Video
	err      error
}

func (s *stubSearcher) SearchMoodVideos(context.Context) ([]video.Video, error) {
	return s.mood, s.err
}

func (s *stubSearcher) SearchExerciseVideos(_ context.Context, _ int) ([]video.Video, error) {
	return s.exercise, s.err
}

var workersNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestWorkers(search video.Searcher) *Workers {
	return &Workers{Search: search, Now: func() time.Time { return workersNow }}
}

func testMedical(week int) *domain.MedicalState {
	trimester := 3
	if week <= 12 {
		trimester = 1
	} else if week <= 28 {
		trimester = 2
	}
	return &domain.MedicalState{CurrentWeek: week, Trimester: trimester, RiskLevel: domain.RiskLow}
}

func TestNutritionWorkerWithMedicalState(t *testing.T) {
	w := newTestWorkers(&stubSearcher{})
	profile := &domain.PatientProfile{Age: 30, LMPDate: "2025-01-26"}

	sheet := w.Run(context.Background(), domain.IntentNutrition, "what to eat", profile, testMedical(20))

	require.Equal(t, domain.IntentNutrition, sheet.Kind)
	require.Empty(t, sheet.Err)
	require.NotNil(t, sheet.Nutrition)
	assert.Equal(t, 2, sheet.Nutrition.Trimester)
	assert.Equal(t, 20, sheet.Nutrition.Week)
	assert.Equal(t, "Age: 30, Week: 20, Trimester: 2", sheet.Nutrition.Context)
	assert.Contains(t, sheet.Nutrition.FoodsToFocus, "iron-rich foods")
	assert.Contains(t, sheet.Nutrition.LocalFoods, "dal")
}

func TestNutritionWorkerDefaultsWithoutProfile(t *testing.T) {
	w := newTestWorkers(&stubSearcher{})

	sheet := w.Run(context.Background(), domain.IntentNutrition, "what should I eat for breakfast", nil, nil)

	require.NotNil(t, sheet.Nutrition)
	assert.Equal(t, 2, sheet.Nutrition.Trimester)
	assert.Equal(t, 20, sheet.Nutrition.Week)
	assert.Equal(t, "No specific patient context", sheet.Nutrition.Context)
}

func TestNutritionWorkerTrimesterBuckets(t *testing.T) {
	w := newTestWorkers(&stubSearcher{})

	first := w.Run(context.Background(), domain.IntentNutrition, "food", nil, testMedical(8))
	assert.Contains(t, first.Nutrition.FoodsToFocus, "ginger tea")

	third := w.Run(context.Background(), domain.IntentNutrition, "food", nil, testMedical(32))
	assert.Contains(t, third.Nutrition.FoodsToFocus, "fiber-rich foods")
}

func TestExerciseWorkerUsesSearchResults(t *testing.T) {
	found := []video.Video{{Title: "Prenatal Yoga", URL: "https://example.com/v"}}
	w := newTestWorkers(&stubSearcher{exercise: found})

	sheet := w.Run(context.Background(), domain.IntentExercise, "safe workouts", nil, testMedical(30))

	require.NotNil(t, sheet.Exercise)
	assert.Equal(t, 3, sheet.Exercise.Trimester)
	assert.Equal(t, found, sheet.Exercise.Videos)
	assert.Contains(t, sheet.Exercise.SafeExercises, "pelvic floor exercises")
}

func TestExerciseWorkerDegradesToFallbackVideos(t *testing.T) {
	w := newTestWorkers(&stubSearcher{err: errors.New("search down")})

	sheet := w.Run(context.Background(), domain.IntentExercise, "safe workouts", nil, testMedical(20))

	require.NotNil(t, sheet.Exercise)
	assert.Empty(t, sheet.Err)
	assert.Equal(t, video.FallbackExerciseVideos(2), sheet.Exercise.Videos)
}

func TestMoodWorker(t *testing.T) {
	w := newTestWorkers(&stubSearcher{err: errors.New("search down")})

	sheet := w.Run(context.Background(), domain.IntentMoodSupport, "feeling sad", nil, nil)

	require.NotNil(t, sheet.Mood)
	assert.Empty(t, sheet.Err)
	assert.Contains(t, sheet.Mood.CopingStrategies, "deep breathing")
	assert.Equal(t, video.FallbackMoodVideos(), sheet.Mood.Videos)
}

func TestSchedulingWorker(t *testing.T) {
	w := newTestWorkers(&stubSearcher{})

	sheet := w.Run(context.Background(), domain.IntentScheduling, "next appointment", nil, testMedical(22))

	require.NotNil(t, sheet.Scheduling)
	assert.Equal(t, 22, sheet.Scheduling.CurrentWeek)
	require.Len(t, sheet.Scheduling.NextVisits, 3)

	first := sheet.Scheduling.NextVisits[0]
	assert.Equal(t, 26, first.Week)
	assert.Equal(t, workersNow.AddDate(0, 0, 4*7), first.Date)
	assert.Equal(t, domain.VisitScreening, first.Type)
	assert.Equal(t, domain.PriorityHigh, first.Priority)

	second := sheet.Scheduling.NextVisits[1]
	assert.Equal(t, 30, second.Week)
	assert.Equal(t, domain.VisitRoutine, second.Type)
	assert.Equal(t, domain.PriorityMedium, second.Priority)

	assert.Equal(t, 34, sheet.Scheduling.NextVisits[2].Week)
}

func TestSchedulingWorkerLatePregnancy(t *testing.T) {
	w := newTestWorkers(&stubSearcher{})

	sheet := w.Run(context.Background(), domain.IntentScheduling, "next appointment", nil, testMedical(38))
	require.NotNil(t, sheet.Scheduling)
	require.Len(t, sheet.Scheduling.NextVisits, 1)
	assert.Equal(t, 40, sheet.Scheduling.NextVisits[0].Week)

	past := w.Run(context.Background(), domain.IntentScheduling, "next appointment", nil, testMedical(41))
	assert.Empty(t, past.Scheduling.NextVisits)
}

func TestSchedulingWorkerRequiresMedicalState(t *testing.T) {
	w := newTestWorkers(&stubSearcher{})

	sheet := w.Run(context.Background(), domain.IntentScheduling, "next appointment", nil, nil)

	assert.Equal(t, domain.IntentScheduling, sheet.Kind)
	assert.Equal(t, "no medical state available", sheet.Err)
	assert.Nil(t, sheet.Scheduling)
}

func TestEmergencyWorkerIgnoresMedicalState(t *testing.T) {
	w := newTestWorkers(&stubSearcher{})

	sheet := w.Run(context.Background(), domain.IntentEmergency, "severe pain", nil, nil)

	require.NotNil(t, sheet.Emergency)
	assert.Equal(t, "999", sheet.Emergency.Numbers["emergency"])
	assert.Equal(t, "16263", sheet.Emergency.Numbers["maternal_hotline"])
	assert.Contains(t, sheet.Emergency.ImmediateActions, "Stay calm")
}

func TestGeneralWorker(t *testing.T) {
	w := newTestWorkers(&stubSearcher{})

	sheet := w.Run(context.Background(), domain.IntentGeneral, "how is the baby growing", nil, nil)

	require.NotNil(t, sheet.General)
	assert.Contains(t, sheet.General.CommonTopics, "baby development")
}

func TestWorkerPanicBecomesErr(t *testing.T) {
	// A nil Searcher makes the exercise worker panic; the panic must
	// land in Err, not escape the worker boundary.
	w := &Workers{Search: nil, Now: time.Now}

	sheet := w.Run(context.Background(), domain.IntentExercise, "workout", nil, nil)

	assert.Equal(t, domain.IntentExercise, sheet.Kind)
	assert.NotEmpty(t, sheet.Err)
	assert.Nil(t, sheet.Exercise)
}
