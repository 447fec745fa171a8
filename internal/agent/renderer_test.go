package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anikatabassum/maatricare/internal/domain"
	"github.com/anikatabassum/maatricare/internal/llm"
	"github.com/anikatabassum/maatricare/internal/video"
)

// stubChat records prompts and returns a canned reply or error.
type stubChat struct {
	reply string
	err   error
	calls []string
}

func (s *stubChat) Chat(_ context.Context, messages []llm.Message) (string, error) {
	s.calls = append(s.calls, messages[len(messages)-1].Content)
	return s.reply, s.err
}

func emergencySheet() FactSheet {
	return FactSheet{
		Kind: domain.IntentEmergency,
		Emergency: &EmergencyFacts{
			Numbers:          map[string]string{"emergency": "999", "maternal_hotline": "16263"},
			ImmediateActions: []string{"Stay calm"},
		},
	}
}

func TestRenderEmergencyAppendsFooter(t *testing.T) {
	client := &stubChat{reply: "**🚨 EMERGENCY RESPONSE 🚨**\n\n**Critical Actions:**\n1. Sit down"}
	r := NewRenderer(client)

	got := r.Render(context.Background(), "severe headache", "No patient profile available", emergencySheet())

	assert.Contains(t, got, "**Critical Actions:**")
	assert.Contains(t, got, "999")
	assert.Contains(t, got, "16263")
	assert.Contains(t, got, "DO NOT WAIT")

	require.Len(t, client.calls, 1)
	assert.Contains(t, client.calls[0], "severe headache")
	assert.Contains(t, client.calls[0], "URGENT")
}

func TestRenderEmergencyFallbackStillHasContacts(t *testing.T) {
	client := &stubChat{err: errors.New("model unavailable")}
	r := NewRenderer(client)

	got := r.Render(context.Background(), "severe pain", "ctx", emergencySheet())

	assert.Contains(t, got, "999")
	assert.Contains(t, got, "16263")
}

func TestRenderWorkerErrorShortCircuits(t *testing.T) {
	client := &stubChat{reply: "should not be used"}
	r := NewRenderer(client)

	tests := []struct {
		sheet FactSheet
		want  string
	}{
		{FactSheet{Kind: domain.IntentNutrition, Err: "boom"}, nutritionWorkerFallback},
		{FactSheet{Kind: domain.IntentExercise, Err: "boom"}, exerciseWorkerFallback},
		{FactSheet{Kind: domain.IntentScheduling, Err: "no medical state available"}, schedulingWorkerFallback},
	}
	for _, tt := range tests {
		got := r.Render(context.Background(), "q", "ctx", tt.sheet)
		assert.Equal(t, tt.want, got)
	}
	assert.Empty(t, client.calls, "model must not be invoked for errored fact sheets")
}

func TestRenderNutritionSuccess(t *testing.T) {
	client := &stubChat{reply: "<think>planning</think>**🥗 Nutrition Guidance**\n\n- **Dal:** protein"}
	r := NewRenderer(client)

	sheet := FactSheet{
		Kind: domain.IntentNutrition,
		Nutrition: &NutritionFacts{
			Trimester:    2,
			Week:         20,
			FoodsToFocus: []string{"iron-rich foods"},
			LocalFoods:   []string{"dal", "rice"},
		},
	}
	got := r.Render(context.Background(), "what to eat", "Patient: Age 30, Week 20, Trimester 2", sheet)

	assert.Equal(t, "**🥗 Nutrition Guidance**\n\n- **Dal:** protein", got)

	require.Len(t, client.calls, 1)
	assert.Contains(t, client.calls[0], "trimester 2, week 20")
	assert.Contains(t, client.calls[0], "iron-rich foods")
	assert.Contains(t, client.calls[0], "Patient: Age 30, Week 20, Trimester 2")
}

func TestRenderMoodAppendsSupportFooter(t *testing.T) {
	client := &stubChat{reply: "**💝 Emotional Support**\n\n- **Rest:** take it easy"}
	r := NewRenderer(client)

	sheet := FactSheet{
		Kind: domain.IntentMoodSupport,
		Mood: &MoodFacts{
			CopingStrategies: []string{"deep breathing"},
			Videos:           []video.Video{{Title: "Calm", URL: "https://example.com", Description: "soothing"}},
		},
	}
	got := r.Render(context.Background(), "feeling low", "ctx", sheet)

	assert.Contains(t, got, "**💝 Emotional Support**")
	assert.Contains(t, got, "you're not alone in this journey")
	assert.Contains(t, client.calls[0], "https://example.com")
}

func TestRenderMoodFallbackOmitsFooter(t *testing.T) {
	client := &stubChat{err: errors.New("model unavailable")}
	r := NewRenderer(client)

	got := r.Render(context.Background(), "feeling low", "ctx", FactSheet{Kind: domain.IntentMoodSupport, Mood: &MoodFacts{}})

	assert.Equal(t, moodFallback, got)
}

func TestRenderGateFailureFallbacks(t *testing.T) {
	client := &stubChat{err: errors.New("model unavailable")}
	r := NewRenderer(client)

	tests := []struct {
		sheet FactSheet
		want  string
	}{
		{FactSheet{Kind: domain.IntentNutrition, Nutrition: &NutritionFacts{}}, nutritionFallback},
		{FactSheet{Kind: domain.IntentExercise, Exercise: &ExerciseFacts{}}, exerciseFallback},
		{FactSheet{Kind: domain.IntentScheduling, Scheduling: &SchedulingFacts{}}, schedulingFallback},
		{FactSheet{Kind: domain.IntentGeneral, General: &GeneralFacts{}}, generalFallback},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Render(context.Background(), "q", "ctx", tt.sheet))
	}
}

func TestRenderSchedulingIncludesVisits(t *testing.T) {
	client := &stubChat{reply: "**📅 Your ANC Schedule**"}
	r := NewRenderer(client)

	sheet := FactSheet{
		Kind: domain.IntentScheduling,
		Scheduling: &SchedulingFacts{
			CurrentWeek: 22,
			NextVisits: []Visit{
				{Week: 26, Date: workersNow.AddDate(0, 0, 28), Type: domain.VisitScreening, Priority: domain.PriorityHigh},
			},
		},
	}
	r.Render(context.Background(), "when is my visit", "ctx", sheet)

	require.Len(t, client.calls, 1)
	assert.Contains(t, client.calls[0], "current week 22")
	assert.Contains(t, client.calls[0], "Week 26 on 2025-07-13 (screening, high priority)")
}
