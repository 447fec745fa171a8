package agent

import (
	"context"

	"github.com/anikatabassum/maatricare/internal/domain"
	"github.com/anikatabassum/maatricare/internal/llm"
)

// Renderer turns a fact sheet into the user-facing reply. Model
// failures never reach the caller: every branch degrades to a static
// fallback so the user always gets real advice.
type Renderer struct {
	client llm.ChatClient
}

// NewRenderer creates a Renderer over a chat client, normally the
// rate-limited gate.
func NewRenderer(client llm.ChatClient) *Renderer {
	return &Renderer{client: client}
}

// Render produces the reply for one classified query. A fact sheet
// carrying an error short-circuits to the worker fallback without a
// model call, except the emergency branch which always renders and
// always carries the static contacts footer.
func (r *Renderer) Render(ctx context.Context, input, contextSummary string, sheet FactSheet) string {
	if sheet.Kind != domain.IntentEmergency && sheet.Err != "" {
		return workerFallback(sheet.Kind)
	}

	switch sheet.Kind {
	case domain.IntentEmergency:
		reply, err := r.generate(ctx, buildEmergencyPrompt(input, contextSummary, sheet.Emergency))
		if err != nil {
			return emergencyFallback
		}
		return reply + emergencyFooter
	case domain.IntentNutrition:
		reply, err := r.generate(ctx, buildNutritionPrompt(input, contextSummary, sheet.Nutrition))
		if err != nil {
			return nutritionFallback
		}
		return reply
	case domain.IntentExercise:
		reply, err := r.generate(ctx, buildExercisePrompt(input, contextSummary, sheet.Exercise))
		if err != nil {
			return exerciseFallback
		}
		return reply
	case domain.IntentMoodSupport:
		reply, err := r.generate(ctx, buildMoodPrompt(input, contextSummary, sheet.Mood))
		if err != nil {
			return moodFallback
		}
		return reply + moodFooter
	case domain.IntentScheduling:
		reply, err := r.generate(ctx, buildSchedulingPrompt(input, contextSummary, sheet.Scheduling))
		if err != nil {
			return schedulingFallback
		}
		return reply
	default:
		reply, err := r.generate(ctx, buildGeneralPrompt(input, contextSummary, sheet.General))
		if err != nil {
			return generalFallback
		}
		return reply
	}
}

func (r *Renderer) generate(ctx context.Context, prompt string) (string, error) {
	raw, err := r.client.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}})
	if err != nil {
		return "", err
	}
	return Sanitize(raw), nil
}
