package agent

import (
	"context"

	"github.com/anikatabassum/maatricare/internal/domain"
	"github.com/anikatabassum/maatricare/internal/patient"
)

// Pipeline is the single-pass conversation flow: classify, run the one
// matching worker, render. It always terminates with some response
// string and records the interaction either way.
type Pipeline struct {
	store    *patient.Store
	workers  *Workers
	renderer *Renderer
}

// NewPipeline wires the conversation pipeline over a patient store.
func NewPipeline(store *patient.Store, workers *Workers, renderer *Renderer) *Pipeline {
	return &Pipeline{store: store, workers: workers, renderer: renderer}
}

// Respond processes one user query end to end. Any panic escaping the
// stages is converted into the generic failure reply; the user never
// sees a raw error.
func (p *Pipeline) Respond(ctx context.Context, input string) (response string) {
	intent := domain.IntentGeneral

	defer func() {
		if r := recover(); r != nil {
			response = genericFailureResponse
		}
		p.store.AddInteraction(input, response, map[string]string{
			"intent": string(intent),
		})
	}()

	profile := p.store.Profile()
	medical := p.store.Medical()

	intent = ClassifyIntent(input)
	sheet := p.workers.Run(ctx, intent, input, profile, medical)
	return p.renderer.Render(ctx, input, p.store.ContextSummary(), sheet)
}
