package explain

import (
	"context"
	"fmt"

	"github.com/praxischess/praxis/internal/analysis"
)

// MockExplainer produces deterministic canned explanations so the pipeline
// can run end to end without an API key.
type MockExplainer struct{}

// NewMockExplainer creates a MockExplainer.
func NewMockExplainer() *MockExplainer {
	return &MockExplainer{}
}

// Explain returns a templated explanation built from the mistake itself.
func (e *MockExplainer) Explain(_ context.Context, m analysis.Mistake) (analysis.Explanation, error) {
	bestMove := m.EvalBefore.BestMoveSAN
	if bestMove == "" {
		bestMove = "(none)"
	}

	return analysis.Explanation{
		WhyGood:   fmt.Sprintf("[Mock] The move %s appeared to develop your pieces and control the center.", m.MovePlayed),
		WhyFailed: fmt.Sprintf("[Mock] This move ignores a critical tactical threat. The best move was %s.", bestMove),
		Concept:   "[Mock] Tactical awareness and threat recognition",
		Pattern:   "[Mock] Always check for opponent's threats (checks, captures, attacks) before making your move.",
	}, nil
}
