package explain

import (
	"context"
	"fmt"

	"github.com/praxischess/praxis/internal/analysis"
	"github.com/praxischess/praxis/internal/llm"
)

const (
	explainMaxTokens   = 300
	explainTemperature = 0.7
)

// LLMExplainer asks a text-generation backend to coach each mistake.
type LLMExplainer struct {
	provider llm.Provider
}

// NewLLMExplainer wraps a Provider as an analysis.Explainer.
func NewLLMExplainer(provider llm.Provider) *LLMExplainer {
	return &LLMExplainer{provider: provider}
}

// Explain generates and parses a coaching explanation for one mistake.
func (e *LLMExplainer) Explain(ctx context.Context, m analysis.Mistake) (analysis.Explanation, error) {
	ctx = llm.WithPurpose(ctx, "explain-mistake")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(m)},
		},
		MaxTokens:   explainMaxTokens,
		Temperature: explainTemperature,
	})
	if err != nil {
		return analysis.Explanation{}, fmt.Errorf("generating explanation: %w", err)
	}

	return parseExplanation(string(resp.Content)), nil
}
