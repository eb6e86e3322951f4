package explain

import (
	"fmt"

	"github.com/praxischess/praxis/internal/analysis"
)

const systemPrompt = "You are an experienced chess coach who explains mistakes clearly and concisely."

// buildPrompt renders a single mistake as a coaching prompt. Scores are
// shown in pawns, not centipawns, so the model is never tempted to echo
// engine units back at the student.
func buildPrompt(m analysis.Mistake) string {
	bestMove := m.EvalBefore.BestMoveSAN
	if bestMove == "" {
		bestMove = "(none)"
	}

	return fmt.Sprintf(`You are a chess coach explaining a mistake to a student.

Move %d (%s to move)
Move played: %s
Best move: %s
Evaluation: %.1f → %.1f pawns
Drop: %.1f pawns

Explain this mistake concisely using this exact structure:

WHY IT LOOKED GOOD:
[One sentence about what the player was trying to accomplish]

WHY IT FAILED:
[1-2 sentences about the tactical or strategic problem]

CONCEPT:
[One phrase naming the chess principle violated, e.g., 'King safety' or 'Piece coordination']

PATTERN:
[One sentence about the general pattern to recognize in similar positions]

Be direct and educational. Avoid engine terminology.`,
		m.Before.MoveNumber,
		m.Before.Color,
		m.MovePlayed,
		bestMove,
		float64(m.EvalBefore.ScoreCP)/100,
		float64(m.EvalAfter.ScoreCP)/100,
		float64(m.EvalDropCP)/100,
	)
}
