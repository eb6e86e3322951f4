package analysis

import (
	"fmt"

	"github.com/corentings/chess"
)

// Color selects which side's moves an analysis run inspects.
type Color string

const (
	White Color = "white"
	Black Color = "black"
	Both  Color = "both"
)

// ParseColor converts a CLI/config string into a Color.
func ParseColor(s string) (Color, error) {
	switch Color(s) {
	case White, Black, Both:
		return Color(s), nil
	default:
		return "", fmt.Errorf("invalid color %q: must be white, black, or both", s)
	}
}

// includes reports whether a mover of the given color is in scope.
func (c Color) includes(mover Color) bool {
	return c == Both || c == mover
}

// colorOf maps the board library's side-to-move to an analysis Color.
func colorOf(c chess.Color) Color {
	if c == chess.Black {
		return Black
	}
	return White
}

// Position identifies one board state at a move boundary.
type Position struct {
	// FEN is the full board-state string, sufficient to resume play.
	FEN string

	// MoveNumber is the fullmove number at this position.
	MoveNumber int

	// Color is the side to move at this position.
	Color Color
}

// Evaluation is an engine verdict on a single position. ScoreCP is signed
// centipawns from the perspective of the side to move at the moment the
// evaluation was produced (or the mover's perspective, once normalized).
type Evaluation struct {
	ScoreCP     int
	BestMoveUCI string
	BestMoveSAN string
}

// Mistake is a move whose evaluation drop met the classification threshold.
// EvalAfter is already expressed from the mover's perspective, so
// EvalDropCP == EvalBefore.ScoreCP - EvalAfter.ScoreCP always holds.
type Mistake struct {
	Before     Position
	After      Position
	MovePlayed string
	EvalBefore Evaluation
	EvalAfter  Evaluation
	EvalDropCP int
}

// Explanation is the coach's breakdown of a single mistake. Fields may be
// empty when the explanation backend omits a section; that is tolerated,
// not rejected.
type Explanation struct {
	WhyGood   string
	WhyFailed string
	Concept   string
	Pattern   string
}

// AnalyzedMistake pairs one Mistake with its Explanation.
type AnalyzedMistake struct {
	Mistake     Mistake
	Explanation Explanation
}
