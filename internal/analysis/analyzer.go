package analysis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/corentings/chess"
)

// Evaluator produces an engine evaluation for a single position. The score
// is relative to the side to move in that position. One blocking engine
// request per call; implementations do not cache or batch.
type Evaluator interface {
	Evaluate(ctx context.Context, pos *chess.Position) (Evaluation, error)
}

// Explainer turns a Mistake into a natural-language Explanation.
type Explainer interface {
	Explain(ctx context.Context, m Mistake) (Explanation, error)
}

// Analyzer replays a game move by move, evaluates each in-scope move before
// and after it is played, classifies evaluation drops, and attaches an
// explanation to every classified mistake.
type Analyzer struct {
	evaluator   Evaluator
	explainer   Explainer
	thresholdCP int
}

// NewAnalyzer wires an Analyzer. A non-positive threshold falls back to
// DefaultThresholdCP.
func NewAnalyzer(evaluator Evaluator, explainer Explainer, thresholdCP int) *Analyzer {
	if thresholdCP <= 0 {
		thresholdCP = DefaultThresholdCP
	}
	return &Analyzer{
		evaluator:   evaluator,
		explainer:   explainer,
		thresholdCP: thresholdCP,
	}
}

// AnalyzePGN parses the game text and returns every mistake by the target
// color, in order of occurrence. Unparseable game text fails with
// ErrInvalidPGN before any evaluation. A game with zero moves, or one whose
// moves are all filtered out by target, yields an empty result.
//
// Any engine or explainer failure aborts the whole run; no partial mistake
// list is returned.
func (a *Analyzer) AnalyzePGN(ctx context.Context, pgnText string, target Color) ([]AnalyzedMistake, error) {
	if strings.TrimSpace(pgnText) == "" {
		return nil, ErrInvalidPGN
	}

	opt, err := chess.PGN(strings.NewReader(pgnText))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPGN, err)
	}
	game := chess.NewGame(opt)

	moves := game.Moves()
	positions := game.Positions()

	var out []AnalyzedMistake
	for i, move := range moves {
		before := positions[i]
		after := positions[i+1]

		// The mover is the side to move at the pre-move board, not the
		// side to move once the move has been applied.
		mover := colorOf(before.Turn())
		moveNumber := fullmoveNumber(before.String())

		if !target.includes(mover) {
			continue
		}

		evalBefore, err := a.evaluator.Evaluate(ctx, before)
		if err != nil {
			return nil, &StageError{Stage: "evaluate-before", MoveNumber: moveNumber, Mover: mover, Err: err}
		}

		// SAN depends on the pre-move board; encode before looking at the
		// post-move position.
		movePlayed := chess.AlgebraicNotation{}.Encode(before, move)

		evalAfterRaw, err := a.evaluator.Evaluate(ctx, after)
		if err != nil {
			return nil, &StageError{Stage: "evaluate-after", MoveNumber: moveNumber, Mover: mover, Err: err}
		}

		evalAfter := normalizePerspective(evalAfterRaw, after.Turn() != before.Turn())

		if !IsMistake(evalBefore, evalAfter, a.thresholdCP) {
			continue
		}

		mistake := Mistake{
			Before: Position{
				FEN:        before.String(),
				MoveNumber: moveNumber,
				Color:      mover,
			},
			After: Position{
				FEN:        after.String(),
				MoveNumber: moveNumber,
				Color:      mover,
			},
			MovePlayed: movePlayed,
			EvalBefore: evalBefore,
			EvalAfter:  evalAfter,
			EvalDropCP: evalBefore.ScoreCP - evalAfter.ScoreCP,
		}

		explanation, err := a.explainer.Explain(ctx, mistake)
		if err != nil {
			return nil, &StageError{Stage: "explain", MoveNumber: moveNumber, Mover: mover, Err: err}
		}

		out = append(out, AnalyzedMistake{Mistake: mistake, Explanation: explanation})
	}

	return out, nil
}

// fullmoveNumber reads the fullmove counter from the last FEN field.
func fullmoveNumber(fen string) int {
	fields := strings.Fields(fen)
	if len(fields) < 6 {
		return 0
	}
	n, err := strconv.Atoi(fields[5])
	if err != nil {
		return 0
	}
	return n
}
