package engine

import (
	"context"
	"fmt"

	"github.com/corentings/chess"

	"github.com/praxischess/praxis/internal/analysis"
)

const (
	// DefaultDepth is the fixed search depth used when none is configured.
	DefaultDepth = 18

	// MateScoreCP is the saturated sentinel substituted for forced-mate
	// scores, keeping downstream arithmetic in plain centipawn space.
	MateScoreCP = 10000
)

// Searcher is the engine session surface the evaluator consumes.
type Searcher interface {
	Search(fen string, depth int) (SearchResult, error)
}

// Evaluator adapts a raw engine session into the pipeline's evaluation
// contract: scores relative to the side to move, mates saturated, best move
// rendered in both UCI and SAN.
type Evaluator struct {
	engine Searcher
	depth  int
}

// NewEvaluator creates an Evaluator searching at the given fixed depth.
func NewEvaluator(engine Searcher, depth int) *Evaluator {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Evaluator{engine: engine, depth: depth}
}

// Evaluate runs one blocking engine search on the position. The returned
// score is signed centipawns from the perspective of the side to move. A
// search with no principal variation yields empty best-move fields, not an
// error.
func (e *Evaluator) Evaluate(ctx context.Context, pos *chess.Position) (analysis.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return analysis.Evaluation{}, err
	}

	fen := pos.String()
	res, err := e.engine.Search(fen, e.depth)
	if err != nil {
		return analysis.Evaluation{}, fmt.Errorf("evaluate position: %w", err)
	}

	score := res.ScoreCP
	if res.Mate {
		score = MateScoreCP
		if res.MateIn < 0 {
			score = -MateScoreCP
		}
	}

	// The session reports white-relative; the contract is side-to-move
	// relative.
	if pos.Turn() == chess.Black {
		score = -score
	}

	eval := analysis.Evaluation{ScoreCP: score}

	if res.BestMoveUCI != "" {
		eval.BestMoveUCI = res.BestMoveUCI
		if mv, err := (chess.UCINotation{}).Decode(pos, res.BestMoveUCI); err == nil {
			eval.BestMoveSAN = chess.AlgebraicNotation{}.Encode(pos, mv)
		}
	}

	return eval, nil
}
