package analysis

// normalizePerspective re-expresses an evaluation from the mover's point of
// view. After a legal move the side to move flips, so the raw post-move score
// belongs to the opponent and must be negated before it can be compared with
// the pre-move score. turnFlipped is always true for a single legal move; the
// parameter exists so the identity case stays testable.
func normalizePerspective(eval Evaluation, turnFlipped bool) Evaluation {
	if !turnFlipped {
		return eval
	}
	return Evaluation{
		ScoreCP:     -eval.ScoreCP,
		BestMoveUCI: eval.BestMoveUCI,
		BestMoveSAN: eval.BestMoveSAN,
	}
}
