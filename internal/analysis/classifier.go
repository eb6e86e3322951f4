package analysis

// DefaultThresholdCP is the evaluation drop, in centipawns, that classifies
// a move as a mistake when the caller does not supply a threshold.
const DefaultThresholdCP = 100

// IsMistake reports whether the drop from before to after meets the
// threshold. Both evaluations must already be expressed from the mover's
// perspective; perspective normalization is the pipeline's job, never this
// function's.
func IsMistake(before, after Evaluation, thresholdCP int) bool {
	return before.ScoreCP-after.ScoreCP >= thresholdCP
}
