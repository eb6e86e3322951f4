package analysis

import (
	"errors"
	"fmt"
)

// ErrInvalidPGN indicates the game text could not be parsed into a move
// sequence. It is raised before any engine call; there are no partial results.
var ErrInvalidPGN = errors.New("invalid PGN: could not parse game")

// StageError wraps a failure from a collaborator (engine or explainer) with
// enough context to report which move and which stage failed.
type StageError struct {
	Stage      string // "evaluate-before", "evaluate-after", "explain"
	MoveNumber int
	Mover      Color
	Err        error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("move %d (%s), stage %s: %v", e.MoveNumber, e.Mover, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
