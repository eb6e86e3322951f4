package analysis

import "testing"

func TestNormalizePerspective_TurnFlipped(t *testing.T) {
	in := Evaluation{ScoreCP: 120, BestMoveUCI: "g8f6", BestMoveSAN: "Nf6"}

	got := normalizePerspective(in, true)
	if got.ScoreCP != -120 {
		t.Fatalf("expected -120, got %d", got.ScoreCP)
	}
	if got.BestMoveUCI != "g8f6" || got.BestMoveSAN != "Nf6" {
		t.Fatalf("best-move fields must be preserved, got %+v", got)
	}
}

func TestNormalizePerspective_NegativeScore(t *testing.T) {
	got := normalizePerspective(Evaluation{ScoreCP: -75}, true)
	if got.ScoreCP != 75 {
		t.Fatalf("expected 75, got %d", got.ScoreCP)
	}
}

func TestNormalizePerspective_Zero(t *testing.T) {
	got := normalizePerspective(Evaluation{ScoreCP: 0}, true)
	if got.ScoreCP != 0 {
		t.Fatalf("expected 0, got %d", got.ScoreCP)
	}
}

// A turn that did not flip never happens after a legal move; the identity
// branch exists for boundary coverage.
func TestNormalizePerspective_TurnNotFlipped(t *testing.T) {
	in := Evaluation{ScoreCP: 120, BestMoveUCI: "g8f6", BestMoveSAN: "Nf6"}

	got := normalizePerspective(in, false)
	if got != in {
		t.Fatalf("expected identity, got %+v", got)
	}
}
