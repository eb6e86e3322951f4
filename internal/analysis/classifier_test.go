package analysis

import "testing"

func TestIsMistake(t *testing.T) {
	tests := []struct {
		name      string
		before    int
		after     int
		threshold int
		want      bool
	}{
		{"drop equals threshold", 50, -50, 100, true},
		{"drop above threshold", 50, -80, 100, true},
		{"drop below threshold", 50, -40, 100, false},
		{"improvement", 50, 120, 100, false},
		{"no change", 0, 0, 100, false},
		{"both negative", -100, -250, 100, true},
		{"mate-sized drop", 200, -10000, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsMistake(Evaluation{ScoreCP: tt.before}, Evaluation{ScoreCP: tt.after}, tt.threshold)
			if got != tt.want {
				t.Fatalf("IsMistake(%d, %d, %d) = %v, want %v",
					tt.before, tt.after, tt.threshold, got, tt.want)
			}
		})
	}
}

// Raising the threshold never turns a non-mistake into a mistake, and
// lowering it never turns a mistake into a non-mistake.
func TestIsMistake_MonotonicInThreshold(t *testing.T) {
	before := Evaluation{ScoreCP: 50}
	after := Evaluation{ScoreCP: -80}

	prev := true
	for threshold := 0; threshold <= 300; threshold += 10 {
		got := IsMistake(before, after, threshold)
		if got && !prev {
			t.Fatalf("classification flipped back on at threshold %d", threshold)
		}
		prev = got
	}
}
