// Package report renders analysis results for the terminal.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/praxischess/praxis/internal/analysis"
)

var (
	primary = lipgloss.Color("#8B5CF6")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#F43F5E")
	dim     = lipgloss.Color("#94A3B8")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(dim)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(dim)

	dropStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(danger)

	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(success)
)

// RunHeader describes one analysis run for the banner.
type RunHeader struct {
	Source      string
	Color       analysis.Color
	ThresholdCP int
	Depth       int
	Model       string
}

// Banner renders the run banner printed before analysis starts.
func Banner(h RunHeader) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("praxis chess analyzer"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Analyzing %s moves from %s\n", h.Color, h.Source)
	fmt.Fprintf(&b, "Mistake threshold: %d centipawns, engine depth: %d\n", h.ThresholdCP, h.Depth)
	if h.Model != "" {
		fmt.Fprintf(&b, "Explanations by: %s\n", h.Model)
	}
	return b.String()
}

// Mistake renders one analyzed mistake as a terminal card.
func Mistake(am analysis.AnalyzedMistake) string {
	m := am.Mistake
	e := am.Explanation

	bestMove := m.EvalBefore.BestMoveSAN
	if bestMove == "" {
		bestMove = "(none)"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Move %d: %s (%s)", m.Before.MoveNumber, m.MovePlayed, m.Before.Color)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %+.1f → %+.1f pawns %s\n",
		labelStyle.Render("Evaluation:"),
		float64(m.EvalBefore.ScoreCP)/100,
		float64(m.EvalAfter.ScoreCP)/100,
		dropStyle.Render(fmt.Sprintf("(drop: %.1f)", float64(m.EvalDropCP)/100)),
	)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Best move was:"), bestMove)

	writeSection(&b, "Why it looked good", e.WhyGood)
	writeSection(&b, "Why it failed", e.WhyFailed)
	writeSection(&b, "Concept involved", e.Concept)
	writeSection(&b, "Typical pattern", e.Pattern)

	return b.String()
}

// Summary renders the closing line for a run.
func Summary(mistakes int) string {
	if mistakes == 0 {
		return okStyle.Render("No significant mistakes found.")
	}
	noun := "mistakes"
	if mistakes == 1 {
		noun = "mistake"
	}
	return dropStyle.Render(fmt.Sprintf("Found %d %s.", mistakes, noun))
}

func writeSection(b *strings.Builder, label, body string) {
	if body == "" {
		return
	}
	fmt.Fprintf(b, "\n%s\n%s\n", labelStyle.Render(label+":"), body)
}
