package explain

import (
	"strings"

	"github.com/praxischess/praxis/internal/analysis"
)

// parseExplanation splits labeled coaching text into its four sections.
// Section headers are matched case-insensitively and a missing section
// leaves its field empty rather than failing; models do not always follow
// the requested structure exactly.
func parseExplanation(text string) analysis.Explanation {
	var out analysis.Explanation
	var current *string

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		switch {
		case strings.Contains(upper, "WHY IT LOOKED GOOD"):
			current = &out.WhyGood
		case strings.Contains(upper, "WHY IT FAILED"):
			current = &out.WhyFailed
		case strings.Contains(upper, "CONCEPT"):
			current = &out.Concept
		case strings.Contains(upper, "PATTERN"):
			current = &out.Pattern
		case current != nil:
			if *current != "" {
				*current += " " + line
			} else {
				*current = line
			}
		}
	}

	return out
}
