package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/praxischess/praxis/internal/analysis"
	"github.com/praxischess/praxis/internal/report"
	"github.com/praxischess/praxis/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past analysis runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent analysis runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		runs, err := s.Runs().List(ctx, limit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No analysis runs recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-20s  %-5s  %-8s  %s\n",
			"ID", "Date", "Source", "Color", "Mistakes", "Duration")
		fmt.Println(strings.Repeat("─", 104))

		for _, r := range runs {
			source := r.Source
			if len(source) > 20 {
				source = source[:20]
			}
			fmt.Printf("%-36s  %-19s  %-20s  %-5s  %-8d  %.1fs\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				source,
				r.Color,
				r.MistakeCount,
				float64(r.DurationMs)/1000,
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Replay a recorded run's report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		run, err := s.Runs().Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get run: %w", err)
		}
		if run == nil {
			return fmt.Errorf("run %s not found", args[0])
		}

		fmt.Println(report.Banner(report.RunHeader{
			Source:      run.Source,
			Color:       analysis.Color(run.Color),
			ThresholdCP: run.ThresholdCP,
			Depth:       run.Depth,
			Model:       run.Provider,
		}))

		for _, m := range run.Mistakes {
			fmt.Println(report.Mistake(toAnalyzedMistake(m)))
		}
		fmt.Println(report.Summary(len(run.Mistakes)))
		return nil
	},
}

// toAnalyzedMistake rebuilds the in-memory form from a persisted row.
func toAnalyzedMistake(m store.RunMistake) analysis.AnalyzedMistake {
	return analysis.AnalyzedMistake{
		Mistake: analysis.Mistake{
			Before: analysis.Position{
				FEN:        m.FENBefore,
				MoveNumber: m.MoveNumber,
				Color:      analysis.Color(m.Color),
			},
			After: analysis.Position{
				FEN:        m.FENAfter,
				MoveNumber: m.MoveNumber,
				Color:      analysis.Color(m.Color),
			},
			MovePlayed: m.MovePlayed,
			EvalBefore: analysis.Evaluation{ScoreCP: m.EvalBeforeCP, BestMoveSAN: m.BestMove},
			EvalAfter:  analysis.Evaluation{ScoreCP: m.EvalAfterCP},
			EvalDropCP: m.EvalDropCP,
		},
		Explanation: analysis.Explanation{
			WhyGood:   m.WhyGood,
			WhyFailed: m.WhyFailed,
			Concept:   m.Concept,
			Pattern:   m.Pattern,
		},
	}
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
}
