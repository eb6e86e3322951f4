package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/praxischess/praxis/internal/analysis"
	"github.com/praxischess/praxis/internal/config"
	"github.com/praxischess/praxis/internal/engine"
	"github.com/praxischess/praxis/internal/explain"
	"github.com/praxischess/praxis/internal/llm"
	"github.com/praxischess/praxis/internal/report"
	"github.com/praxischess/praxis/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Find and explain the mistakes in a PGN game",
	RunE:  runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.String("pgn", "", `Path to PGN file ("-" for stdin)`)
	f.StringP("color", "c", "both", "Which side to analyze: white, black, or both")
	f.String("engine", "", "Path to UCI engine binary (default: PRAXIS_ENGINE_PATH or stockfish)")
	f.Int("depth", 0, "Engine search depth per position (default: PRAXIS_DEPTH or 18)")
	f.Int("threshold", 0, "Centipawn drop that counts as a mistake (default: PRAXIS_THRESHOLD_CP or 100)")
	f.Int("max-mistakes", 0, "Report at most this many mistakes (0 = all)")
	f.String("llm", "auto", "Explanation backend: auto, mock, anthropic, openai, gemini, openrouter")
	f.String("model", "", "Model override for the selected backend")
	f.Bool("no-save", false, "Do not record this run in the database")
	_ = analyzeCmd.MarkFlagRequired("pgn")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pgnPath, _ := flags.GetString("pgn")
	colorFlag, _ := flags.GetString("color")
	noSave, _ := flags.GetBool("no-save")
	maxMistakes, _ := flags.GetInt("max-mistakes")
	llmFlag, _ := flags.GetString("llm")
	modelFlag, _ := flags.GetString("model")

	enginePath, _ := flags.GetString("engine")
	if enginePath == "" {
		enginePath = cfg.EnginePath
	}
	depth, _ := flags.GetInt("depth")
	if depth <= 0 {
		depth = cfg.Depth
	}
	threshold, _ := flags.GetInt("threshold")
	if threshold <= 0 {
		threshold = cfg.ThresholdCP
	}

	color, err := analysis.ParseColor(colorFlag)
	if err != nil {
		return err
	}

	pgnText, source, err := readPGN(pgnPath)
	if err != nil {
		return err
	}

	var st *store.Store
	var events store.EventRepo
	if !noSave {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err = store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		events = st.Events()
	}

	explainer, modelLabel, err := buildExplainer(ctx, llmFlag, modelFlag, events)
	if err != nil {
		return err
	}

	uci := engine.NewUCI(enginePath)
	if err := uci.Start(); err != nil {
		return fmt.Errorf("start engine %q: %w", enginePath, err)
	}
	defer uci.Close()
	evaluator := engine.NewEvaluator(uci, depth)

	fmt.Println(report.Banner(report.RunHeader{
		Source:      source,
		Color:       color,
		ThresholdCP: threshold,
		Depth:       depth,
		Model:       modelLabel,
	}))

	start := time.Now()
	analyzer := analysis.NewAnalyzer(evaluator, explainer, threshold)
	results, err := analyzer.AnalyzePGN(ctx, pgnText, color)
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidPGN) {
			return fmt.Errorf("%s: %w", source, err)
		}
		return err
	}
	elapsed := time.Since(start)

	if maxMistakes > 0 && len(results) > maxMistakes {
		results = results[:maxMistakes]
	}

	for _, am := range results {
		fmt.Println(report.Mistake(am))
	}
	fmt.Println(report.Summary(len(results)))

	if st != nil {
		run := buildRun(source, color, threshold, depth, modelLabel, elapsed, results)
		if err := st.Runs().Save(ctx, run); err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Printf("Saved as run %s\n", run.ID)
	}

	return nil
}

// readPGN loads the game text from a file, or stdin when path is "-".
// Returns the text and a display name for the source.
func readPGN(path string) (string, string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "-", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read PGN file: %w", err)
	}
	return string(data), path, nil
}

// buildExplainer selects the explanation backend. "mock" never touches the
// network; "auto" uses the configured provider when an API key is present
// and falls back to the mock explainer otherwise.
func buildExplainer(ctx context.Context, backend, model string, events store.EventRepo) (analysis.Explainer, string, error) {
	if backend == "mock" {
		return explain.NewMockExplainer(), "mock", nil
	}

	llmCfg := llm.ConfigFromEnv()
	if backend != "auto" {
		llmCfg.Provider = backend
	}
	applyModelOverride(&llmCfg, model)

	if err := llmCfg.Validate(); err != nil {
		if backend != "auto" {
			return nil, "", err
		}
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Println("No LLM API key found; using the mock explainer.")
			return explain.NewMockExplainer(), "mock", nil
		}
		llmCfg = discovered
		applyModelOverride(&llmCfg, model)
	}

	provider, err := llm.NewProvider(ctx, llmCfg, events)
	if err != nil {
		return nil, "", err
	}
	return explain.NewLLMExplainer(provider), provider.ModelID(), nil
}

func applyModelOverride(cfg *llm.Config, model string) {
	if model == "" {
		return
	}
	switch cfg.Provider {
	case "anthropic":
		cfg.Anthropic.Model = model
	case "openai":
		cfg.OpenAI.Model = model
	case "gemini":
		cfg.Gemini.Model = model
	case "openrouter":
		cfg.OpenRouter.Model = model
	}
}

// buildRun flattens analysis results into the persisted form.
func buildRun(source string, color analysis.Color, threshold, depth int, provider string, elapsed time.Duration, results []analysis.AnalyzedMistake) *store.Run {
	run := &store.Run{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now(),
		Source:      source,
		Color:       string(color),
		ThresholdCP: threshold,
		Depth:       depth,
		Provider:    provider,
		DurationMs:  elapsed.Milliseconds(),
	}

	for _, am := range results {
		m := am.Mistake
		run.Mistakes = append(run.Mistakes, store.RunMistake{
			MoveNumber:   m.Before.MoveNumber,
			Color:        string(m.Before.Color),
			MovePlayed:   m.MovePlayed,
			BestMove:     m.EvalBefore.BestMoveSAN,
			EvalBeforeCP: m.EvalBefore.ScoreCP,
			EvalAfterCP:  m.EvalAfter.ScoreCP,
			EvalDropCP:   m.EvalDropCP,
			FENBefore:    m.Before.FEN,
			FENAfter:     m.After.FEN,
			WhyGood:      am.Explanation.WhyGood,
			WhyFailed:    am.Explanation.WhyFailed,
			Concept:      am.Explanation.Concept,
			Pattern:      am.Explanation.Pattern,
		})
	}

	return run
}
