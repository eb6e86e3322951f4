package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type runRepo struct {
	db *sql.DB
}

func (r *runRepo) Save(ctx context.Context, run *Run) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, source, color, threshold_cp, depth, provider, mistake_count, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt, run.Source, run.Color, run.ThresholdCP,
		run.Depth, run.Provider, len(run.Mistakes), run.DurationMs)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, m := range run.Mistakes {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO mistakes (run_id, move_number, color, move_played, best_move,
				eval_before_cp, eval_after_cp, eval_drop_cp, fen_before, fen_after,
				why_good, why_failed, concept, pattern)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID, m.MoveNumber, m.Color, m.MovePlayed, m.BestMove,
			m.EvalBeforeCP, m.EvalAfterCP, m.EvalDropCP, m.FENBefore, m.FENAfter,
			m.WhyGood, m.WhyFailed, m.Concept, m.Pattern)
		if err != nil {
			return fmt.Errorf("insert mistake: %w", err)
		}
	}

	return tx.Commit()
}

func (r *runRepo) List(ctx context.Context, limit int) ([]Run, error) {
	q := `
		SELECT id, created_at, source, color, threshold_cp, depth, provider, mistake_count, duration_ms
		FROM runs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.Source, &run.Color,
			&run.ThresholdCP, &run.Depth, &run.Provider, &run.MistakeCount, &run.DurationMs); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (r *runRepo) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := r.db.QueryRowContext(ctx, `
		SELECT id, created_at, source, color, threshold_cp, depth, provider, mistake_count, duration_ms
		FROM runs WHERE id = ?`, id).
		Scan(&run.ID, &run.CreatedAt, &run.Source, &run.Color,
			&run.ThresholdCP, &run.Depth, &run.Provider, &run.MistakeCount, &run.DurationMs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT move_number, color, move_played, best_move,
			eval_before_cp, eval_after_cp, eval_drop_cp, fen_before, fen_after,
			why_good, why_failed, concept, pattern
		FROM mistakes WHERE run_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("query mistakes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m RunMistake
		if err := rows.Scan(&m.MoveNumber, &m.Color, &m.MovePlayed, &m.BestMove,
			&m.EvalBeforeCP, &m.EvalAfterCP, &m.EvalDropCP, &m.FENBefore, &m.FENAfter,
			&m.WhyGood, &m.WhyFailed, &m.Concept, &m.Pattern); err != nil {
			return nil, fmt.Errorf("scan mistake: %w", err)
		}
		run.Mistakes = append(run.Mistakes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &run, nil
}
