package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EnginePath != "stockfish" {
		t.Errorf("EnginePath = %q, want stockfish", cfg.EnginePath)
	}
	if cfg.Depth != 18 {
		t.Errorf("Depth = %d, want 18", cfg.Depth)
	}
	if cfg.ThresholdCP != 100 {
		t.Errorf("ThresholdCP = %d, want 100", cfg.ThresholdCP)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PRAXIS_ENGINE_PATH", "/opt/stockfish/stockfish")
	t.Setenv("PRAXIS_DEPTH", "12")
	t.Setenv("PRAXIS_THRESHOLD_CP", "50")
	t.Setenv("PRAXIS_DB", "/tmp/praxis-test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EnginePath != "/opt/stockfish/stockfish" {
		t.Errorf("EnginePath = %q", cfg.EnginePath)
	}
	if cfg.Depth != 12 {
		t.Errorf("Depth = %d", cfg.Depth)
	}
	if cfg.ThresholdCP != 50 {
		t.Errorf("ThresholdCP = %d", cfg.ThresholdCP)
	}
	if cfg.DBPath != "/tmp/praxis-test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
}

func TestLoad_BadInteger(t *testing.T) {
	t.Setenv("PRAXIS_DEPTH", "deep")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric depth")
	}
}
