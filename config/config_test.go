package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/linepara"
	"github.com/tsawler/linepara/layout"
)

func TestDefault(t *testing.T) {
	config := Default()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if diff := cmp.Diff(layout.DefaultConfig(), config.Layout()); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
strategy: Adaptive
split_factor: 2.0
min_line_height: 3
log_level: DEBUG
workers: 4
`)

	config, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &Config{
		Strategy:          "adaptive",
		SplitFactor:       2.0,
		SpacingPercentile: 0.15,
		MinLineHeight:     3,
		AdaptiveFactor:    2.0,
		LogLevel:          "debug",
		Workers:           4,
	}
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	level, err := config.Level()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v (%v)", level, err)
	}
}

func TestParse_EnvExpansion(t *testing.T) {
	t.Setenv("LINEPARA_STRATEGY", "hinted")
	t.Setenv("LINEPARA_WORKERS", "8")

	config, err := Parse([]byte("strategy: ${LINEPARA_STRATEGY}\nworkers: $LINEPARA_WORKERS\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Strategy != "hinted" {
		t.Errorf("Expected strategy 'hinted', got %q", config.Strategy)
	}
	if config.Workers != 8 {
		t.Errorf("Expected 8 workers, got %d", config.Workers)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown strategy", "strategy: columns"},
		{"zero split factor", "split_factor: 0"},
		{"percentile above one", "spacing_percentile: 1.5"},
		{"negative min height", "min_line_height: -1"},
		{"negative adaptive factor", "adaptive_factor: -2"},
		{"negative workers", "workers: -1"},
		{"bad log level", "log_level: loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("strategy: [unclosed"))
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("syntax errors should not be reported as invalid config")
	}
}

func TestLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linepara.yaml")

	config := Default()
	config.Strategy = linepara.StrategyCharacter
	config.Workers = 2
	if err := Save(path, config); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(config, loaded); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestNewHandler(t *testing.T) {
	tests := []struct {
		strategy string
		check    func(linepara.Handler) bool
	}{
		{layout.StrategyStatistical, func(h linepara.Handler) bool { _, ok := h.(*linepara.ParagraphHandler); return ok }},
		{linepara.StrategyHinted, func(h linepara.Handler) bool { _, ok := h.(*linepara.LineMergingHandler); return ok }},
		{linepara.StrategyCharacter, func(h linepara.Handler) bool { _, ok := h.(*linepara.CharacterHandler); return ok }},
	}

	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			config := Default()
			config.Strategy = tt.strategy
			h, err := config.NewHandler(nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(h) {
				t.Errorf("unexpected handler type %T", h)
			}
		})
	}
}
