package linepara

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/tsawler/linepara/layout"
	"github.com/tsawler/linepara/model"
)

const (
	charWidth  = 5.0
	pageWidth  = 595.0
	pageHeight = 842.0
)

// makeRun creates one glyph per rune of s on the given baseline, starting at
// the left margin
func makeRun(s string, baseline, height float64) []model.Glyph {
	var run []model.Glyph
	x := 50.0
	for _, r := range s {
		run = append(run, model.Glyph{
			Text:       string(r),
			X:          x,
			Y:          baseline,
			Width:      charWidth,
			Height:     height,
			PageWidth:  pageWidth,
			PageHeight: pageHeight,
			FontName:   "/F1",
			FontSize:   height,
		})
		x += charWidth
	}
	return run
}

// pageTexts returns the paragraph texts of each page
func pageTexts(pages []*model.Page) [][]string {
	out := make([][]string, len(pages))
	for i, page := range pages {
		out[i] = make([]string, len(page.Paragraphs))
		for j := range page.Paragraphs {
			out[i][j] = page.Paragraphs[j].Text()
		}
	}
	return out
}

func TestNewHandler(t *testing.T) {
	tests := []struct {
		strategy string
		check    func(Handler) bool
	}{
		{"", func(h Handler) bool { _, ok := h.(*ParagraphHandler); return ok }},
		{layout.StrategyStatistical, func(h Handler) bool { _, ok := h.(*ParagraphHandler); return ok }},
		{layout.StrategyAdaptive, func(h Handler) bool { _, ok := h.(*ParagraphHandler); return ok }},
		{StrategyHinted, func(h Handler) bool { _, ok := h.(*LineMergingHandler); return ok }},
		{StrategyCharacter, func(h Handler) bool { _, ok := h.(*CharacterHandler); return ok }},
	}

	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			h, err := NewHandler(tt.strategy)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(h) {
				t.Errorf("unexpected handler type %T", h)
			}
		})
	}
}

func TestNewHandler_Unknown(t *testing.T) {
	if _, err := NewHandler("columns"); err == nil {
		t.Error("Expected error for unknown strategy")
	}
}

func TestDocumentHandlers(t *testing.T) {
	var _ DocumentHandler = (*ParagraphHandler)(nil)
	var _ DocumentHandler = (*LineMergingHandler)(nil)

	h, err := NewHandler(StrategyCharacter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := h.(DocumentHandler); ok {
		t.Error("CharacterHandler should not build documents")
	}
}

func TestBuildOptions(t *testing.T) {
	o := buildOptions(nil)
	if o.logger == nil {
		t.Error("Expected a default logger")
	}
	if o.config != layout.DefaultConfig() {
		t.Errorf("Expected default config, got %+v", o.config)
	}
	if o.segmenter != nil {
		t.Errorf("Expected no segmenter override, got %T", o.segmenter)
	}

	config := layout.DefaultConfig()
	config.SplitFactor = 3
	o = buildOptions([]Option{WithConfig(config), WithLogger(nil), nil})
	if o.config.SplitFactor != 3 {
		t.Errorf("Expected split factor 3, got %.2f", o.config.SplitFactor)
	}
	if o.logger == nil {
		t.Error("WithLogger(nil) should keep the default logger")
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h, err := NewHandler(layout.StrategyStatistical, WithLogger(logger))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h.NextPage(pageWidth, pageHeight)
	h.AddPositions(makeRun("   ", 100, 10))
	h.AddPositions(makeRun("text", 100, 10))
	h.EndPage(pageWidth, pageHeight)

	out := buf.String()
	if !strings.Contains(out, "dropped blank run") {
		t.Errorf("Expected blank run record, got:\n%s", out)
	}
	if !strings.Contains(out, "page finished") || !strings.Contains(out, "paragraphs=1") {
		t.Errorf("Expected page record, got:\n%s", out)
	}
}
