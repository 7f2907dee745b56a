package layout

import (
	"fmt"

	"github.com/tsawler/linepara/model"
	"github.com/tsawler/linepara/text"
)

// Segmenter names accepted by SegmenterFor
const (
	StrategyStatistical = "statistical"
	StrategyAdaptive    = "adaptive"
)

// Config holds thresholds for paragraph segmentation
type Config struct {
	// SplitFactor is the multiple of the page's minimum line spacing a gap
	// must exceed to start a new paragraph (default: 1.65, i.e. 1.5 with
	// 10% leeway)
	SplitFactor float64

	// SpacingPercentile is the rank used to pick the page's minimum line
	// spacing from the sorted positive gaps (default: 0.15)
	SpacingPercentile float64

	// MinLineHeight is the smallest line height assumed by the adaptive
	// threshold (default: 4 points)
	MinLineHeight float64

	// AdaptiveFactor multiplies the tallest line height to give the adaptive
	// threshold (default: 2)
	AdaptiveFactor float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		SplitFactor:       1.65,
		SpacingPercentile: DefaultSpacingPercentile,
		MinLineHeight:     4.0,
		AdaptiveFactor:    2.0,
	}
}

// Segmenter partitions a finished page's lines into paragraphs
type Segmenter interface {
	Segment(lines []Line) []model.Paragraph
}

// SegmenterFor returns the segmenter registered under name
func SegmenterFor(name string, config Config) (Segmenter, error) {
	switch name {
	case StrategyStatistical, "":
		return NewStatisticalSegmenterWithConfig(config), nil
	case StrategyAdaptive:
		return NewAdaptiveSegmenterWithConfig(config), nil
	default:
		return nil, fmt.Errorf("unknown segmentation strategy %q", name)
	}
}

// IsParagraphSplit reports whether curr starts a new paragraph after last.
//
// The spacing must exceed factor times the page's minimum line spacing, and
// it must also exceed the current line's height. The second condition keeps
// one physical line that the renderer split into two fragments together.
func IsParagraphSplit(curr, last Line, minLineSpacing, factor float64) bool {
	spacing := LineDistance(curr, last)
	return spacing > factor*minLineSpacing && spacing > curr.Height()
}

// AdaptiveThreshold returns the split/merge distance for a pair of lines:
// the tallest of the two line heights and config.MinLineHeight, times
// config.AdaptiveFactor
func AdaptiveThreshold(curr, last Line, config Config) float64 {
	height := curr.Height()
	if last.Height() > height {
		height = last.Height()
	}
	if config.MinLineHeight > height {
		height = config.MinLineHeight
	}
	return height * config.AdaptiveFactor
}

// StatisticalSegmenter splits paragraphs where a line gap is markedly larger
// than the page's minimum line spacing
type StatisticalSegmenter struct {
	config Config
}

// NewStatisticalSegmenter creates a segmenter with default configuration
func NewStatisticalSegmenter() *StatisticalSegmenter {
	return &StatisticalSegmenter{
		config: DefaultConfig(),
	}
}

// NewStatisticalSegmenterWithConfig creates a segmenter with custom configuration
func NewStatisticalSegmenterWithConfig(config Config) *StatisticalSegmenter {
	return &StatisticalSegmenter{
		config: config,
	}
}

// Segment groups lines into paragraphs
func (s *StatisticalSegmenter) Segment(lines []Line) []model.Paragraph {
	minLineSpacing := MinLineSpacing(lines, s.config.SpacingPercentile)
	return segment(lines, func(curr, last Line) bool {
		return IsParagraphSplit(curr, last, minLineSpacing, s.config.SplitFactor)
	})
}

// AdaptiveSegmenter splits paragraphs where a line gap exceeds a threshold
// derived from the heights of the two lines around it
type AdaptiveSegmenter struct {
	config Config
}

// NewAdaptiveSegmenter creates a segmenter with default configuration
func NewAdaptiveSegmenter() *AdaptiveSegmenter {
	return &AdaptiveSegmenter{
		config: DefaultConfig(),
	}
}

// NewAdaptiveSegmenterWithConfig creates a segmenter with custom configuration
func NewAdaptiveSegmenterWithConfig(config Config) *AdaptiveSegmenter {
	return &AdaptiveSegmenter{
		config: config,
	}
}

// Segment groups lines into paragraphs
func (s *AdaptiveSegmenter) Segment(lines []Line) []model.Paragraph {
	return segment(lines, func(curr, last Line) bool {
		return LineDistance(curr, last) > AdaptiveThreshold(curr, last, s.config)
	})
}

// segment walks lines in order, joining each to the current paragraph with a
// synthetic space unless split reports a paragraph break
func segment(lines []Line, split func(curr, last Line) bool) []model.Paragraph {
	switch len(lines) {
	case 0:
		return []model.Paragraph{}
	case 1:
		return []model.Paragraph{model.NewParagraph(lines[0].Glyphs)}
	}

	var paragraphs []model.Paragraph
	current := make([]model.Glyph, 0, len(lines[0].Glyphs))
	current = append(current, lines[0].Glyphs...)

	for i := 1; i < len(lines); i++ {
		if split(lines[i], lines[i-1]) {
			paragraphs = append(paragraphs, model.NewParagraph(current))
			current = current[:0]
		}

		current = text.AppendControl(current, text.Space)
		current = append(current, lines[i].Glyphs...)
	}

	return append(paragraphs, model.NewParagraph(current))
}
