// Package layout reconstructs lines and paragraphs from positioned glyphs.
//
// Glyph runs are turned into [Line] records by [AssembleLine]. Once a page is
// complete, a [Segmenter] partitions its lines into paragraphs:
//
//	var lines []layout.Line
//	for _, run := range runs {
//	    if line, ok := layout.AssembleLine(run); ok {
//	        lines = append(lines, line)
//	    }
//	}
//	paragraphs := layout.NewStatisticalSegmenter().Segment(lines)
//
// # Segmenters
//
// Two heuristics are provided:
//
//   - [StatisticalSegmenter] - compares each line gap with the page's minimum
//     line spacing, see [MinLineSpacing]
//   - [AdaptiveSegmenter] - compares each line gap with a threshold derived
//     from the heights of the two lines involved, see [AdaptiveThreshold]
//
// The statistical variant suits pages set in one body size. The adaptive one
// copes better with pages mixing headings and body text, where a single
// page-wide spacing figure misfires.
//
// # Configuration
//
//	config := layout.DefaultConfig()
//	config.SplitFactor = 1.8
//	segmenter := layout.NewStatisticalSegmenterWithConfig(config)
package layout
