package linepara

import (
	"io"
	"log/slog"

	"github.com/tsawler/linepara/layout"
)

// Options holds configuration shared by the handler variants.
type Options struct {
	// Logger receives debug records about dropped runs and page finalization
	logger *slog.Logger

	// Segmentation thresholds
	config layout.Config

	// segmenter overrides the strategy-selected segmenter when non-nil
	segmenter layout.Segmenter
}

// Option configures a handler.
type Option func(*Options)

// defaultOptions returns the default handler options.
func defaultOptions() Options {
	return Options{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		config:    layout.DefaultConfig(),
		segmenter: nil, // nil means chosen by strategy
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConfig sets the segmentation thresholds.
func WithConfig(config layout.Config) Option {
	return func(o *Options) {
		o.config = config
	}
}

// WithSegmenter sets the segmenter used by ParagraphHandler, replacing the
// one selected by strategy name.
func WithSegmenter(segmenter layout.Segmenter) Option {
	return func(o *Options) {
		o.segmenter = segmenter
	}
}
