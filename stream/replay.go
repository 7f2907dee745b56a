package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/linepara"
)

// Replay decodes every event from r and applies it to h in order. It stops
// early when ctx is cancelled.
func Replay(ctx context.Context, r io.Reader, h linepara.Handler) error {
	dec := NewDecoder(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		event, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := event.Apply(h); err != nil {
			return err
		}
	}
}

// Source opens one recorded document.
type Source func() (io.ReadCloser, error)

// FileSource returns a Source reading the named file.
func FileSource(path string) Source {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

// ReaderSource returns a Source reading r. Closing it is a no-op.
func ReaderSource(r io.Reader) Source {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(r), nil
	}
}

// ReplayAll replays independent documents concurrently, each into its own
// handler from newHandler. At most workers documents run at once; workers
// <= 0 means no limit. Handlers are returned in the order of sources. The
// first error cancels the remaining replays.
func ReplayAll(ctx context.Context, sources []Source, newHandler func() (linepara.Handler, error), workers int) ([]linepara.Handler, error) {
	handlers := make([]linepara.Handler, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, source := range sources {
		i, source := i, source
		g.Go(func() error {
			h, err := newHandler()
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}

			r, err := source()
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			defer r.Close()

			if err := Replay(ctx, r, h); err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			handlers[i] = h
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return handlers, nil
}
