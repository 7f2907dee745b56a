// Command linepara replays recorded decoder events and prints the rebuilt
// paragraphs.
//
// Usage:
//
//	linepara [-config linepara.yaml] [-strategy name] [-format text|json] [-v] events.jsonl...
//
// Events are read from standard input when no files are given.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tsawler/linepara"
	"github.com/tsawler/linepara/config"
	"github.com/tsawler/linepara/model"
	"github.com/tsawler/linepara/stream"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// paragraphOutput is one paragraph in JSON output
type paragraphOutput struct {
	Text  string      `json:"text"`
	Words int         `json:"words"`
	BBox  *model.BBox `json:"bbox,omitempty"`
}

// pageOutput is one page in JSON output
type pageOutput struct {
	Number     int               `json:"number"`
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	Rotation   int               `json:"rotation,omitempty"`
	Paragraphs []paragraphOutput `json:"paragraphs,omitempty"`
	Text       string            `json:"text,omitempty"`
}

// documentOutput is one replayed document in JSON output
type documentOutput struct {
	Source string       `json:"source"`
	Pages  []pageOutput `json:"pages"`
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("linepara", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "YAML config file")
	strategy := flags.String("strategy", "", "handler strategy: statistical, adaptive, hinted, character")
	format := flags.String("format", "text", "output format: text or json")
	verbose := flags.Bool("v", false, "enable debug logging")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: linepara [options] [events.jsonl...]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if *format != "text" && *format != "json" {
		fmt.Fprintf(stderr, "Error: unknown format %q\n", *format)
		return 1
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
	}
	if *strategy != "" {
		cfg.Strategy = *strategy
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	names := flags.Args()
	var sources []stream.Source
	if len(names) == 0 {
		names = []string{"-"}
		sources = []stream.Source{stream.ReaderSource(stdin)}
	} else {
		for _, name := range names {
			sources = append(sources, stream.FileSource(name))
		}
	}

	newHandler := func() (linepara.Handler, error) {
		return cfg.NewHandler(logger)
	}
	handlers, err := stream.ReplayAll(ctx, sources, newHandler, cfg.Workers)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger.Debug("replay finished", "documents", len(handlers), "strategy", cfg.Strategy)

	for i, h := range handlers {
		var err error
		if *format == "json" {
			err = json.NewEncoder(stdout).Encode(documentOutput{Source: names[i], Pages: pagesOf(h)})
		} else {
			if len(handlers) > 1 {
				fmt.Fprintf(stdout, "==> %s <==\n", names[i])
			}
			err = writeText(stdout, pagesOf(h))
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return 1
		}
	}

	return 0
}

// pagesOf collects the finished pages of any handler variant
func pagesOf(h linepara.Handler) []pageOutput {
	switch h := h.(type) {
	case linepara.DocumentHandler:
		return documentPages(h.Document())
	case *linepara.CharacterHandler:
		pages := make([]pageOutput, h.PageCount())
		for i := range pages {
			pages[i] = pageOutput{Number: i + 1, Text: h.Text(i + 1)}
		}
		if len(pages) > 0 {
			last := &pages[len(pages)-1]
			last.Width, last.Height = h.PageWidth(), h.PageHeight()
		}
		return pages
	}
	return nil
}

func documentPages(doc *model.Document) []pageOutput {
	var pages []pageOutput
	for _, page := range doc.Pages() {
		out := pageOutput{
			Number:   page.Number,
			Width:    page.Width,
			Height:   page.Height,
			Rotation: page.Rotation,
		}
		for i := range page.Paragraphs {
			para := &page.Paragraphs[i]
			p := paragraphOutput{Text: para.Text(), Words: para.WordCount()}
			if box := para.BBox(); !box.IsEmpty() {
				p.BBox = &box
			}
			out.Paragraphs = append(out.Paragraphs, p)
		}
		pages = append(pages, out)
	}
	return pages
}

func writeText(w io.Writer, pages []pageOutput) error {
	for _, page := range pages {
		if _, err := fmt.Fprintf(w, "--- page %d ---\n", page.Number); err != nil {
			return err
		}
		if page.Text != "" {
			if _, err := fmt.Fprintln(w, page.Text); err != nil {
				return err
			}
			continue
		}
		for i, para := range page.Paragraphs {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, para.Text); err != nil {
				return err
			}
		}
	}
	return nil
}
