// Package export downloads transaction data as CSV from the service.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/pennyflow/pennyflow/internal/api"
)

// Options controls a CSV export run.
type Options struct {
	// OutputPath is where the CSV lands. Empty means stdout.
	OutputPath string
	// Range optionally restricts the export window.
	Range api.DateRange
	// Progress draws a download bar on stderr. Ignored when writing to
	// stdout so the bar never corrupts piped output.
	Progress bool
}

// Run downloads the export and writes it to the configured destination.
// It returns the number of bytes written.
func Run(ctx context.Context, client *api.Client, opts Options) (int64, error) {
	var out io.Writer = os.Stdout
	toFile := opts.OutputPath != ""
	if toFile {
		f, err := os.Create(opts.OutputPath)
		if err != nil {
			return 0, fmt.Errorf("creating output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				slog.Warn("closing export file", "path", opts.OutputPath, "error", cerr)
			}
		}()
		out = f
	}

	counter := &countingWriter{w: out}

	var bar *progressbar.ProgressBar
	onStart := func(contentLength int64) {
		if !opts.Progress || !toFile {
			return
		}
		bar = progressbar.NewOptions64(contentLength,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Downloading export..."),
			progressbar.OptionClearOnFinish(),
		)
	}

	// The bar is created once the response headers arrive, so route writes
	// through a late-bound multiwriter.
	dest := writerFunc(func(p []byte) (int, error) {
		n, err := counter.Write(p)
		if bar != nil {
			_, _ = bar.Write(p[:n])
		}
		return n, err
	})

	if err := client.Export(ctx, opts.Range, dest, onStart); err != nil {
		return counter.n, fmt.Errorf("downloading export: %w", err)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	slog.Info("export complete", "bytes", counter.n, "output", destName(opts.OutputPath))
	return counter.n, nil
}

func destName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
