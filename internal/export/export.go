package export

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/periodic/pkg/core"
)

// Options configures Export.
type Options struct {
	Format Format
	// Dir is the output directory; "" means the working directory.
	Dir string
	// FileName overrides Format.DefaultFileName().
	FileName string
	// GroupName is shown as a subtitle by the Markdown overview.
	GroupName string
	Logger    *slog.Logger
}

// Result describes a written artifact.
type Result struct {
	Format Format `json:"format"`
	Path   string `json:"path"`
	Count  int    `json:"count"`
}

// Export writes elements as a single artifact and returns where it went.
// The artifact is replaced atomically: on any error no file is created and an
// existing artifact at the same path is left untouched.
func Export(elements []core.Element, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	name := opts.FileName
	if name == "" {
		name = opts.Format.DefaultFileName()
	}
	path := name
	if opts.Dir != "" && !filepath.IsAbs(name) {
		path = filepath.Join(opts.Dir, name)
	}

	var write func(io.Writer) error
	switch opts.Format {
	case FormatHTML:
		write = func(w io.Writer) error { return Tabular(w, elements) }
	case FormatJSON:
		write = func(w io.Writer) error { return Structured(w, elements) }
	case FormatMarkdown:
		write = func(w io.Writer) error { return Document(w, elements, opts.GroupName) }
	default:
		return Result{}, fmt.Errorf("unknown export format %q", opts.Format)
	}

	if err := WriteFile(path, write); err != nil {
		return Result{}, err
	}

	logger.Debug("artifact written",
		slog.String("format", string(opts.Format)),
		slog.String("path", path),
		slog.Int("elements", len(elements)),
	)

	return Result{Format: opts.Format, Path: path, Count: len(elements)}, nil
}

// WriteFile streams write's output into a temporary file next to path and
// renames it into place once everything has been written and synced.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create artifact: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close artifact: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set artifact permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move artifact into place: %w", err)
	}
	return nil
}
