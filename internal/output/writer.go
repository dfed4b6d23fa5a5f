// Package output persists rendered artifacts to their target paths. It never
// overwrites an existing file unless explicitly forced, so re-running the
// generator cannot clobber edited output by accident.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrExists signals that a target file already exists and Force was not set.
var ErrExists = errors.New("output: file already exists")

// Options configures the Writer.
type Options struct {
	// Force allows overwriting existing files.
	Force bool
}

// Writer writes artifact files relative to the working directory.
type Writer struct {
	force bool
}

// New constructs a Writer.
func New(options Options) *Writer {
	return &Writer{force: options.Force}
}

// Target describes one file to write.
type Target struct {
	Dir     string
	Name    string
	Content []byte
}

// Path returns the joined target path.
func (t Target) Path() string {
	return filepath.Join(t.Dir, t.Name)
}

// Write persists a single target, creating its directory when missing. It
// returns the written path, or ErrExists (wrapped) when the file is already
// present and the writer is not forced.
func (w *Writer) Write(target Target) (string, error) {
	if target.Name == "" {
		return "", errors.New("output: target name is required")
	}

	path := target.Path()
	if !w.force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%w: %s", ErrExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("output: stat %s: %w", path, err)
		}
	}

	if target.Dir != "" {
		if err := os.MkdirAll(target.Dir, 0o755); err != nil {
			return "", fmt.Errorf("output: create dir %s: %w", target.Dir, err)
		}
	}

	if err := os.WriteFile(path, target.Content, 0o644); err != nil {
		return "", fmt.Errorf("output: write %s: %w", path, err)
	}
	return path, nil
}

// WriteAll persists every target, stopping at the first failure. Existence
// checks run up front so a partial write never happens because of a
// collision later in the list.
func (w *Writer) WriteAll(targets []Target) ([]string, error) {
	if !w.force {
		for _, target := range targets {
			if _, err := os.Stat(target.Path()); err == nil {
				return nil, fmt.Errorf("%w: %s", ErrExists, target.Path())
			}
		}
	}

	paths := make([]string, 0, len(targets))
	for _, target := range targets {
		path, err := w.Write(target)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
