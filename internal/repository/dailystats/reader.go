// Package dailystats reads the legacy flat statistics file written by the
// nightly job. Only the first line is of interest:
//
//	total_papers 2456789
package dailystats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/kailas-cloud/browse/internal/domain"
	"github.com/kailas-cloud/browse/internal/domain/count"
)

// totalPapersRe is anchored at the start of the content, so a matching line
// further down the file does not count. The separator accepts any Unicode
// whitespace (NBSP, ideographic space, ...), not just ASCII \s.
var totalPapersRe = regexp.MustCompile(`^total_papers[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]+(?P<count>[0-9]+)`)

// ErrFileNotFound signals an unset path or a path that is not a regular file.
var ErrFileNotFound = fmt.Errorf("daily stats file: %w", domain.ErrNotFound)

// Reader resolves the document count from the daily stats file.
type Reader struct {
	path string
}

// New creates a Reader. An empty path disables the file and every lookup
// reports NotFound.
func New(path string) *Reader {
	return &Reader{path: path}
}

// Path returns the configured file path.
func (r *Reader) Path() string { return r.path }

// Lookup reads the file and parses its first line.
//
// Unset path, missing file or a directory → NotFound(ErrFileNotFound).
// Unmatched content → NotFound(nil). Any other I/O error → Failed.
func (r *Reader) Lookup(_ context.Context) count.Result {
	data, err := r.read()
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			return count.NotFound(err)
		}
		return count.Failed(err)
	}
	return Parse(data)
}

// Available reports whether the file exists and is readable.
func (r *Reader) Available(_ context.Context) error {
	f, err := r.open()
	if err != nil {
		return err
	}
	return f.Close()
}

// Parse extracts the total from file content.
func Parse(data []byte) count.Result {
	m := totalPapersRe.FindSubmatch(data)
	if m == nil {
		return count.NotFound(nil)
	}
	raw := m[totalPapersRe.SubexpIndex("count")]
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return count.Failed(fmt.Errorf("parse total_papers %q: %w", raw, err))
	}
	return count.Found(n)
}

func (r *Reader) read() ([]byte, error) {
	f, err := r.open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read daily stats %s: %w", r.path, err)
	}
	return data, nil
}

func (r *Reader) open() (*os.File, error) {
	if r.path == "" {
		return nil, ErrFileNotFound
	}

	info, err := os.Stat(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, r.path)
		}
		return nil, fmt.Errorf("stat daily stats %s: %w", r.path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrFileNotFound, r.path)
	}

	f, err := os.Open(filepath.Clean(r.path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, r.path)
		}
		return nil, fmt.Errorf("open daily stats %s: %w", r.path, err)
	}
	return f, nil
}
