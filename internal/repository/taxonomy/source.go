// Package taxonomy loads the classification catalog from YAML: the copy
// embedded in the binary, or an operator-supplied file that can be watched
// and reloaded without a restart.
package taxonomy

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/browse/internal/domain"
	domtax "github.com/kailas-cloud/browse/internal/domain/taxonomy"
)

//go:embed data/taxonomy.yaml
var embeddedCatalog []byte

// Source serves the current catalog. Reloads swap the whole snapshot, so a
// reader never sees a half-applied file.
type Source struct {
	path    string
	current atomic.Pointer[domtax.Catalog]
	logger  *zap.Logger
}

// New loads the catalog from path, or the embedded catalog when path is empty.
func New(path string, logger *zap.Logger) (*Source, error) {
	s := &Source{path: path, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Catalog returns the loaded catalog.
func (s *Source) Catalog(_ context.Context) (domtax.Catalog, error) {
	c := s.current.Load()
	if c == nil || c.IsEmpty() {
		return domtax.Catalog{}, domain.ErrTaxonomyUnavailable
	}
	return *c, nil
}

// Reload re-reads the source. On error the previous catalog stays in place.
func (s *Source) Reload() error {
	data := embeddedCatalog
	if s.path != "" {
		var err error
		data, err = os.ReadFile(filepath.Clean(s.path))
		if err != nil {
			return fmt.Errorf("read taxonomy %s: %w", s.path, err)
		}
	}

	c, err := Parse(data)
	if err != nil {
		return err
	}
	s.current.Store(&c)
	return nil
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (domtax.Catalog, error) {
	var dto catalogDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return domtax.Catalog{}, fmt.Errorf("parse taxonomy: %w", err)
	}
	if len(dto.Groups) == 0 {
		return domtax.Catalog{}, fmt.Errorf("%w: no groups defined", domain.ErrInvalidTaxonomy)
	}
	return dto.toDomain()
}

// Watch reloads the catalog whenever its file changes, until ctx is done.
// It returns immediately for the embedded catalog. The parent directory is
// watched so that atomic replace-by-rename is picked up.
func (s *Source) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	target := filepath.Clean(s.path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				s.logger.Warn("Taxonomy reload failed, keeping previous catalog",
					zap.String("path", s.path), zap.Error(err))
				continue
			}
			s.logger.Info("Taxonomy reloaded", zap.String("path", s.path))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				_ = s.Reload()
			}
			s.logger.Warn("Taxonomy watcher error", zap.Error(err))
		}
	}
}
