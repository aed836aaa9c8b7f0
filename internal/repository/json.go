package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/eraschle/railnorm/internal/element"
)

// JSONRepository keeps a project's elements in memory and persists them
// to a single JSON file holding an array of element dicts.
type JSONRepository struct {
	path   string
	logger *slog.Logger

	mu    sync.RWMutex
	order []string
	byID  map[string]*element.Element
	dirty bool
}

// NewJSONRepository opens a repository at the given path, loading the
// existing file when present. A missing file is an empty repository.
func NewJSONRepository(path string, logger *slog.Logger) (*JSONRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &JSONRepository{
		path:   path,
		logger: logger,
		byID:   make(map[string]*element.Element),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JSONRepository) load() error {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("repository: reading %s: %w", r.path, err)
	}

	var dicts []map[string]any
	if err := json.Unmarshal(raw, &dicts); err != nil {
		return fmt.Errorf("repository: decoding %s: %w", r.path, err)
	}
	for _, dict := range dicts {
		e, err := element.FromDict(dict)
		if err != nil {
			return fmt.Errorf("repository: %s: %w", r.path, err)
		}
		r.order = append(r.order, e.ID())
		r.byID[e.ID()] = e
	}
	r.logger.Debug("repository loaded", "path", r.path, "elements", len(r.order))
	return nil
}

// Save inserts or replaces an element by identity.
func (r *JSONRepository) Save(_ context.Context, e *element.Element) error {
	if e == nil || e.ID() == "" {
		return fmt.Errorf("repository: element without identity")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[e.ID()]; !exists {
		r.order = append(r.order, e.ID())
	}
	r.byID[e.ID()] = e
	r.dirty = true
	return nil
}

// Get retrieves a single element by identity.
func (r *JSONRepository) Get(_ context.Context, id string) (*element.Element, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("repository: %s: %w", id, ErrNotFound)
	}
	return e, nil
}

// List returns all elements in insertion order, optionally filtered by
// kind.
func (r *JSONRepository) List(_ context.Context, kinds ...element.Kind) ([]*element.Element, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*element.Element
	for _, id := range r.order {
		e := r.byID[id]
		if len(kinds) == 0 {
			out = append(out, e)
			continue
		}
		for _, k := range kinds {
			if e.Kind() == k {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

// Delete removes an element by identity.
func (r *JSONRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("repository: %s: %w", id, ErrNotFound)
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.dirty = true
	return nil
}

// Flush writes the repository file when there are pending changes.
func (r *JSONRepository) Flush(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.dirty {
		return nil
	}

	dicts := make([]map[string]any, 0, len(r.order))
	for _, id := range r.order {
		dicts = append(dicts, r.byID[id].ToDict())
	}
	raw, err := json.MarshalIndent(dicts, "", "  ")
	if err != nil {
		return fmt.Errorf("repository: encoding: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("repository: creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("repository: writing %s: %w", r.path, err)
	}
	r.dirty = false
	r.logger.Debug("repository flushed", "path", r.path, "elements", len(dicts))
	return nil
}
