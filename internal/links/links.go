// Package links loads and caches the external-link document rendered by the
// presentation layer (social profiles, contact entries, site metadata).
package links

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/marovec/folio/internal/storage"
)

// Entry is one named link inside a category. Only URL and Display are
// expected; the rest is optional and checked by callers.
type Entry struct {
	URL      string `json:"url"`
	Display  string `json:"display"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
}

// Document maps category names ("social", "contact", ...) to named entries.
// No schema is enforced beyond the entry shape.
type Document map[string]map[string]Entry

// Category returns the named category, or an empty mapping when absent, so
// callers can range without nil checks.
func (d Document) Category(name string) map[string]Entry {
	if m, ok := d[name]; ok && m != nil {
		return m
	}
	return map[string]Entry{}
}

// emptyDocument is the degraded shape returned when the resource cannot be
// fetched or decoded. Missing categories render as nothing, not as errors.
func emptyDocument() Document {
	return Document{"social": {}, "metadata": {}}
}

// Store fetches the link document once per process lifetime and memoizes the
// result, including the degraded fallback.
type Store struct {
	store  storage.Provider
	path   string
	logger *slog.Logger

	mu    sync.RWMutex
	doc   Document
	group singleflight.Group
}

// NewStore creates a Store reading path (relative to the content root).
func NewStore(store storage.Provider, path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{store: store, path: path, logger: logger}
}

// Load returns the cached link document, fetching it on first use. Fetch or
// decode failures degrade to the minimal empty shape and are logged at
// warning level; Load never fails. The fetch runs detached from the caller's
// cancellation, so an aborted first request cannot cache the degraded shape.
func (s *Store) Load(ctx context.Context) Document {
	s.mu.RLock()
	doc := s.doc
	s.mu.RUnlock()
	if doc != nil {
		return doc
	}

	v, _, _ := s.group.Do("load", func() (any, error) {
		s.mu.RLock()
		cached := s.doc
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}
		loaded := s.fetch()
		s.mu.Lock()
		s.doc = loaded
		s.mu.Unlock()
		return loaded, nil
	})
	return v.(Document)
}

func (s *Store) fetch() Document {
	data, err := s.store.Read(s.path)
	if err != nil {
		s.logger.Warn("links: read failed",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return emptyDocument()
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("links: decode failed",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return emptyDocument()
	}
	if doc == nil {
		return emptyDocument()
	}
	return doc
}

// Reset drops the cached document so the next Load re-fetches it.
func (s *Store) Reset() {
	s.mu.Lock()
	s.doc = nil
	s.mu.Unlock()
}
