package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"
)

// Store reads the products file and keeps the parsed list in memory,
// re-reading only when the file's mtime changes. The catalog is a
// read-only upstream: nothing in this process ever writes it.
type Store struct {
	path string

	mu       sync.RWMutex
	products []Product
	mtime    time.Time
	loaded   bool
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// load refreshes the cache if the file changed since the last read.
// A missing file is an empty catalog, not an error; an unreadable or
// unparseable file propagates.
func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.products = nil
		s.mtime = time.Time{}
		s.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat products file: %w", err)
	}

	if s.loaded && st.ModTime().Equal(s.mtime) {
		return nil
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read products file: %w", err)
	}

	var products []Product
	if len(strings.TrimSpace(string(b))) > 0 {
		if err := json.Unmarshal(b, &products); err != nil {
			return fmt.Errorf("parse products file: %w", err)
		}
	}

	s.products = products
	s.mtime = st.ModTime()
	s.loaded = true
	return nil
}

// All returns the current product list.
func (s *Store) All() ([]Product, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// Section returns the products whose section matches, case-insensitively.
func (s *Store) Section(section string) ([]Product, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	section = strings.ToLower(strings.TrimSpace(section))
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if strings.ToLower(p.Section) == section {
			out = append(out, p)
		}
	}
	return out, nil
}

// BySlug finds the product whose slugified name matches slug.
func (s *Store) BySlug(slug string) (Product, bool, error) {
	all, err := s.All()
	if err != nil {
		return Product{}, false, err
	}
	for _, p := range all {
		if p.Slug() == slug {
			return p, true, nil
		}
	}
	return Product{}, false, nil
}

// Exists reports whether productID matches any product's effective id.
func (s *Store) Exists(productID string) (bool, error) {
	all, err := s.All()
	if err != nil {
		return false, err
	}
	for _, p := range all {
		if p.EffectiveID() == productID {
			return true, nil
		}
	}
	return false, nil
}
