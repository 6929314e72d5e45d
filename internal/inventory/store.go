package inventory

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"romix/internal/catalog"
)

// Catalog is the read-only product source the store validates and seeds
// against.
type Catalog interface {
	Exists(productID string) (bool, error)
	All() ([]catalog.Product, error)
}

// Store is the authoritative in-memory variant map. One mutex guards the
// map for the full span of every operation; a reservation's validate,
// commit and persist steps all run inside a single critical section, so
// reservations are strictly serialized.
type Store struct {
	snap    Snapshot
	catalog Catalog
	log     *zap.Logger

	mu       sync.Mutex
	variants map[Key]*Variant
}

func NewStore(snap Snapshot, cat Catalog, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{snap: snap, catalog: cat, log: log}
}

// Load populates the store from the snapshot, seeding from the catalog
// (and persisting the seed) when no snapshot exists. With force=false a
// populated store is left as is. Loading is explicit: read and reserve
// operations never trigger it as a side effect.
func (s *Store) Load(force bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(force)
}

// Reload discards the in-memory map and re-reads the snapshot.
func (s *Store) Reload() error {
	return s.Load(true)
}

func (s *Store) loadLocked(force bool) error {
	if s.variants != nil && !force {
		return nil
	}

	records, ok, err := s.snap.Read()
	if err != nil {
		return err
	}
	if !ok {
		products, err := s.catalog.All()
		if err != nil {
			return fmt.Errorf("load catalog for seeding: %w", err)
		}
		records = Seed(products)
		if err := s.snap.Write(records); err != nil {
			return fmt.Errorf("persist seeded variants: %w", err)
		}
		s.log.Info("seeded variants from catalog", zap.Int("variants", len(records)))
	}

	m := make(map[Key]*Variant, len(records))
	for _, v := range records {
		key := v.Key()
		if key.ProductID == "" {
			s.log.Warn("skipping variant with empty product_id", zap.String("id", v.ID))
			continue
		}
		if v.Stock < 0 {
			v.Stock = 0
		}
		if strings.TrimSpace(v.ID) == "" {
			v.ID = key.ProductID + "-" + key.Color + "-" + key.Size
		}
		rec := v
		m[key] = &rec
	}
	s.variants = m
	return nil
}

// Get looks up a variant by its display identifiers.
func (s *Store) Get(productID, color, size string) (Variant, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.variants == nil {
		return Variant{}, false, errNotLoaded
	}
	v, ok := s.variants[KeyFor(productID, color, size)]
	if !ok {
		return Variant{}, false, nil
	}
	return *v, true, nil
}

// List returns a copy of every current variant, order unspecified.
func (s *Store) List() ([]Variant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.variants == nil {
		return nil, errNotLoaded
	}
	out := make([]Variant, 0, len(s.variants))
	for _, v := range s.variants {
		out = append(out, *v)
	}
	return out, nil
}

// persistLocked writes the full record set through the snapshot port.
// Callers must hold s.mu.
func (s *Store) persistLocked() error {
	out := make([]Variant, 0, len(s.variants))
	for _, v := range s.variants {
		out = append(out, *v)
	}
	return s.snap.Write(out)
}
