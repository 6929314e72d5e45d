package inventory

import (
	"testing"

	"go.uber.org/zap"

	"romix/internal/catalog"
)

// memSnapshot is an in-memory Snapshot so engine tests run without disk.
type memSnapshot struct {
	data     []Variant
	exists   bool
	writes   int
	readErr  error
	writeErr error
}

func (m *memSnapshot) Read() ([]Variant, bool, error) {
	if m.readErr != nil {
		return nil, false, m.readErr
	}
	out := make([]Variant, len(m.data))
	copy(out, m.data)
	return out, m.exists, nil
}

func (m *memSnapshot) Write(vs []Variant) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data = make([]Variant, len(vs))
	copy(m.data, vs)
	m.exists = true
	m.writes++
	return nil
}

type fakeCatalog struct {
	products []catalog.Product
}

func (f *fakeCatalog) Exists(id string) (bool, error) {
	for _, p := range f.products {
		if p.EffectiveID() == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCatalog) All() ([]catalog.Product, error) {
	return f.products, nil
}

func newTestStore(t *testing.T, snap *memSnapshot, cat *fakeCatalog) *Store {
	t.Helper()
	s := NewStore(snap, cat, zap.NewNop())
	if err := s.Load(false); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

// one product p1 with one variant (Lila, M) at the given stock.
func lilaFixture(stock int) (*memSnapshot, *fakeCatalog) {
	snap := &memSnapshot{
		data: []Variant{
			{ID: "p1-lila-m", ProductID: "p1", Color: "Lila", Size: "M", Stock: stock},
		},
		exists: true,
	}
	cat := &fakeCatalog{products: []catalog.Product{{ID: "p1", Name: "Remera Lila"}}}
	return snap, cat
}

func mustStock(t *testing.T, s *Store, productID, color, size string) int {
	t.Helper()
	v, ok, err := s.Get(productID, color, size)
	if err != nil {
		t.Fatalf("Get(%s, %s, %s): %v", productID, color, size, err)
	}
	if !ok {
		t.Fatalf("Get(%s, %s, %s): not found", productID, color, size)
	}
	return v.Stock
}
