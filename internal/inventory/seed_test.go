package inventory

import (
	"testing"

	"romix/internal/catalog"
)

func TestSeedDefaultsColorAndSize(t *testing.T) {
	variants := Seed([]catalog.Product{{ID: "p1", Name: "Remera"}})

	if len(variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(variants))
	}
	v := variants[0]
	if v.Color != "Unico" || v.Size != "U" {
		t.Errorf("expected defaults Unico/U, got %s/%s", v.Color, v.Size)
	}
	if v.Stock != 5 {
		t.Errorf("expected default stock 5, got %d", v.Stock)
	}
	if v.ID != "p1-unico-u" {
		t.Errorf("expected id p1-unico-u, got %s", v.ID)
	}
	if v.ProductID != "p1" {
		t.Errorf("expected product_id p1, got %s", v.ProductID)
	}
}

func TestSeedCrossProduct(t *testing.T) {
	variants := Seed([]catalog.Product{{
		ID:     "p1",
		Name:   "Remera",
		Colors: []catalog.Color{{Name: "Lila"}, {Name: "Negro"}},
		Sizes:  []catalog.Size{{Size: "S"}, {Size: "M"}, {Size: "L"}},
	}})

	if len(variants) != 6 {
		t.Fatalf("expected 6 variants, got %d", len(variants))
	}
}

func TestSeedStockFromStatus(t *testing.T) {
	cases := []struct {
		status string
		want   int
	}{
		{"available", 5},
		{"", 5},
		{"in stock", 5},
		{"low", 2},
		{"Low stock", 2},
		{"out of stock", 0},
		{"sold_out", 0},
		{"Unavailable", 0},
		{"UNAVAIL", 0},
	}
	for _, c := range cases {
		variants := Seed([]catalog.Product{{
			ID:    "p1",
			Name:  "Remera",
			Sizes: []catalog.Size{{Size: "M", Status: c.status}},
		}})
		if got := variants[0].Stock; got != c.want {
			t.Errorf("status %q: stock = %d, want %d", c.status, got, c.want)
		}
	}
}

func TestSeedIDFromSlugifiedName(t *testing.T) {
	variants := Seed([]catalog.Product{{
		Name:   "Campera Puffer",
		Colors: []catalog.Color{{Name: "Único"}},
		Sizes:  []catalog.Size{{Size: "Talle 2"}},
	}})

	if len(variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(variants))
	}
	if variants[0].ProductID != "campera-puffer" {
		t.Errorf("expected product_id campera-puffer, got %s", variants[0].ProductID)
	}
	if variants[0].ID != "campera-puffer-unico-talle-2" {
		t.Errorf("unexpected id %s", variants[0].ID)
	}
}
