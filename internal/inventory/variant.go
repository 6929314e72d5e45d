// Package inventory owns the per-variant stock counts: the keyed variant
// store, its snapshot persistence, seeding from the catalog, and the
// all-or-nothing reservation applied when an order is placed.
package inventory

import (
	"strings"

	"romix/internal/textkey"
)

// Variant is one sellable combination of product, color and size.
// The JSON tags are the snapshot file format.
type Variant struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Stock     int    `json:"stock"`
}

// Key identifies a variant for lookup. ProductID is compared verbatim
// (trimmed); Color and Size are normalized so that catalog spelling
// variations ("Lila", "LILA", "líla") resolve to the same record.
type Key struct {
	ProductID string
	Color     string
	Size      string
}

func KeyFor(productID, color, size string) Key {
	return Key{
		ProductID: strings.TrimSpace(productID),
		Color:     textkey.Normalize(color),
		Size:      textkey.Normalize(size),
	}
}

func (v Variant) Key() Key {
	return KeyFor(v.ProductID, v.Color, v.Size)
}

// LineItem is one requested line of an order. The JSON tags are the
// order request/response format.
type LineItem struct {
	ProductID string `json:"productId"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Qty       int    `json:"qty"`
}

// Update reports a variant's stock after a committed reservation.
type Update struct {
	ProductID string `json:"productId"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Stock     int    `json:"stock"`
}
