package inventory

import (
	"strings"

	"romix/internal/catalog"
	"romix/internal/textkey"
)

// Initial stock derived from a size entry's free-text availability status.
const (
	stockOut       = 0
	stockLow       = 2
	stockAvailable = 5
)

// Seed derives the bootstrap variant set from catalog products. It runs
// once, when no snapshot exists; after that the snapshot is authoritative.
// Products without declared colors get a single "Unico" color; products
// without declared sizes get a single one-size "U" entry.
func Seed(products []catalog.Product) []Variant {
	variants := []Variant{}
	for _, p := range products {
		pid := p.EffectiveID()

		colors := p.Colors
		if len(colors) == 0 {
			colors = []catalog.Color{{Name: "Unico"}}
		}
		sizes := p.Sizes
		if len(sizes) == 0 {
			sizes = []catalog.Size{{Size: "U", Status: "available"}}
		}

		for _, c := range colors {
			for _, sz := range sizes {
				variants = append(variants, Variant{
					ID:        textkey.Slugify(pid) + "-" + textkey.Slugify(c.Name) + "-" + textkey.Slugify(sz.Size),
					ProductID: pid,
					Color:     c.Name,
					Size:      sz.Size,
					Stock:     stockForStatus(sz.Status),
				})
			}
		}
	}
	return variants
}

// stockForStatus maps a free-text status to an initial quantity. The
// substring matches are deliberate: upstream statuses are inconsistent
// ("out of stock", "sold_out", "unavailable", "low stock").
func stockForStatus(status string) int {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "out"), strings.Contains(s, "unavail"):
		return stockOut
	case strings.Contains(s, "low"):
		return stockLow
	default:
		return stockAvailable
	}
}
