package catalog

import (
	"encoding/json"
	"strings"

	"romix/internal/textkey"
)

// Product is one entry of the products file. The file is hand-maintained
// upstream, so colors and sizes appear both as plain strings and as objects.
type Product struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	Type    string  `json:"type,omitempty"`
	Section string  `json:"section,omitempty"`
	Price   float64 `json:"price,omitempty"`
	Colors  []Color `json:"colors,omitempty"`
	Sizes   []Size  `json:"sizes,omitempty"`
}

type Color struct {
	Name string `json:"name"`
}

type Size struct {
	Size   string `json:"size"`
	Status string `json:"status,omitempty"`
}

// EffectiveID is the product's explicit id, or the slug of its name when
// no id is declared. Order validation and seeding both key on this.
func (p Product) EffectiveID() string {
	if id := strings.TrimSpace(p.ID); id != "" {
		return id
	}
	return textkey.Slugify(p.Name)
}

// Slug is the URL identifier the product pages use.
func (p Product) Slug() string {
	return textkey.Slugify(p.Name)
}

func (c *Color) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &c.Name)
	}
	type plain Color
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*c = Color(v)
	return nil
}

func (s *Size) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &s.Size)
	}
	type plain Size
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Size(v)
	return nil
}
