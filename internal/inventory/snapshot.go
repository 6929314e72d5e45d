package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Snapshot is the persistence port for the variant store. Read reports
// ok=false when no snapshot has been written yet, which triggers seeding.
type Snapshot interface {
	Read() ([]Variant, bool, error)
	Write([]Variant) error
}

// FileSnapshot persists variants as an indented JSON array, sorted by id
// so successive writes stay diffable.
type FileSnapshot struct {
	Path string
}

func (f *FileSnapshot) Read() ([]Variant, bool, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot: %w", err)
	}
	if strings.TrimSpace(string(b)) == "" {
		return []Variant{}, true, nil
	}
	var variants []Variant
	if err := json.Unmarshal(b, &variants); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrSnapshotCorrupt, f.Path, err)
	}
	return variants, true, nil
}

func (f *FileSnapshot) Write(variants []Variant) error {
	if variants == nil {
		variants = []Variant{}
	}
	sort.Slice(variants, func(i, j int) bool { return variants[i].ID < variants[j].ID })

	b, err := json.MarshalIndent(variants, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
