package catalog

import (
	"sort"
	"strings"
)

const maxSearchResults = 12

type SearchResult struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Slug string `json:"slug"`
}

// Search ranks products against a free-text query. Name prefix matches
// rank highest (shorter names first), then name substring matches, then
// type substring matches; ties keep catalog order.
func (s *Store) Search(q string) ([]SearchResult, error) {
	qn := strings.ToLower(strings.TrimSpace(q))
	if qn == "" {
		return []SearchResult{}, nil
	}

	all, err := s.All()
	if err != nil {
		return nil, err
	}

	type scored struct {
		p     Product
		score int
	}
	matches := make([]scored, 0, len(all))
	for _, p := range all {
		if sc := searchScore(p, qn); sc >= 0 {
			matches = append(matches, scored{p: p, score: sc})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}

	out := make([]SearchResult, 0, len(matches))
	for _, m := range matches {
		out = append(out, SearchResult{Name: m.p.Name, Type: m.p.Type, Slug: m.p.Slug()})
	}
	return out, nil
}

func searchScore(p Product, qn string) int {
	name := strings.ToLower(p.Name)
	typ := strings.ToLower(p.Type)
	switch {
	case strings.HasPrefix(name, qn):
		return 100 - len(name)
	case strings.Contains(name, qn):
		return 80 - strings.Index(name, qn)
	case strings.Contains(typ, qn):
		return 60 - strings.Index(typ, qn)
	}
	return -1
}
