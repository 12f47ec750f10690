package domain

import (
	"sort"
	"strings"
)

// FacetKey names one filterable product attribute.
type FacetKey string

const (
	FacetPublisher FacetKey = "publisher"
	FacetGenre     FacetKey = "genre"
	FacetStatus    FacetKey = "status"
	FacetCategory  FacetKey = "category"
	FacetTags      FacetKey = "tags"
)

// FacetKeys lists every facet in display order.
var FacetKeys = []FacetKey{FacetPublisher, FacetGenre, FacetStatus, FacetCategory, FacetTags}

// FacetOptionsMap holds the sorted distinct values available per facet.
type FacetOptionsMap map[FacetKey][]string

// DeriveFacetOptions computes the option lists from a product snapshot.
// Pure derivation: callers hold the result and recompute it whenever the
// snapshot changes; there is no shared options store.
func DeriveFacetOptions(products []Product) FacetOptionsMap {
	publishers := map[string]struct{}{}
	genres := map[string]struct{}{}
	statuses := map[string]struct{}{}
	categories := map[string]struct{}{}
	tags := map[string]struct{}{}

	add := func(m map[string]struct{}, v string) {
		if t := strings.TrimSpace(v); t != "" {
			m[t] = struct{}{}
		}
	}

	for _, p := range products {
		add(publishers, p.Publisher)
		add(genres, p.Genre)
		add(statuses, string(p.Status))
		add(categories, p.Category)
		for _, t := range p.Tags {
			add(tags, t)
		}
	}

	toSorted := func(m map[string]struct{}) []string {
		out := make([]string, 0, len(m))
		for v := range m {
			out = append(out, v)
		}
		sort.Strings(out)
		return out
	}

	return FacetOptionsMap{
		FacetPublisher: toSorted(publishers),
		FacetGenre:     toSorted(genres),
		FacetStatus:    toSorted(statuses),
		FacetCategory:  toSorted(categories),
		FacetTags:      toSorted(tags),
	}
}
