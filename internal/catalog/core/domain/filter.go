package domain

import "sort"

// StringSet is a selected-value set for one facet. A nil or empty set
// means the facet imposes no restriction.
type StringSet map[string]struct{}

func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s StringSet) Add(v string) {
	s[v] = struct{}{}
}

func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

func (s StringSet) Empty() bool {
	return len(s) == 0
}

// Values returns the members in sorted order.
func (s StringSet) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// FacetSelection carries the selected values per facet. Single-valued
// facets (publisher, genre, status, category) use any-must-match
// semantics; tags use all-must-match.
type FacetSelection struct {
	Publishers StringSet
	Genres     StringSet
	Statuses   StringSet
	Categories StringSet
	Tags       StringSet
}

// Empty reports whether no facet restricts the query.
func (f FacetSelection) Empty() bool {
	return f.Publishers.Empty() &&
		f.Genres.Empty() &&
		f.Statuses.Empty() &&
		f.Categories.Empty() &&
		f.Tags.Empty()
}
