package index

import "sales-insights-service/internal/catalog/core/domain"

// Resolve combines index lookups for a facet selection into the allowed
// product-id set. A nil result means unrestricted (every product passes);
// a non-nil empty result matches nothing.
//
// Single-valued facets union the buckets of their selected values; tags
// intersect (a product must carry every selected tag). Active facets are
// folded together via intersection. Selecting every available value of a
// facet is equivalent to selecting none of it.
func Resolve(sel domain.FacetSelection, b *Bundle) IDSet {
	if b == nil || sel.Empty() {
		return nil
	}

	var acc IDSet

	acc = intersect(acc, unionFrom(b.ByPublisher, sel.Publishers))
	acc = intersect(acc, unionFrom(b.ByGenre, sel.Genres))
	acc = intersect(acc, unionFrom(b.ByStatus, sel.Statuses))
	acc = intersect(acc, unionFrom(b.ByCategory, sel.Categories))
	acc = intersect(acc, intersectAllFrom(b.ByTag, sel.Tags))

	return acc
}

// unionFrom collects the buckets of the selected values. Returns nil when
// the selection is empty or covers the facet's whole value universe.
func unionFrom(idx FacetIndex, selected domain.StringSet) IDSet {
	if selected.Empty() {
		return nil
	}
	if coversUniverse(idx, selected) {
		return nil
	}

	out := make(IDSet)
	for key := range selected {
		for id := range idx[key] {
			out[id] = struct{}{}
		}
	}
	return out
}

// intersectAllFrom intersects the buckets of every selected tag. A
// selected tag with no bucket fails closed: the result is empty.
func intersectAllFrom(idx FacetIndex, selected domain.StringSet) IDSet {
	if selected.Empty() {
		return nil
	}

	var acc IDSet
	for tag := range selected {
		bucket, ok := idx[tag]
		if !ok {
			return IDSet{}
		}
		acc = intersect(acc, bucket)
	}
	return acc
}

// intersect folds two sets, treating nil as unrestricted. Iterates the
// smaller set for efficiency.
func intersect(a, b IDSet) IDSet {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	out := make(IDSet)
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// coversUniverse reports whether the selection names every value the
// facet actually has, which downstream must treat as no restriction.
func coversUniverse(idx FacetIndex, selected domain.StringSet) bool {
	if len(selected) != len(idx) || len(idx) == 0 {
		return false
	}
	for key := range selected {
		if _, ok := idx[key]; !ok {
			return false
		}
	}
	return true
}
