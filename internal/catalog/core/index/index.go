// Package index builds inverted indexes over product facets and resolves
// facet selections into candidate product-id sets.
package index

import (
	"strings"

	"sales-insights-service/internal/catalog/core/domain"
)

// IDSet is a set of product ids.
type IDSet map[int]struct{}

func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// FacetIndex maps a trimmed facet value to the products holding it.
type FacetIndex map[string]IDSet

// Bundle holds one inverted index per facet. Built once per product
// snapshot and read-only afterward, so concurrent reads need no locking.
type Bundle struct {
	ByPublisher FacetIndex
	ByGenre     FacetIndex
	ByStatus    FacetIndex
	ByCategory  FacetIndex
	ByTag       FacetIndex
}

// Build derives the facet indexes from a product snapshot. Single-valued
// facets index the trimmed value (empty string is its own bucket); every
// non-blank tag contributes the product to that tag's bucket.
func Build(products []domain.Product) *Bundle {
	b := &Bundle{
		ByPublisher: make(FacetIndex),
		ByGenre:     make(FacetIndex),
		ByStatus:    make(FacetIndex),
		ByCategory:  make(FacetIndex),
		ByTag:       make(FacetIndex),
	}

	for _, p := range products {
		b.ByPublisher.add(strings.TrimSpace(p.Publisher), p.ProductID)
		b.ByGenre.add(strings.TrimSpace(p.Genre), p.ProductID)
		b.ByStatus.add(strings.TrimSpace(string(p.Status)), p.ProductID)
		b.ByCategory.add(strings.TrimSpace(p.Category), p.ProductID)

		for _, t := range p.Tags {
			tag := strings.TrimSpace(t)
			if tag == "" {
				continue
			}
			b.ByTag.add(tag, p.ProductID)
		}
	}

	return b
}

func (f FacetIndex) add(key string, id int) {
	bucket, ok := f[key]
	if !ok {
		bucket = make(IDSet)
		f[key] = bucket
	}
	bucket[id] = struct{}{}
}
