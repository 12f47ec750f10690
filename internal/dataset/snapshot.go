// Package dataset holds the immutable in-memory snapshot of the two
// input collections plus everything derived once per load: the facet
// indexes, facet options, and the date-sorted sales series.
package dataset

import (
	"time"

	"github.com/google/uuid"

	catalog "sales-insights-service/internal/catalog/core/domain"
	"sales-insights-service/internal/catalog/core/index"
	charts "sales-insights-service/internal/charts/core/domain"
	"sales-insights-service/internal/charts/core/timeline"
)

// Snapshot is one immutable view of the datasets. A refresh produces a
// fresh snapshot, never an in-place mutation, so concurrent readers need
// no locks.
type Snapshot struct {
	ID       string
	LoadedAt time.Time

	Products    []catalog.Product
	ProductByID map[int]*catalog.Product
	Index       *index.Bundle
	Options     catalog.FacetOptionsMap

	// SalesSorted is ascending by date; DateKeys is the parallel key
	// array the range slicer binary-searches over.
	SalesSorted []charts.SalesRecord
	DateKeys    []string
}

// NewSnapshot derives all per-load structures from the raw collections.
func NewSnapshot(products []catalog.Product, sales []charts.SalesRecord) *Snapshot {
	byID := make(map[int]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ProductID] = &products[i]
	}

	sorted, dates := timeline.SortByDate(sales)

	return &Snapshot{
		ID:          uuid.NewString(),
		LoadedAt:    time.Now().UTC(),
		Products:    products,
		ProductByID: byID,
		Index:       index.Build(products),
		Options:     catalog.DeriveFacetOptions(products),
		SalesSorted: sorted,
		DateKeys:    dates,
	}
}
