package usecase

import (
	"context"

	"sales-insights-service/internal/catalog/core/domain"
	"sales-insights-service/internal/dataset"
)

// DatasetPort supplies the current immutable snapshot.
type DatasetPort interface {
	Current() (*dataset.Snapshot, error)
}

type GetFacetOptionsUseCase struct {
	data DatasetPort
}

func NewGetFacetOptionsUseCase(data DatasetPort) *GetFacetOptionsUseCase {
	return &GetFacetOptionsUseCase{data: data}
}

// Execute returns the facet option lists derived from the current
// snapshot. The derivation itself happens once per snapshot load.
func (uc *GetFacetOptionsUseCase) Execute(ctx context.Context) (domain.FacetOptionsMap, error) {
	snap, err := uc.data.Current()
	if err != nil {
		return nil, err
	}
	return snap.Options, nil
}
