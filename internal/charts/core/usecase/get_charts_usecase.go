package usecase

import (
	"context"
	"errors"
	"time"

	catalog "sales-insights-service/internal/catalog/core/domain"
	"sales-insights-service/internal/catalog/core/index"
	"sales-insights-service/internal/charts/core/aggregate"
	"sales-insights-service/internal/charts/core/domain"
	"sales-insights-service/internal/charts/core/timeline"
	"sales-insights-service/internal/dataset"
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidPlatform  = errors.New("invalid platform")
)

const dateLayout = "2006-01-02"

// DatasetPort supplies the current immutable snapshot.
type DatasetPort interface {
	Current() (*dataset.Snapshot, error)
}

type GetChartsInput struct {
	Start    string // YYYY-MM-DD, empty = default
	End      string // YYYY-MM-DD, empty = default
	Platform domain.Platform
	Facets   catalog.FacetSelection
}

// Defaults carries the date window applied when the query leaves a side open.
type Defaults struct {
	Start string
	End   string
}

type GetChartsUseCase struct {
	data     DatasetPort
	defaults Defaults
	opts     aggregate.Options
}

func NewGetChartsUseCase(data DatasetPort, defaults Defaults, opts aggregate.Options) *GetChartsUseCase {
	return &GetChartsUseCase{data: data, defaults: defaults, opts: opts}
}

// Execute validates the input, resolves candidates, slices the date
// range, and runs the single-pass aggregation. Each invocation works on
// one snapshot throughout, so a refresh mid-query never mixes data.
func (uc *GetChartsUseCase) Execute(ctx context.Context, in GetChartsInput) (*domain.ChartBundle, error) {
	if !in.Platform.Valid() {
		return nil, ErrInvalidPlatform
	}

	start, end, err := uc.resolveRange(in.Start, in.End)
	if err != nil {
		return nil, err
	}

	snap, err := uc.data.Current()
	if err != nil {
		return nil, err
	}

	candidates := index.Resolve(in.Facets, snap.Index)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sliced := timeline.Slice(snap.SalesSorted, snap.DateKeys, start, end)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bundle := aggregate.Run(sliced, candidates, snap.Products, snap.ProductByID, in.Platform.Accessor(), uc.opts)
	bundle.Start = start
	bundle.End = end
	return bundle, nil
}

// resolveRange defaults each open side independently and rejects
// malformed or inverted windows.
func (uc *GetChartsUseCase) resolveRange(start, end string) (string, string, error) {
	if start == "" {
		start = uc.defaults.Start
	}
	if end == "" {
		end = uc.defaults.End
	}

	for _, d := range []string{start, end} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			return "", "", ErrInvalidDateRange
		}
	}

	if start != "" && end != "" && start > end {
		return "", "", ErrInvalidDateRange
	}
	return start, end, nil
}
