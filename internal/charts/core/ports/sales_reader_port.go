package ports

import (
	"context"

	"sales-insights-service/internal/charts/core/domain"
)

type SalesReaderPort interface {
	// ListSales returns every sales record as a one-time snapshot.
	ListSales(ctx context.Context) ([]domain.SalesRecord, error)
}
