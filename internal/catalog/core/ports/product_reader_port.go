package ports

import (
	"context"

	"sales-insights-service/internal/catalog/core/domain"
)

type ProductReaderPort interface {
	// ListProducts returns the full catalog as a one-time snapshot.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
