package postgres

import (
	"context"

	"sales-insights-service/internal/charts/core/domain"
	"sales-insights-service/internal/charts/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type SalesRepository struct {
	db DB
}

func NewSalesRepository(db DB) *SalesRepository {
	return &SalesRepository{db: db}
}

var _ ports.SalesReaderPort = (*SalesRepository)(nil)

const listSalesSQL = `
SELECT
    product_id,
    to_char(sales_date, 'YYYY-MM-DD') AS sales_date,
    total_sales,
    app_sales,
    web_sales,
    total_read_user,
    total_paid_user,
    app_read_user,
    web_read_user,
    app_paid_user,
    web_paid_user
FROM sales
ORDER BY sales_date, product_id`

func (r *SalesRepository) ListSales(ctx context.Context) ([]domain.SalesRecord, error) {
	rows, err := r.db.QueryContext(ctx, listSalesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SalesRecord
	for rows.Next() {
		var s domain.SalesRecord
		if err := rows.Scan(
			&s.ProductID,
			&s.SalesDate,
			&s.TotalSales,
			&s.AppSales,
			&s.WebSales,
			&s.TotalReadUser,
			&s.TotalPaidUser,
			&s.AppReadUser,
			&s.WebReadUser,
			&s.AppPaidUser,
			&s.WebPaidUser,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
