package postgres

import (
	"context"

	"github.com/lib/pq"

	"sales-insights-service/internal/catalog/core/domain"
	"sales-insights-service/internal/catalog/core/ports"
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

type ProductRepository struct {
	db DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var _ ports.ProductReaderPort = (*ProductRepository)(nil)

const listProductsSQL = `
SELECT
    product_id,
    title,
    publisher,
    genre,
    category,
    status,
    author,
    tags,
    to_char(started_sale_at, 'YYYY-MM-DD') AS started_sale_at,
    thumb_path
FROM products
ORDER BY product_id`

func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, listProductsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		var status string
		var tags pq.StringArray

		if err := rows.Scan(
			&p.ProductID,
			&p.Title,
			&p.Publisher,
			&p.Genre,
			&p.Category,
			&status,
			&p.Author,
			&tags,
			&p.StartedSaleAt,
			&p.ThumbPath,
		); err != nil {
			return nil, err
		}

		p.Status = domain.Status(status)
		p.Tags = tags
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
