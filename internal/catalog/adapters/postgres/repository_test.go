package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lib/pq"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows []fakeRow
	i    int
	err  error
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int:
			v, ok := row.values[i].(int)
			if !ok {
				return errors.New("type assertion to int failed")
			}
			*d = v
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *pq.StringArray:
			v, ok := row.values[i].(pq.StringArray)
			if !ok {
				return errors.New("type assertion to pq.StringArray failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	called    bool
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.called = true
	f.lastQuery = query
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return nil, nil
}

func productRow(id int, title, publisher, genre, category, status, author string, tags pq.StringArray, started, thumb string) fakeRow {
	return fakeRow{values: []any{id, title, publisher, genre, category, status, author, tags, started, thumb}}
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestProductRepository_ListProducts(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "FROM products") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeRowScanner{
				rows: []fakeRow{
					productRow(1, "Alpha", "Acme", "Drama", "Webtoon", "A", "Kim", pq.StringArray{"romance", "school"}, "2023-05-01", "/thumbs/1.png"),
					productRow(2, "Beta", "Beta Press", "Comedy", "Novel", "I", "Lee", nil, "2022-11-15", "/thumbs/2.png"),
				},
			}, nil
		},
	}

	repo := NewProductRepository(db)

	products, err := repo.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !db.called {
		t.Fatalf("expected QueryContext to be called")
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	p := products[0]
	if p.ProductID != 1 || p.Title != "Alpha" || p.Publisher != "Acme" {
		t.Fatalf("unexpected product: %+v", p)
	}
	if string(p.Status) != "A" {
		t.Fatalf("unexpected status: %q", p.Status)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "romance" {
		t.Fatalf("unexpected tags: %v", p.Tags)
	}
	if p.StartedSaleAt != "2023-05-01" {
		t.Fatalf("unexpected date: %q", p.StartedSaleAt)
	}

	if products[1].Tags != nil {
		t.Fatalf("expected nil tags, got %v", products[1].Tags)
	}
}

// ------------------------------------------------------------
// EMPTY
// ------------------------------------------------------------

func TestProductRepository_ListProducts_Empty(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{}, nil
		},
	}

	repo := NewProductRepository(db)

	products, err := repo.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected no products, got %d", len(products))
	}
}

// ------------------------------------------------------------
// QUERY ERROR
// ------------------------------------------------------------

func TestProductRepository_ListProducts_QueryError(t *testing.T) {
	dbErr := errors.New("connection refused")
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, dbErr
		},
	}

	repo := NewProductRepository(db)

	if _, err := repo.ListProducts(context.Background()); !errors.Is(err, dbErr) {
		t.Fatalf("expected %v, got %v", dbErr, err)
	}
}

// ------------------------------------------------------------
// ROWS ERROR
// ------------------------------------------------------------

func TestProductRepository_ListProducts_RowsError(t *testing.T) {
	rowsErr := errors.New("cursor closed")
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: rowsErr}, nil
		},
	}

	repo := NewProductRepository(db)

	if _, err := repo.ListProducts(context.Background()); !errors.Is(err, rowsErr) {
		t.Fatalf("expected %v, got %v", rowsErr, err)
	}
}
