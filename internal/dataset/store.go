package dataset

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	catalogports "sales-insights-service/internal/catalog/core/ports"
	chartsports "sales-insights-service/internal/charts/core/ports"
)

var ErrNoSnapshot = errors.New("no dataset snapshot loaded")

// Store holds the current snapshot behind an atomic pointer. Readers get
// a consistent snapshot for the full lifetime of a query; a refresh swaps
// in a new snapshot wholesale and the old one is dropped, never patched.
type Store struct {
	products catalogports.ProductReaderPort
	sales    chartsports.SalesReaderPort
	log      logrus.FieldLogger

	current atomic.Pointer[Snapshot]

	// Serializes refreshes so concurrent reload requests coalesce into
	// a simple last-writer-wins sequence.
	refreshMu sync.Mutex
}

func NewStore(products catalogports.ProductReaderPort, sales chartsports.SalesReaderPort, log logrus.FieldLogger) *Store {
	return &Store{products: products, sales: sales, log: log}
}

// Current returns the active snapshot, or ErrNoSnapshot before the first
// successful refresh.
func (s *Store) Current() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return snap, nil
}

// Refresh loads both collections and swaps in a fresh snapshot. On error
// the previous snapshot stays active.
func (s *Store) Refresh(ctx context.Context) (*Snapshot, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	sales, err := s.sales.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	snap := NewSnapshot(products, sales)
	s.current.Store(snap)

	s.log.WithFields(logrus.Fields{
		"snapshot_id": snap.ID,
		"products":    len(snap.Products),
		"sales":       len(snap.SalesSorted),
	}).Info("dataset snapshot refreshed")

	return snap, nil
}
