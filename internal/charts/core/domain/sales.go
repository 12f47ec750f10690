package domain

// SalesRecord is one day of sales counters for one product. Day
// granularity; multiple records per (product, day) are summed as-is.
// AppSales + WebSales is not reconciled against TotalSales here — each
// field aggregates independently as supplied.
type SalesRecord struct {
	ProductID int
	SalesDate string // YYYY-MM-DD

	TotalSales float64
	AppSales   float64
	WebSales   float64

	TotalReadUser int64
	TotalPaidUser int64
	AppReadUser   int64
	WebReadUser   int64
	AppPaidUser   int64
	WebPaidUser   int64
}
