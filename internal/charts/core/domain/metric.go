package domain

// Platform selects which monetary figure the aggregation sums.
type Platform string

const (
	PlatformTotal Platform = ""
	PlatformApp   Platform = "app"
	PlatformWeb   Platform = "web"
)

// Valid reports whether p is a known platform selector.
func (p Platform) Valid() bool {
	switch p {
	case PlatformTotal, PlatformApp, PlatformWeb:
		return true
	}
	return false
}

// Metric extracts the chosen monetary value from a record.
type Metric func(*SalesRecord) float64

// Accessor resolves the platform to its value selector once per query,
// so the aggregation loop pays no per-record branching.
func (p Platform) Accessor() Metric {
	switch p {
	case PlatformApp:
		return func(s *SalesRecord) float64 { return s.AppSales }
	case PlatformWeb:
		return func(s *SalesRecord) float64 { return s.WebSales }
	default:
		return func(s *SalesRecord) float64 { return s.TotalSales }
	}
}
