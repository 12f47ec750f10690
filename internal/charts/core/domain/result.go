package domain

// LineSeries is the date-keyed time series. Baseline is the unfiltered
// reference curve; it is nil when no filter restricts the query (the
// filtered curve equals the baseline then).
type LineSeries struct {
	DateList     []string
	ValueList    []float64
	BaselineList []float64
	YMax         float64
}

// StackMatrix is the publisher×category breakdown for the stacked bars.
// Matrix is indexed [category][publisher], matching one bar segment per
// category stacked along the publisher axis.
type StackMatrix struct {
	Publishers []string
	Categories []string
	Matrix     [][]float64
	XMax       float64
}

// PieShare is one share vector: parallel labels and values sorted by
// value descending, ties broken by label.
type PieShare struct {
	Labels []string
	Values []float64
}

// ScatterPoint is one product's position in the read/paid/sales space.
type ScatterPoint struct {
	ProductID int
	Title     string
	Publisher string
	Category  string
	Genre     string
	ReadUser  int64
	PaidUser  int64
	Sales     float64
}

// ProductSummary is one table row: per-product totals plus badges.
type ProductSummary struct {
	ProductID     int
	Title         string
	Publisher     string
	Genre         string
	Category      string
	Status        string
	Tags          []string
	StartedSaleAt string
	ThumbPath     string
	SalesTotal    float64
	AppTotal      float64
	WebTotal      float64
	Badges        []Badge
}

// ChartBundle is the full per-query result: five independent views plus
// the effective date range actually used after defaulting. Every view's
// empty state is an empty slice, never an error.
type ChartBundle struct {
	Start string
	End   string

	Line       LineSeries
	Stack      StackMatrix
	GenreSales PieShare
	GenreCount PieShare
	Scatter    []ScatterPoint
	MaxSales   float64
	Products   []ProductSummary
}
