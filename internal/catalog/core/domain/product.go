package domain

// Status is the publication state of a product.
type Status string

const (
	StatusActive   Status = "A"
	StatusInactive Status = "I"
	StatusEnded    Status = "S"
)

// Product is one catalog entry. Loaded once per snapshot and treated as
// immutable; ProductID is the join key to sales records.
type Product struct {
	ProductID     int
	Title         string
	Publisher     string
	Genre         string
	Category      string
	Status        Status
	Author        string
	Tags          []string
	StartedSaleAt string // YYYY-MM-DD
	ThumbPath     string
}
