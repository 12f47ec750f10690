package domain

// Badge is a rule-based classification attached to a product from its
// aggregates within the active window. The set is closed: adding a badge
// means adding a case to the evaluator, which keeps dispatch exhaustive.
type Badge string

const (
	BadgeTopSeller     Badge = "Top Seller"
	BadgeNew           Badge = "New"
	BadgeAppHeavy      Badge = "App-heavy"
	BadgeWebHeavy      Badge = "Web-heavy"
	BadgeViral         Badge = "Viral"
	BadgeLowConversion Badge = "Low conversion"
)

// PercentileScope picks which product population the top-seller
// percentile threshold is computed over.
type PercentileScope string

const (
	// ScopeFiltered ranks only candidate-filtered products, so the
	// threshold shifts with the active filters (dashboard behavior).
	ScopeFiltered PercentileScope = "filtered"
	// ScopeGlobal ranks the whole catalog regardless of filters.
	ScopeGlobal PercentileScope = "global"
)

// BadgeThresholds are the named constants behind each badge rule.
type BadgeThresholds struct {
	TopPercentile      float64
	TopPercentileScope PercentileScope
	AppHeavyMin        float64
	WebHeavyMax        float64
	ViralMinRead       int64
	ViralMinRatio      float64
	LowConvMinRead     int64
	LowConvMaxRatio    float64
	RecencyDays        int
}

// DefaultBadgeThresholds returns the thresholds the dashboard shipped with.
func DefaultBadgeThresholds() BadgeThresholds {
	return BadgeThresholds{
		TopPercentile:      0.99,
		TopPercentileScope: ScopeFiltered,
		AppHeavyMin:        0.6928,
		WebHeavyMax:        0.675,
		ViralMinRead:       4000,
		ViralMinRatio:      0.04,
		LowConvMinRead:     10000,
		LowConvMaxRatio:    0.025,
		RecencyDays:        30,
	}
}
