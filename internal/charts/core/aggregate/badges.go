package aggregate

import (
	"math"
	"sort"
	"time"

	catalog "sales-insights-service/internal/catalog/core/domain"
	"sales-insights-service/internal/catalog/core/index"
	"sales-insights-service/internal/charts/core/domain"
)

const dateLayout = "2006-01-02"

// summarize builds the table rows: per-product totals plus badges, for
// every product passing the candidate set, in catalog order.
func summarize(
	products []catalog.Product,
	candidates index.IDSet,
	perProduct map[int]*productAcc,
	globalSum map[int]float64,
	opts Options,
) []domain.ProductSummary {
	inScope := make([]*catalog.Product, 0, len(products))
	for i := range products {
		p := &products[i]
		if candidates != nil && !candidates.Has(p.ProductID) {
			continue
		}
		inScope = append(inScope, p)
	}

	threshold := topThreshold(inScope, products, perProduct, globalSum, opts.Thresholds)

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var empty productAcc
	rows := make([]domain.ProductSummary, 0, len(inScope))
	for _, p := range inScope {
		acc := perProduct[p.ProductID]
		if acc == nil {
			acc = &empty
		}
		rows = append(rows, domain.ProductSummary{
			ProductID:     p.ProductID,
			Title:         p.Title,
			Publisher:     p.Publisher,
			Genre:         p.Genre,
			Category:      p.Category,
			Status:        string(p.Status),
			Tags:          p.Tags,
			StartedSaleAt: p.StartedSaleAt,
			ThumbPath:     p.ThumbPath,
			SalesTotal:    acc.metricSum,
			AppTotal:      acc.appSum,
			WebTotal:      acc.webSum,
			Badges:        evalBadges(p, acc, threshold, now, opts.Thresholds),
		})
	}
	return rows
}

// topThreshold computes the sales value at the configured percentile.
// Filtered scope ranks only in-scope products; global scope ranks the
// whole catalog on unfiltered totals.
func topThreshold(
	inScope []*catalog.Product,
	all []catalog.Product,
	perProduct map[int]*productAcc,
	globalSum map[int]float64,
	th domain.BadgeThresholds,
) float64 {
	var totals []float64
	if th.TopPercentileScope == domain.ScopeGlobal {
		totals = make([]float64, 0, len(all))
		for i := range all {
			totals = append(totals, globalSum[all[i].ProductID])
		}
	} else {
		totals = make([]float64, 0, len(inScope))
		for _, p := range inScope {
			if acc := perProduct[p.ProductID]; acc != nil {
				totals = append(totals, acc.metricSum)
			} else {
				totals = append(totals, 0)
			}
		}
	}
	if len(totals) == 0 {
		return 0
	}

	sort.Float64s(totals)
	idx := int(math.Floor(float64(len(totals))*th.TopPercentile)) - 1
	if idx < 0 {
		idx = 0
	}
	return totals[idx]
}

// evalBadges runs every badge rule for one product. Rules are
// independent except App-heavy/Web-heavy, which are mutually exclusive
// and skipped entirely at zero paid users.
func evalBadges(
	p *catalog.Product,
	acc *productAcc,
	threshold float64,
	now time.Time,
	th domain.BadgeThresholds,
) []domain.Badge {
	var out []domain.Badge

	if acc.metricSum > 0 && acc.metricSum >= threshold {
		out = append(out, domain.BadgeTopSeller)
	}

	if p.StartedSaleAt != "" {
		if started, err := time.Parse(dateLayout, p.StartedSaleAt); err == nil {
			window := time.Duration(th.RecencyDays) * 24 * time.Hour
			if now.Sub(started) < window {
				out = append(out, domain.BadgeNew)
			}
		}
	}

	if acc.paidTotal > 0 {
		ratio := float64(acc.appPaid) / float64(acc.paidTotal)
		if ratio >= th.AppHeavyMin {
			out = append(out, domain.BadgeAppHeavy)
		} else if ratio <= th.WebHeavyMax {
			out = append(out, domain.BadgeWebHeavy)
		}
	}

	for _, day := range acc.daily {
		conv := float64(day.paid) / float64(safeDenom(day.read))
		if day.read >= th.ViralMinRead && conv >= th.ViralMinRatio {
			out = append(out, domain.BadgeViral)
			break
		}
	}

	if acc.readTotal >= th.LowConvMinRead {
		conv := float64(acc.paidTotal) / float64(safeDenom(acc.readTotal))
		if conv < th.LowConvMaxRatio {
			out = append(out, domain.BadgeLowConversion)
		}
	}

	return out
}

// safeDenom guards ratio computations against zero denominators.
func safeDenom(v int64) int64 {
	if v > 0 {
		return v
	}
	return 1
}
