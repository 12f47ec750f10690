// Package aggregate is the streaming core: one forward pass over a
// sliced sales range producing the line, stack, pie, scatter, and badge
// views simultaneously.
package aggregate

import (
	"sort"
	"strings"
	"time"

	catalog "sales-insights-service/internal/catalog/core/domain"
	"sales-insights-service/internal/catalog/core/index"
	"sales-insights-service/internal/charts/core/domain"
)

// Options configures one aggregation run.
type Options struct {
	// StackTopN bounds how many publishers the stacked view keeps.
	StackTopN int
	// FallbackLabel substitutes blank publisher/category/genre values.
	FallbackLabel string
	// Thresholds drive the badge rules.
	Thresholds domain.BadgeThresholds
	// Now anchors the recency badge; zero value means time.Now().
	Now time.Time
}

// productAcc collects everything the scatter and badge views need for
// one product. Zero value is a valid empty accumulator.
type productAcc struct {
	metricSum float64
	appSum    float64
	webSum    float64

	readTotal int64
	paidTotal int64
	appPaid   int64
	webPaid   int64

	daily map[string]*dailyAcc
}

type dailyAcc struct {
	read int64
	paid int64
}

// Run computes the full chart bundle from an already-sliced record range.
// candidates == nil means unrestricted; a non-nil empty set matches
// nothing. Empty input yields an empty (not nil, not error) bundle.
func Run(
	sliced []domain.SalesRecord,
	candidates index.IDSet,
	products []catalog.Product,
	productByID map[int]*catalog.Product,
	metric domain.Metric,
	opts Options,
) *domain.ChartBundle {
	restricted := candidates != nil

	// An empty candidate set matches nothing: every view is empty, the
	// baseline included.
	if restricted && len(candidates) == 0 {
		sliced = nil
	}

	baseMap := make(map[string]float64)
	filtMap := make(map[string]float64)
	pubCat := make(map[string]map[string]float64)
	catSet := make(map[string]struct{})
	genreSales := make(map[string]float64)
	perProduct := make(map[int]*productAcc)
	globalSum := make(map[int]float64)

	for i := range sliced {
		rec := &sliced[i]
		val := metric(rec)

		// Baseline ignores the candidate set by construction.
		baseMap[rec.SalesDate] += val
		globalSum[rec.ProductID] += val

		if restricted && !candidates.Has(rec.ProductID) {
			continue
		}
		if restricted {
			filtMap[rec.SalesDate] += val
		}

		meta := productByID[rec.ProductID]
		if meta != nil {
			pub := labelOr(meta.Publisher, opts.FallbackLabel)
			cat := labelOr(meta.Category, opts.FallbackLabel)
			row, ok := pubCat[pub]
			if !ok {
				row = make(map[string]float64)
				pubCat[pub] = row
			}
			row[cat] += val
			catSet[cat] = struct{}{}

			genreSales[labelOr(meta.Genre, opts.FallbackLabel)] += val
		}

		acc, ok := perProduct[rec.ProductID]
		if !ok {
			acc = &productAcc{daily: make(map[string]*dailyAcc)}
			perProduct[rec.ProductID] = acc
		}
		acc.metricSum += val
		acc.appSum += rec.AppSales
		acc.webSum += rec.WebSales
		acc.readTotal += rec.TotalReadUser
		acc.paidTotal += rec.TotalPaidUser
		acc.appPaid += rec.AppPaidUser
		acc.webPaid += rec.WebPaidUser

		day, ok := acc.daily[rec.SalesDate]
		if !ok {
			day = &dailyAcc{}
			acc.daily[rec.SalesDate] = day
		}
		day.read += rec.TotalReadUser
		day.paid += rec.TotalPaidUser
	}

	bundle := &domain.ChartBundle{}
	bundle.Line = finalizeLine(baseMap, filtMap, restricted)
	bundle.Stack = finalizeStack(pubCat, catSet, opts.StackTopN)
	bundle.GenreSales = toShare(genreSales)
	bundle.GenreCount = toShare(countGenres(products, candidates, opts.FallbackLabel))
	bundle.Scatter, bundle.MaxSales = finalizeScatter(perProduct, productByID)
	bundle.Products = summarize(products, candidates, perProduct, globalSum, opts)
	return bundle
}

func labelOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func finalizeLine(baseMap, filtMap map[string]float64, restricted bool) domain.LineSeries {
	if len(baseMap) == 0 {
		return domain.LineSeries{YMax: 1}
	}

	dates := make([]string, 0, len(baseMap))
	for d := range baseMap {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	baseline := make([]float64, len(dates))
	maxY := 0.0
	for i, d := range dates {
		baseline[i] = baseMap[d]
		if baseline[i] > maxY {
			maxY = baseline[i]
		}
	}

	series := domain.LineSeries{
		DateList: dates,
		YMax:     NiceCeil(maxY),
	}
	if !restricted {
		series.ValueList = baseline
		return series
	}

	filtered := make([]float64, len(dates))
	for i, d := range dates {
		filtered[i] = filtMap[d]
	}
	series.ValueList = filtered
	series.BaselineList = baseline
	return series
}

func finalizeStack(pubCat map[string]map[string]float64, catSet map[string]struct{}, topN int) domain.StackMatrix {
	if len(pubCat) == 0 {
		return domain.StackMatrix{XMax: 1}
	}

	categories := make([]string, 0, len(catSet))
	for c := range catSet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	type pubTotal struct {
		pub   string
		total float64
	}
	totals := make([]pubTotal, 0, len(pubCat))
	for pub, row := range pubCat {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		totals = append(totals, pubTotal{pub: pub, total: sum})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].total != totals[j].total {
			return totals[i].total < totals[j].total
		}
		return totals[i].pub < totals[j].pub
	})

	if topN > 0 && len(totals) > topN {
		totals = totals[:topN]
	}

	publishers := make([]string, len(totals))
	for i, t := range totals {
		publishers[i] = t.pub
	}

	matrix := make([][]float64, len(categories))
	for ci := range matrix {
		matrix[ci] = make([]float64, len(publishers))
	}

	maxX := 0.0
	for pi, pub := range publishers {
		row := pubCat[pub]
		rowSum := 0.0
		for ci, cat := range categories {
			v := row[cat]
			matrix[ci][pi] = v
			rowSum += v
		}
		if rowSum > maxX {
			maxX = rowSum
		}
	}

	return domain.StackMatrix{
		Publishers: publishers,
		Categories: categories,
		Matrix:     matrix,
		XMax:       NiceCeil(maxX),
	}
}

// countGenres counts distinct products per genre over the candidate
// membership directly; the date window does not apply to this view.
func countGenres(products []catalog.Product, candidates index.IDSet, fallback string) map[string]float64 {
	counts := make(map[string]float64)
	for i := range products {
		p := &products[i]
		if candidates != nil && !candidates.Has(p.ProductID) {
			continue
		}
		counts[labelOr(p.Genre, fallback)]++
	}
	return counts
}

func toShare(m map[string]float64) domain.PieShare {
	type entry struct {
		label string
		value float64
	}
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, entry{label: k, value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].label < entries[j].label
	})

	share := domain.PieShare{
		Labels: make([]string, len(entries)),
		Values: make([]float64, len(entries)),
	}
	for i, e := range entries {
		share.Labels[i] = e.label
		share.Values[i] = e.value
	}
	return share
}

func finalizeScatter(perProduct map[int]*productAcc, productByID map[int]*catalog.Product) ([]domain.ScatterPoint, float64) {
	points := make([]domain.ScatterPoint, 0, len(perProduct))
	maxSales := 0.0

	for pid, acc := range perProduct {
		meta := productByID[pid]
		if meta == nil {
			continue
		}
		points = append(points, domain.ScatterPoint{
			ProductID: pid,
			Title:     meta.Title,
			Publisher: meta.Publisher,
			Category:  meta.Category,
			Genre:     meta.Genre,
			ReadUser:  acc.readTotal,
			PaidUser:  acc.paidTotal,
			Sales:     acc.metricSum,
		})
		if acc.metricSum > maxSales {
			maxSales = acc.metricSum
		}
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].ProductID < points[j].ProductID
	})
	return points, NiceCeil(maxSales)
}
