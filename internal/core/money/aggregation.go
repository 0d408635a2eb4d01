package money

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/twopi/moneycore/internal/core/domain"
)

// BucketByDay aggregates amounts into one bucket per UTC calendar day in
// [monthStart, monthEnd) and returns the running cumulative series in base
// currency terms. Amounts timestamped strictly before monthStart are summed
// once into the first day's starting point; amounts at or after monthEnd are
// ignored. Sums are exact decimal additions keyed by day, so the result does
// not depend on input order.
func BucketByDay(amounts []domain.DatedAmount, currencies domain.CurrencyMap, rates domain.RateSnapshot, monthStart, monthEnd time.Time) domain.WealthSeries {
	start := truncateToDay(monthStart.UTC())
	end := monthEnd.UTC()

	seed := decimal.Zero
	perDay := make(map[time.Time]decimal.Decimal)
	degraded := false

	for _, da := range amounts {
		value, d := NormalizeToBase(da.Amount, currencies, rates)
		degraded = degraded || d

		ts := da.Timestamp.UTC()
		switch {
		case ts.Before(start):
			seed = seed.Add(value)
		case ts.Before(end):
			day := truncateToDay(ts)
			perDay[day] = perDay[day].Add(value)
		}
	}

	var points []domain.WealthPoint
	cumulative := seed
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		cumulative = cumulative.Add(perDay[day])
		points = append(points, domain.WealthPoint{Date: day, Cumulative: cumulative})
	}

	return domain.WealthSeries{Points: points, Degraded: degraded}
}

// BucketByCategory sums normalized amounts per category. Uncategorized items
// (nil CategoryID) are excluded entirely rather than tallied under a synthetic
// key. Signs pass through unchanged.
func BucketByCategory(items []domain.CategorizedAmount, currencies domain.CurrencyMap, rates domain.RateSnapshot) (domain.CategoryTotals, bool) {
	totals := make(domain.CategoryTotals)
	degraded := false

	for _, item := range items {
		if item.CategoryID == nil {
			continue
		}
		value, d := NormalizeToBase(item.Amount, currencies, rates)
		degraded = degraded || d
		totals[*item.CategoryID] = totals[*item.CategoryID].Add(value)
	}

	return totals, degraded
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
