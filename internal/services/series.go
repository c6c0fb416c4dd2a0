package services

import (
	"sort"
	"time"

	"github.com/SohamBhandary/MoneyFrontend/internal/models"
)

// ChartPoint is one plottable point of a ledger's time series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartPoints converts a transaction collection into a chronologically
// ordered series for charting. The sort by date is stable, so transactions
// sharing a date keep their original relative order; each transaction
// becomes its own point (no cross-day summation), preserving granularity
// for trend inspection. ChartPoints is pure: it never mutates its input and
// identical input always yields identical output.
func ChartPoints(transactions []models.Transaction) []ChartPoint {
	points := make([]ChartPoint, 0, len(transactions))
	if len(transactions) == 0 {
		return points
	}

	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		// Lexicographic order on ISO dates is chronological order.
		return sorted[i].Date < sorted[j].Date
	})

	for _, t := range sorted {
		points = append(points, ChartPoint{
			Label: chartLabel(t.Date),
			Value: t.Amount.InexactFloat64(),
		})
	}
	return points
}

// chartLabel renders a YYYY-MM-DD date as "DD Mon" for the x-axis. A date
// that fails to parse is labeled verbatim rather than dropped.
func chartLabel(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02 Jan")
}
