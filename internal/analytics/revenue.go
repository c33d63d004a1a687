package analytics

import "github.com/tastykitchen/admin-api/internal/models"

// Trend classifies the period-over-period direction of a revenue total.
type Trend string

const (
	TrendIncrease Trend = "increase"
	TrendDecrease Trend = "decrease"
	TrendFlat     Trend = "flat"
	// TrendUnknown marks a series with no baseline to compare against. It is
	// deliberately distinct from decrease so the dashboard can show "no
	// comparison data" instead of a misleading down arrow.
	TrendUnknown Trend = "unknown"
)

// RevenueReport is the derived summary of a revenue series over a date range.
type RevenueReport struct {
	Data  []models.RevenuePoint `json:"data"`
	Total float64               `json:"total"`
	Trend Trend                 `json:"trend"`
}

// ClassifyTrend maps a period-over-period delta to a trend: strictly positive
// is an increase, strictly negative a decrease, zero flat.
func ClassifyTrend(delta float64) Trend {
	switch {
	case delta > 0:
		return TrendIncrease
	case delta < 0:
		return TrendDecrease
	default:
		return TrendFlat
	}
}

// TrendAgainstBaseline classifies a total against a caller-supplied baseline.
// A nil baseline yields TrendUnknown.
func TrendAgainstBaseline(total float64, baseline *float64) Trend {
	if baseline == nil {
		return TrendUnknown
	}
	return ClassifyTrend(total - *baseline)
}

// SummarizeRevenue derives a RevenueReport from a raw series. The backend may
// supply a pre-aggregated total and a trend delta; when total is absent the
// series is summed here, and when the trend delta is absent the trend is
// unknown. An empty series always yields total 0 and a flat trend.
func SummarizeRevenue(points []models.RevenuePoint, total, trend *float64) RevenueReport {
	report := RevenueReport{Data: points}
	if report.Data == nil {
		report.Data = []models.RevenuePoint{}
	}

	if total != nil {
		report.Total = *total
	} else {
		for _, p := range report.Data {
			report.Total += p.Value
		}
	}

	switch {
	case len(report.Data) == 0 && trend == nil:
		report.Trend = TrendFlat
	case trend == nil:
		report.Trend = TrendUnknown
	default:
		report.Trend = ClassifyTrend(*trend)
	}
	return report
}
