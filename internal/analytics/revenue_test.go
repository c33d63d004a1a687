package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tastykitchen/admin-api/internal/analytics"
	"github.com/tastykitchen/admin-api/internal/models"
)

func f64(v float64) *float64 { return &v }

func TestSummarizeRevenueEmptySeries(t *testing.T) {
	report := analytics.SummarizeRevenue(nil, nil, nil)

	assert.Equal(t, 0.0, report.Total)
	assert.Equal(t, analytics.TrendFlat, report.Trend)
	assert.NotNil(t, report.Data)
	assert.Empty(t, report.Data)
}

func TestSummarizeRevenueSumsWhenTotalMissing(t *testing.T) {
	points := []models.RevenuePoint{
		{Date: "2024-01-01", Value: 100},
		{Date: "2024-01-02", Value: 250.5},
		{Date: "2024-01-03", Value: 49.5},
	}

	report := analytics.SummarizeRevenue(points, nil, f64(12))
	assert.Equal(t, 400.0, report.Total)
	assert.Equal(t, analytics.TrendIncrease, report.Trend)
}

func TestSummarizeRevenuePrefersSuppliedTotal(t *testing.T) {
	points := []models.RevenuePoint{{Date: "2024-01-01", Value: 10}}

	report := analytics.SummarizeRevenue(points, f64(999), f64(-3))
	assert.Equal(t, 999.0, report.Total)
	assert.Equal(t, analytics.TrendDecrease, report.Trend)
}

func TestSummarizeRevenueNoBaselineIsUnknown(t *testing.T) {
	points := []models.RevenuePoint{{Date: "2024-01-01", Value: 10}}

	report := analytics.SummarizeRevenue(points, nil, nil)
	assert.Equal(t, analytics.TrendUnknown, report.Trend)
}

func TestSummarizeRevenueSingleDay(t *testing.T) {
	points := []models.RevenuePoint{{Date: "2024-01-01", Value: 42}}

	report := analytics.SummarizeRevenue(points, nil, nil)
	assert.Equal(t, 42.0, report.Total)
	assert.Equal(t, analytics.TrendIncrease, analytics.TrendAgainstBaseline(report.Total, f64(0)))
}

func TestClassifyTrend(t *testing.T) {
	assert.Equal(t, analytics.TrendIncrease, analytics.ClassifyTrend(0.01))
	assert.Equal(t, analytics.TrendDecrease, analytics.ClassifyTrend(-0.01))
	assert.Equal(t, analytics.TrendFlat, analytics.ClassifyTrend(0))
}

func TestTrendAgainstBaseline(t *testing.T) {
	assert.Equal(t, analytics.TrendUnknown, analytics.TrendAgainstBaseline(42, nil))
	assert.Equal(t, analytics.TrendIncrease, analytics.TrendAgainstBaseline(42, f64(10)))
	assert.Equal(t, analytics.TrendDecrease, analytics.TrendAgainstBaseline(5, f64(10)))
	assert.Equal(t, analytics.TrendFlat, analytics.TrendAgainstBaseline(10, f64(10)))
}
