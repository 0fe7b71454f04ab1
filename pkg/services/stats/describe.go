package stats

import (
	"math"
	"slices"
	"sort"

	"github.com/de-tools/sheet-metrics/pkg/models/domain"
)

// Describe computes the descriptive statistics of a value set. It reports
// false when values is empty. The input slice is left unmodified.
func Describe(values []float64) (domain.ColumnStats, bool) {
	if len(values) == 0 {
		return domain.ColumnStats{}, false
	}
	return domain.ColumnStats{
		Mean:   mean(values),
		Median: median(values),
		Std:    sampleStd(values),
		Min:    slices.Min(values),
		Max:    slices.Max(values),
		Count:  len(values),
	}, true
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median sorts a copy. Even-sized sets average the two middle elements.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// sampleStd uses the n-1 divisor. A single observation has no spread, so
// the result is exactly zero rather than NaN.
func sampleStd(values []float64) float64 {
	if len(values) <= 1 {
		return 0
	}
	m := mean(values)
	sq := 0.0
	for _, v := range values {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)-1))
}
