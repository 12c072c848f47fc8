package stats

import (
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Variance calculates the variance of a slice of float64 values
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.Variance(data, nil)
}

// GrowthRates converts a series of period totals to fractional
// period-over-period growth. Zero-valued periods yield a zero rate.
// Rates[i] = (Total[i] - Total[i-1]) / Total[i-1]
func GrowthRates(totals []float64) []float64 {
	if len(totals) < 2 {
		return []float64{}
	}

	rates := make([]float64, len(totals)-1)
	for i := 1; i < len(totals); i++ {
		if totals[i-1] != 0 {
			rates[i-1] = (totals[i] - totals[i-1]) / totals[i-1]
		}
	}
	return rates
}

// Correlation calculates the Pearson correlation coefficient between two series
func Correlation(x, y []float64) float64 {
	if len(x) == 0 || len(y) == 0 || len(x) != len(y) {
		return 0
	}
	return stat.Correlation(x, y, nil)
}
