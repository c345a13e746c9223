// Package lms converts measurements to population percentiles with the LMS
// method used by the CDC growth charts.
//
// Each reference age carries three parameters: L (Box-Cox power), M (median)
// and S (coefficient of variation). A value X maps to a z-score
//
//	z = ((X/M)^L − 1) / (L·S)   when L ≠ 0
//	z = ln(X/M) / S             when L = 0
//
// and the z-score maps to a percentile through the standard normal CDF. The
// CDF uses the Abramowitz–Stegun 7.1.26 approximation of erf, accurate to
// about 1.5e-7, so results match the growth-chart tooling it was built to
// agree with rather than math.Erf.
//
// Every function is pure and deterministic.
package lms

import (
	"math"

	"github.com/arloliu/growth/reference"
)

// Percentile bounds. The normal model never reaches 0 or 100.
const (
	MinPercentile = 0.1
	MaxPercentile = 99.9
	// MedianPercentile is returned when a row is degenerate.
	MedianPercentile = 50.0
)

// Abramowitz & Stegun 7.1.26.
const (
	erfP  = 0.3275911
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
)

// ZScore returns the Box-Cox z-score of value against (l, m, s).
// The result is undefined when m or s is zero; Percentile guards that case.
func ZScore(value, l, m, s float64) float64 {
	if l == 0 {
		return math.Log(value/m) / s
	}

	return (math.Pow(value/m, l) - 1) / (l * s)
}

// ValueAtZ is the inverse of ZScore: the value whose z-score is z.
func ValueAtZ(z, l, m, s float64) float64 {
	if l == 0 {
		return m * math.Exp(s*z)
	}

	return m * math.Pow(1+l*s*z, 1/l)
}

// Erf approximates the error function. The polynomial is evaluated on |x|
// and the sign of x is reapplied.
func Erf(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	x = math.Abs(x)

	t := 1 / (1 + erfP*x)
	y := 1 - ((((erfA5*t+erfA4)*t+erfA3)*t+erfA2)*t+erfA1)*t*math.Exp(-x*x)

	return sign * y
}

// NormalCDF returns Φ(z) for the standard normal distribution.
func NormalCDF(z float64) float64 {
	return 0.5 * (1 + Erf(z/math.Sqrt2))
}

// Percentile returns the percentile of value against (l, m, s), clamped to
// [MinPercentile, MaxPercentile] and rounded to one decimal place.
//
// When m or s is zero, or the transform is undefined for value, no z-score
// exists and MedianPercentile is returned.
func Percentile(value, l, m, s float64) float64 {
	if m == 0 || s == 0 {
		return MedianPercentile
	}

	p := NormalCDF(ZScore(value, l, m, s)) * 100
	if math.IsNaN(p) {
		// non-positive value with a fractional L
		return MedianPercentile
	}
	p = min(max(p, MinPercentile), MaxPercentile)

	return math.Round(p*10) / 10
}

// PercentileForRow is Percentile with the parameters of row.
func PercentileForRow(value float64, row reference.Row) float64 {
	return Percentile(value, row.L, row.M, row.S)
}
