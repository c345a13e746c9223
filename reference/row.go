package reference

import "github.com/arloliu/growth/format"

// PercentileColumns is the number of tabulated percentile curves per row.
const PercentileColumns = 9

// PercentileLevels lists the tabulated percentile levels in column order.
var PercentileLevels = [PercentileColumns]float64{3, 5, 10, 25, 50, 75, 90, 95, 97}

// Row is one population reference point.
//
// L is the Box-Cox power, M the median and S the coefficient of variation.
// P3 through P97 are the tabulated percentile values in canonical units.
type Row struct {
	Sex       format.Sex `json:"sex" yaml:"sex"`
	AgeMonths float64    `json:"age_months" yaml:"age_months"`
	L         float64    `json:"l" yaml:"l"`
	M         float64    `json:"m" yaml:"m"`
	S         float64    `json:"s" yaml:"s"`
	P3        float64    `json:"p3" yaml:"p3"`
	P5        float64    `json:"p5" yaml:"p5"`
	P10       float64    `json:"p10" yaml:"p10"`
	P25       float64    `json:"p25" yaml:"p25"`
	P50       float64    `json:"p50" yaml:"p50"`
	P75       float64    `json:"p75" yaml:"p75"`
	P90       float64    `json:"p90" yaml:"p90"`
	P95       float64    `json:"p95" yaml:"p95"`
	P97       float64    `json:"p97" yaml:"p97"`
}

// Usable reports whether the row can yield a percentile, i.e. M and S are
// both non-zero.
func (r Row) Usable() bool {
	return r.M != 0 && r.S != 0
}

// Percentiles returns P3..P97 in column order.
func (r Row) Percentiles() [PercentileColumns]float64 {
	return [PercentileColumns]float64{r.P3, r.P5, r.P10, r.P25, r.P50, r.P75, r.P90, r.P95, r.P97}
}

// SetPercentiles assigns P3..P97 from column order.
func (r *Row) SetPercentiles(p [PercentileColumns]float64) {
	r.P3, r.P5, r.P10, r.P25, r.P50 = p[0], p[1], p[2], p[3], p[4]
	r.P75, r.P90, r.P95, r.P97 = p[5], p[6], p[7], p[8]
}

// fields returns every interpolated numeric field: L, M, S, then P3..P97.
func (r Row) fields() [3 + PercentileColumns]float64 {
	return [3 + PercentileColumns]float64{
		r.L, r.M, r.S,
		r.P3, r.P5, r.P10, r.P25, r.P50, r.P75, r.P90, r.P95, r.P97,
	}
}

func (r *Row) setFields(f [3 + PercentileColumns]float64) {
	r.L, r.M, r.S = f[0], f[1], f[2]
	r.P3, r.P5, r.P10, r.P25, r.P50 = f[3], f[4], f[5], f[6], f[7]
	r.P75, r.P90, r.P95, r.P97 = f[8], f[9], f[10], f[11]
}
