// Package chart annotates raw measurements with age and percentile, and merges
// them with reference curves into a series ready for plotting.
//
// The flow is two pure steps:
//
//	annotated := chart.Annotate(records, rows, format.Weight, birth, "LB")
//	points := chart.Build(rows, annotated, "LB", format.Weight, 36)
//
// Annotate never drops a measurement for lack of reference coverage: a point
// with no reference row is kept at the 50th percentile. It only drops points
// whose age falls outside the table's age domain.
//
// Build keeps every reference tick so that curves draw continuously, attaches
// each measurement to the tick at its nearest half month, and inserts an
// interpolated tick for measurements that land between reference ages.
package chart
