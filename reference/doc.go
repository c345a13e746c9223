// Package reference models CDC LMS reference tables and interpolates a
// reference row for an arbitrary age.
//
// A Table holds the rows of one measurement type for both sexes. For a fixed
// sex the rows are sorted ascending by AgeMonths and carry the Box-Cox
// parameters L, M and S together with the nine tabulated percentile curves
// P3 through P97 in canonical units.
//
// # Lookup
//
//	rows := table.ForSex(format.Male)
//	row, ok := reference.RowForAge(rows, 6.25)
//	if !ok {
//	    // empty table: callers fall back to the median
//	}
//
// RowForAge never extrapolates. Ages below the first row resolve to the first
// row and ages above the last row resolve to the last row.
//
// # Storage
//
// Tables are loaded from the CDC CSV schema with ParseCSV, or from the compact
// table blob format written by Encode and read by Decode. A table blob is a
// 32-byte header followed by a payload of fixed-size rows, optionally
// compressed with one of the compress package codecs and protected by an
// xxHash64 checksum. A Catalog keys loaded tables by measurement type and sex.
package reference
