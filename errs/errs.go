// Package errs defines the sentinel errors returned at the IO, codec and
// configuration boundaries of the growth module.
//
// The percentile math itself never fails: unknown units pass through,
// degenerate reference rows and missing coverage fall back to the median.
// Errors only appear where bytes, files or options enter the system.
package errs

import "errors"

// Reference table errors.
var (
	ErrEmptyTable      = errors.New("reference table has no rows")
	ErrUnsortedTable   = errors.New("reference rows are not sorted by age for a sex")
	ErrNegativeAge     = errors.New("reference row has a negative age")
	ErrInvalidSex      = errors.New("invalid sex")
	ErrTableNotFound   = errors.New("reference table not found")
	ErrDuplicateTable  = errors.New("reference table already registered")
	ErrHashCollision   = errors.New("reference table key hash collision")
	ErrInvalidCSV      = errors.New("invalid reference CSV")
	ErrMissingColumn   = errors.New("reference CSV is missing a required column")
	ErrInvalidTypeName = errors.New("invalid measurement type")
)

// Table blob errors.
var (
	ErrInvalidHeaderSize    = errors.New("invalid table blob header size")
	ErrInvalidMagic         = errors.New("invalid table blob magic number")
	ErrInvalidCompression   = errors.New("invalid table blob compression type")
	ErrTruncatedPayload     = errors.New("table blob payload is truncated")
	ErrInvalidPayloadLength = errors.New("table blob payload length does not match row count")
	ErrChecksumMismatch     = errors.New("table blob checksum mismatch")
	ErrTooManyRows          = errors.New("reference table exceeds the maximum row count")
)

// Configuration errors.
var (
	ErrInvalidAgeBuffer  = errors.New("age buffer must be a non-negative number of months")
	ErrInvalidMaxAge     = errors.New("max chart age must be positive")
	ErrInvalidUnit       = errors.New("unsupported display unit")
	ErrInvalidLogLevel   = errors.New("invalid log level")
	ErrMissingBirthDate  = errors.New("birth date is required")
	ErrInvalidRecordDate = errors.New("invalid measurement date")
)
