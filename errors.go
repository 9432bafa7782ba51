// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package laithean

// Status represents the result of a fallible laithean operation
type Status int

const (
	// StatusOK indicates success
	StatusOK Status = iota

	// StatusErrDay indicates a day index that does not exist in its month
	StatusErrDay

	// StatusErrFormat indicates an invalid binary date format
	StatusErrFormat

	// StatusErrLang indicates an unknown language or month name
	StatusErrLang

	// StatusErrRange indicates a value outside the supported year range
	StatusErrRange
)

// Error returns the error message for the status
func (s Status) Error() string {
	switch s {
	case StatusOK:
		return "success"
	case StatusErrDay:
		return "day index out of range for month"
	case StatusErrFormat:
		return "invalid date format"
	case StatusErrLang:
		return "unknown language or name"
	case StatusErrRange:
		return "year out of supported range"
	default:
		return "unknown error"
	}
}
