// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package laithean

const (
	// daysInYear is the number of days in a common year
	daysInYear = 365

	// daysInLeapYear is the number of days in a leap year
	daysInLeapYear = 366
)

// isMult reports whether year is a multiple of val
func isMult(year, val uint32) bool {
	return year%val == 0
}

// IsLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
//
// A leap year is a multiple of 4 that is not a multiple of 100 unless it
// is also a multiple of 400. Written as a truth table over the three
// divisibility tests a, b and c this collapses to a && (b == c).
func IsLeapYear(year uint32) bool {
	return isMult(year, 4) && isMult(year, 100) == isMult(year, 400)
}

// YearDayCount returns the number of days in year, 366 for a leap year and
// 365 otherwise.
func YearDayCount(year uint32) int {
	if IsLeapYear(year) {
		return daysInLeapYear
	}
	return daysInYear
}

// MonthStartIndex returns the 0-based index within year of the first day
// of month. January is always 0.
func MonthStartIndex(year uint32, month Month) int {
	idx := 0
	for _, m := range Months[:month.Ordinal()] {
		idx += m.DayCount(year)
	}
	return idx
}
