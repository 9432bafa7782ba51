// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package laithean

import (
	"math"

	"github.com/carlosjhr64/jd"
)

// JulianDay returns the Julian day number of d, the count of days since
// 24 November 4714 BC in the proleptic Gregorian calendar.
func (d Date) JulianDay() int {
	return jd.YMD2J(int(d.year), d.month.Ordinal()+1, d.DayOfMonth())
}

// UniqueValue returns a scalar key for d that increases by one per day, so
// that b.UniqueValue()-a.UniqueValue() == a.Difference(b). It is the
// Julian day number.
func (d Date) UniqueValue() int64 {
	return int64(d.JulianDay())
}

// FromJulianDay returns the date with Julian day number n. Days that fall
// outside years 0 to math.MaxUint32 return StatusErrRange.
func FromJulianDay(n int) (Date, error) {
	y, m, day := jd.J2YMD(n)
	if y < 0 || int64(y) > math.MaxUint32 || m < 1 || m > numMonths || day < 1 {
		return Date{}, StatusErrRange
	}
	return Make(uint32(y), MonthFromOrdinal(m-1), uint8(day-1))
}
