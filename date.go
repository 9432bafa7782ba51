// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package laithean is a Scottish Gaelic (Gàidhlig) and English date
// library for the proleptic Gregorian calendar.
//
// A Date is an immutable (year, month, day index) value. The day of the
// week is never computed from a closed formula: it is derived by counting
// the days between a date and ReferenceDate, whose day of the week is
// known, and walking the week that many steps.
package laithean

import (
	"fmt"
	"iter"
)

// Date is a calendar date. The day is held as a 0-based index within the
// month; Day returns that index and DayOfMonth the familiar 1-based one.
// Dates are values: compare them with == and copy them freely.
type Date struct {
	year  uint32
	month Month
	day   uint8
}

var (
	// ReferenceDate is the anchor of all day of week calculations,
	// 15 March 2022.
	ReferenceDate = Date{year: 2022, month: March, day: 14}

	// ReferenceWeekday is the day of the week of ReferenceDate.
	ReferenceWeekday = Tuesday
)

// Valid reports whether day is a valid 0-based day index of month in year.
func Valid(year uint32, month Month, day uint8) bool {
	return int(month) < numMonths && int(day) < month.DayCount(year)
}

// New returns the date for the 0-based day index of month in year.
//
// The index must be less than month.DayCount(year); New panics otherwise.
// Use Make for input that has not been checked.
func New(year uint32, month Month, day uint8) Date {
	if !Valid(year, month, day) {
		panic(fmt.Sprintf("laithean: invalid date: day index %d of %v %d", day, month, year))
	}
	return Date{year: year, month: month, day: day}
}

// Make is like New but returns StatusErrDay instead of panicking.
func Make(year uint32, month Month, day uint8) (Date, error) {
	if !Valid(year, month, day) {
		return Date{}, StatusErrDay
	}
	return Date{year: year, month: month, day: day}, nil
}

// Year returns the year of d.
func (d Date) Year() uint32 {
	return d.year
}

// Month returns the month of d.
func (d Date) Month() Month {
	return d.month
}

// Day returns the 0-based index of d within its month.
func (d Date) Day() uint8 {
	return d.day
}

// DayOfMonth returns the 1-based day of the month of d.
func (d Date) DayOfMonth() int {
	return int(d.day) + 1
}

// DayIndexInYear returns the 0-based index of d within its year,
// 0 for 1 January.
func (d Date) DayIndexInYear() int {
	return MonthStartIndex(d.year, d.month) + int(d.day)
}

// After reports whether d is chronologically later than other.
func (d Date) After(other Date) bool {
	if d.year != other.year {
		return d.year > other.year
	}
	if d.month != other.month {
		return d.month.After(other.month)
	}
	return d.day > other.day
}

// Before reports whether d is chronologically earlier than other.
func (d Date) Before(other Date) bool {
	return other.After(d)
}

// Compare returns -1 if d is before other, +1 if d is after other and 0
// if they are the same date.
func (d Date) Compare(other Date) int {
	switch {
	case d.After(other):
		return 1
	case other.After(d):
		return -1
	default:
		return 0
	}
}

// Difference returns the number of days from d to other: positive when
// other is later than d, negative when it is earlier and zero when the
// dates are equal.
func (d Date) Difference(other Date) int64 {
	if d.After(other) {
		return -other.Difference(d)
	}
	var days int64
	for y := d.year; y < other.year; y++ {
		days += int64(YearDayCount(y))
	}
	return days + int64(other.DayIndexInYear()) - int64(d.DayIndexInYear())
}

// DayOfWeek returns the day of the week of d.
func (d Date) DayOfWeek() Weekday {
	return ReferenceWeekday.OffsetBy(ReferenceDate.Difference(d))
}

// DatesIn returns an iterator over every date of year in order.
func DatesIn(year uint32) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for _, m := range Months {
			for day := 0; day < m.DayCount(year); day++ {
				if !yield(Date{year: year, month: m, day: uint8(day)}) {
					return
				}
			}
		}
	}
}
