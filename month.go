// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package laithean

import (
	"github.com/complex-gh/laithean_go/lang"
)

// Month is a month of the Gregorian calendar. Its value is the 0-based
// position of the month within the year.
type Month uint8

const (
	January Month = iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// numMonths is the number of months in a year
const numMonths = 12

// Months lists every month in calendar order.
var Months = [numMonths]Month{
	January,
	February,
	March,
	April,
	May,
	June,
	July,
	August,
	September,
	October,
	November,
	December,
}

// MonthFromOrdinal returns the month at 0-based position n. Any n is
// accepted: it is reduced modulo 12 first, so 12 is January and -1 is
// December.
func MonthFromOrdinal(n int) Month {
	n %= numMonths
	if n < 0 {
		n += numMonths
	}
	switch n {
	case 0:
		return January
	case 1:
		return February
	case 2:
		return March
	case 3:
		return April
	case 4:
		return May
	case 5:
		return June
	case 6:
		return July
	case 7:
		return August
	case 8:
		return September
	case 9:
		return October
	case 10:
		return November
	case 11:
		return December
	}
	// n was reduced modulo 12 above
	panic("laithean: month ordinal out of range")
}

// Ordinal returns the 0-based position of m within the year.
func (m Month) Ordinal() int {
	return int(m) % numMonths
}

// DayCount returns the number of days in m for the given year.
func (m Month) DayCount(year uint32) int {
	switch MonthFromOrdinal(m.Ordinal()) {
	case February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

// After reports whether m comes strictly later in the year than other.
func (m Month) After(other Month) bool {
	return m.Ordinal() > other.Ordinal()
}

// Before reports whether m comes strictly earlier in the year than other.
func (m Month) Before(other Month) bool {
	return other.After(m)
}

// ScottishGaelic returns the Scottish Gaelic name of the month.
//
// The name carries no definite article, which is the form used inside a
// date. Use ScottishGaelicWithDefArt when the article is needed.
func (m Month) ScottishGaelic() string {
	return lang.ScottishGaelic.Month(m.Ordinal())
}

// ScottishGaelicWithDefArt returns the Scottish Gaelic name of the month
// with its definite article, for example "am Faoilleach". If capitalize
// is set the article is capitalized: "Am Faoilleach".
func (m Month) ScottishGaelicWithDefArt(capitalize bool) string {
	name, _ := lang.ScottishGaelic.MonthWithDefArt(m.Ordinal(), capitalize)
	return name
}

// English returns the English name of the month.
func (m Month) English() string {
	return lang.English.Month(m.Ordinal())
}

// String returns the English name of the month.
func (m Month) String() string {
	return m.English()
}

// ParseMonthName looks up a month by name in every supported language.
// Accents and case are ignored and any unambiguous prefix of at least
// three letters is accepted, so "mart", "Màrt" and "Mar" all return March.
func ParseMonthName(name string) (Month, error) {
	idx, err := lang.FindMonth(name)
	if err != nil {
		return January, StatusErrLang
	}
	return MonthFromOrdinal(idx), nil
}
