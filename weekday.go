// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package laithean

import (
	"github.com/complex-gh/laithean_go/lang"
)

// Weekday is a day of the week. The low bits hold the 0-based position
// in the week, Monday first. Sunday may additionally carry the alternate
// flag, which selects the "Sabbath" rendering of its name and nothing else.
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const (
	// numWeekdays is the number of days in a week
	numWeekdays = 7

	// altSundayMask marks the alternate rendering of Sunday
	altSundayMask = 0x80

	// idMask selects the position bits of a Weekday
	idMask = altSundayMask - 1
)

// SundayAlt is Sunday with the alternate ("Là na Sàbaid") rendering.
const SundayAlt = Sunday | altSundayMask

// Weekdays lists every day of the week in order, Monday first.
var Weekdays = [numWeekdays]Weekday{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// WeekdayFromID returns the weekday at 0-based position n, reducing n
// modulo 7 first. Position 6 is always the plain Sunday.
func WeekdayFromID(n int) Weekday {
	n %= numWeekdays
	if n < 0 {
		n += numWeekdays
	}
	switch n {
	case 0:
		return Monday
	case 1:
		return Tuesday
	case 2:
		return Wednesday
	case 3:
		return Thursday
	case 4:
		return Friday
	case 5:
		return Saturday
	case 6:
		return Sunday
	}
	// n was reduced modulo 7 above
	panic("laithean: weekday id out of range")
}

// ID returns the 0-based position of w in the week, Monday being 0 and
// Sunday 6. The alternate flag does not change the id.
func (w Weekday) ID() int {
	return int(w&idMask) % numWeekdays
}

// Alt reports whether w is Sunday carrying the alternate flag.
func (w Weekday) Alt() bool {
	return w&altSundayMask != 0 && w.ID() == int(Sunday)
}

// WithAlt returns w with the alternate flag set or cleared. Only Sunday
// has an alternate form; any other day is returned unchanged.
func (w Weekday) WithAlt(alt bool) Weekday {
	plain := WeekdayFromID(w.ID())
	if alt && plain == Sunday {
		return SundayAlt
	}
	return plain
}

// Equal reports whether w and other are the same day of the week,
// ignoring the alternate flag. Sunday.Equal(SundayAlt) is true while
// Sunday == SundayAlt is not.
func (w Weekday) Equal(other Weekday) bool {
	return w.ID() == other.ID()
}

// OffsetBy returns the weekday offset days after w. Negative offsets move
// backwards and any magnitude is accepted.
func (w Weekday) OffsetBy(offset int64) Weekday {
	// floored remainder, always in [0, 6]
	remainder := offset % numWeekdays
	if remainder < 0 {
		remainder += numWeekdays
	}
	return WeekdayFromID(int(remainder) + w.ID())
}

// ScottishGaelic returns the Scottish Gaelic name of the day. The
// alternate Sunday is "Là na Sàbaid", the plain one "Didòmhnaich".
func (w Weekday) ScottishGaelic() string {
	return lang.ScottishGaelic.Weekday(w.ID(), w.Alt())
}

// ScottishGaelicAbbreviation returns the short Scottish Gaelic name of
// the day. Both forms of Sunday share the abbreviation "DiD".
func (w Weekday) ScottishGaelicAbbreviation() string {
	return lang.ScottishGaelic.WeekdayAbbreviation(w.ID())
}

// English returns the English name of the day.
func (w Weekday) English() string {
	return lang.English.Weekday(w.ID(), w.Alt())
}

// EnglishAbbreviation returns the three letter English name of the day.
func (w Weekday) EnglishAbbreviation() string {
	return lang.English.WeekdayAbbreviation(w.ID())
}

// String returns the English name of the day.
func (w Weekday) String() string {
	return w.English()
}
