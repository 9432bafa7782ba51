// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package laithean

import (
	"github.com/complex-gh/laithean_go/lang"
)

// Format renders d in the language l, for example
// "Tuesday, 15 March 2022". The format argument is reserved for custom
// layouts and is currently ignored; pass "".
func (d Date) Format(l *lang.Language, format string) string {
	w := d.DayOfWeek()
	return l.FormatDate(
		l.Weekday(w.ID(), w.Alt()),
		d.DayOfMonth(),
		l.Month(d.month.Ordinal()),
		d.year,
	)
}

// ScottishGaelic renders d in Scottish Gaelic, for example
// "Dimàirt, 15 Màrt 2022". The format argument is reserved and ignored.
func (d Date) ScottishGaelic(format string) string {
	return d.Format(lang.ScottishGaelic, format)
}

// English renders d in English, for example "Tuesday, 15 March 2022".
// The format argument is reserved and ignored.
func (d Date) English(format string) string {
	return d.Format(lang.English, format)
}

// String renders d in Scottish Gaelic.
func (d Date) String() string {
	return d.ScottishGaelic("")
}
