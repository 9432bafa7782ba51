// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package lang

import (
	"golang.org/x/text/language"
)

// English is the English name table
var English = &Language{
	tag:    language.English,
	name:   "English",
	nameEn: "English",
	layout: "%s, %d %s %d",
	months: [NumMonths]string{
		"January",
		"February",
		"March",
		"April",
		"May",
		"June",
		"July",
		"August",
		"September",
		"October",
		"November",
		"December",
	},
	weekdays: [NumWeekdays]string{
		"Monday",
		"Tuesday",
		"Wednesday",
		"Thursday",
		"Friday",
		"Saturday",
		"Sunday",
	},
	altSunday: "Sabbath",
	abbrevs: [NumWeekdays]string{
		"Mon",
		"Tue",
		"Wed",
		"Thu",
		"Fri",
		"Sat",
		"Sun",
	},
}
