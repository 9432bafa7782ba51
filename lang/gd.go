// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package lang

import (
	"golang.org/x/text/language"
)

// ScottishGaelic is the Scottish Gaelic (Gàidhlig) name table
var ScottishGaelic = &Language{
	tag:       language.MustParse("gd"),
	name:      "Gàidhlig",
	nameEn:    "Scottish Gaelic",
	layout:    "%s, %d %s %d",
	hasDefArt: true,
	months: [NumMonths]string{
		"Faoilleach",
		"Gearran",
		"Màrt",
		"Giblean",
		"Cèitean",
		"Ògmhios",
		"Iuchar",
		"Lùnastal",
		"Sultain",
		"Dàmhair",
		"Samhain",
		"Dùbhlachd",
	},
	monthsArt: [2][NumMonths]string{
		{
			"am Faoilleach",
			"an Gearran",
			"am Màrt",
			"an Giblean",
			"an Cèitean",
			"an t-Ògmhios",
			"an t-Iuchar",
			"an Lùnastal",
			"an t-Sultain",
			"an Dàmhair",
			"an t-Samhain",
			"an Dùbhlachd",
		},
		{
			"Am Faoilleach",
			"An Gearran",
			"Am Màrt",
			"An Giblean",
			"An Cèitean",
			"An t-Ògmhios",
			"An t-Iuchar",
			"An Lùnastal",
			"An t-Sultain",
			"An Dàmhair",
			"An t-Samhain",
			"An Dùbhlachd",
		},
	},
	weekdays: [NumWeekdays]string{
		"Diluain",
		"Dimàirt",
		"Diciadain",
		"Diardaoin",
		"Dihaoine",
		"Disathairne",
		"Didòmhnaich",
	},
	altSunday: "Là na Sàbaid",
	abbrevs: [NumWeekdays]string{
		"DiL",
		"DiM",
		"DiC",
		"Dia",
		"Dih",
		"DiS",
		"DiD",
	},
}
