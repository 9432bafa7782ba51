// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package laithean

import (
	"testing"
)

func TestWeekdayFromIDReversible(t *testing.T) {
	for n := 0; n < 7; n++ {
		if got := WeekdayFromID(n).ID(); got != n {
			t.Errorf("ID(WeekdayFromID(%d)): have %d", n, got)
		}
	}
	// the alternate flag is not recoverable from the id
	for _, w := range []Weekday{Sunday, SundayAlt} {
		if got := WeekdayFromID(w.ID()); got != Sunday {
			t.Errorf("WeekdayFromID(%v.ID()): want plain Sunday, have %#x", w, uint8(got))
		}
	}
	if got := WeekdayFromID(-1); got != Sunday {
		t.Errorf("WeekdayFromID(-1): want Sunday, have %v", got)
	}
	if got := WeekdayFromID(15); got != Tuesday {
		t.Errorf("WeekdayFromID(15): want Tuesday, have %v", got)
	}
}

func TestWeekdayAlt(t *testing.T) {
	if Sunday.Alt() {
		t.Error("plain Sunday reports alt")
	}
	if !SundayAlt.Alt() {
		t.Error("SundayAlt does not report alt")
	}
	if SundayAlt.ID() != 6 {
		t.Errorf("SundayAlt id: want 6, have %d", SundayAlt.ID())
	}
	if !Sunday.Equal(SundayAlt) || Sunday == SundayAlt {
		t.Error("Equal must ignore the alt flag, == must not")
	}
	if got := Monday.WithAlt(true); got != Monday {
		t.Errorf("Monday.WithAlt(true): have %#x", uint8(got))
	}
	if got := Sunday.WithAlt(true); got != SundayAlt {
		t.Errorf("Sunday.WithAlt(true): have %#x", uint8(got))
	}
	if got := SundayAlt.WithAlt(false); got != Sunday {
		t.Errorf("SundayAlt.WithAlt(false): have %#x", uint8(got))
	}
}

func TestWeekdayOffsetBy(t *testing.T) {
	cases := []struct {
		name   string
		from   Weekday
		offset int64
		want   Weekday
	}{
		{"forward", Monday, 1, Tuesday},
		{"wraparound", Sunday, 1, Monday},
		{"alt wraparound", SundayAlt, 1, Monday},
		{"backward", Monday, -1, Sunday},
		{"full week", Wednesday, 7, Wednesday},
		{"full week back", Wednesday, -7, Wednesday},
		{"large", Tuesday, 7*1000 + 3, Friday},
		{"large negative", Tuesday, -(7*1000 + 3), Saturday},
		{"minus eight", Friday, -8, Thursday},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.from.OffsetBy(c.offset); got != c.want {
				t.Errorf("%v.OffsetBy(%d): want %v, have %v", c.from, c.offset, c.want, got)
			}
		})
	}

	for _, w := range Weekdays {
		if got := w.OffsetBy(0); got != w {
			t.Errorf("%v.OffsetBy(0): have %v", w, got)
		}
	}
}

func TestWeekdayNames(t *testing.T) {
	gd := []string{"Diluain", "Dimàirt", "Diciadain", "Diardaoin", "Dihaoine", "Disathairne", "Didòmhnaich"}
	en := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for i, w := range Weekdays {
		if got := w.ScottishGaelic(); got != gd[i] {
			t.Errorf("want %s, have %s", gd[i], got)
		}
		if got := w.English(); got != en[i] {
			t.Errorf("want %s, have %s", en[i], got)
		}
		if got := w.EnglishAbbreviation(); got != en[i][:3] {
			t.Errorf("want %s, have %s", en[i][:3], got)
		}
	}
	if got := SundayAlt.ScottishGaelic(); got != "Là na Sàbaid" {
		t.Errorf("want Là na Sàbaid, have %s", got)
	}
	if got, want := SundayAlt.ScottishGaelicAbbreviation(), Sunday.ScottishGaelicAbbreviation(); got != want || got != "DiD" {
		t.Errorf("want DiD for both Sundays, have %s and %s", got, want)
	}
	if got := Thursday.ScottishGaelicAbbreviation(); got != "Dia" {
		t.Errorf("want Dia, have %s", got)
	}
}
