// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package laithean

import (
	"testing"
)

func TestJulianDay(t *testing.T) {
	cases := []struct {
		date Date
		want int
	}{
		{New(2006, January, 1), 2453738},
		{New(2023, July, 4), 2460131},
		{New(1970, January, 0), 2440588},
		{New(1999, December, 30), 2451544},
		{New(2099, February, 27), 2487763},
		{ReferenceDate, 2459654},
	}
	for _, c := range cases {
		if got := c.date.JulianDay(); got != c.want {
			t.Errorf("%v: want %d, have %d", c.date, c.want, got)
		}
		back, err := FromJulianDay(c.want)
		if err != nil {
			t.Errorf("FromJulianDay(%d): %v", c.want, err)
			continue
		}
		if back != c.date {
			t.Errorf("FromJulianDay(%d): want %v, have %v", c.want, c.date, back)
		}
	}
}

func TestUniqueValueMatchesDifference(t *testing.T) {
	dates := []Date{
		New(0, March, 0),
		New(1582, October, 14),
		New(1900, February, 27),
		New(2000, February, 28),
		ReferenceDate,
		New(2100, December, 30),
	}
	for _, a := range dates {
		for _, b := range dates {
			if got, want := b.UniqueValue()-a.UniqueValue(), a.Difference(b); got != want {
				t.Errorf("%v -> %v: unique values differ by %d, Difference is %d", a, b, got, want)
			}
		}
	}
}

func TestDayOfWeekMatchesJulianDay(t *testing.T) {
	// Julian day 0 is a Monday
	for d := range DatesIn(2024) {
		if got, want := d.DayOfWeek(), WeekdayFromID(d.JulianDay()); got != want {
			t.Fatalf("%v: want %v, have %v", d, want, got)
		}
	}
}

func TestFromJulianDayRange(t *testing.T) {
	if _, err := FromJulianDay(0); err != StatusErrRange {
		t.Errorf("want StatusErrRange, have %v", err)
	}
	first := New(0, January, 0)
	d, err := FromJulianDay(first.JulianDay())
	if err != nil {
		t.Fatal(err)
	}
	if d != first {
		t.Errorf("want %v, have %v", first, d)
	}
	if _, err := FromJulianDay(first.JulianDay() - 1); err != StatusErrRange {
		t.Errorf("want StatusErrRange, have %v", err)
	}
}
