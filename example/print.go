// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/complex-gh/laithean_go"
	"github.com/complex-gh/laithean_go/lang"
)

// printDates writes every date of c.Year, or of c.Month within it, to w.
func printDates(w io.Writer, c *config, logger *zap.Logger) error {
	l, err := lang.Match(c.Lang)
	if err != nil {
		logger.Error("language lookup failed", zap.String("lang", c.Lang), zap.Error(err))
		return fmt.Errorf("select language: %w", err)
	}

	only := -1
	if c.Month != "" {
		m, err := laithean.ParseMonthName(c.Month)
		if err != nil {
			logger.Error("month lookup failed", zap.String("month", c.Month), zap.Error(err))
			return fmt.Errorf("select month %q: %w", c.Month, err)
		}
		only = m.Ordinal()
	}

	logger.Info("printing dates",
		zap.Uint32("year", c.Year),
		zap.String("lang", l.GetLangNameEn()),
		zap.Bool("leap", laithean.IsLeapYear(c.Year)),
		zap.Int("month", only))

	n := 0
	for d := range laithean.DatesIn(c.Year) {
		if only >= 0 && d.Month().Ordinal() != only {
			continue
		}
		if _, err := fmt.Fprintln(w, render(d, l, c.AltSunday)); err != nil {
			return err
		}
		n++
	}
	logger.Debug("done", zap.Int("dates", n))
	return nil
}

// render formats d in l, naming Sunday as the Sabbath when altSunday is set.
func render(d laithean.Date, l *lang.Language, altSunday bool) string {
	if !altSunday {
		return d.Format(l, "")
	}
	w := d.DayOfWeek().WithAlt(true)
	return l.FormatDate(l.Weekday(w.ID(), w.Alt()), d.DayOfMonth(), l.Month(d.Month().Ordinal()), d.Year())
}
