// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package lang holds the month and weekday name tables of every language
// laithean can render dates in.
package lang

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// NumMonths is the number of month names in each language
	NumMonths = 12

	// NumWeekdays is the number of weekday names in each language
	NumWeekdays = 7

	// minPrefix is the shortest accepted prefix of a month name
	minPrefix = 3
)

var (
	// ErrUnknownLang is returned when no table matches a language tag
	ErrUnknownLang = errors.New("lang: unsupported language")

	// ErrUnknownName is returned when a name is in no table
	ErrUnknownName = errors.New("lang: unknown name")

	// ErrAmbiguousName is returned when a name prefix matches more than one month
	ErrAmbiguousName = errors.New("lang: ambiguous name")
)

// Language is the set of names used to render dates in one language
type Language struct {
	tag       language.Tag
	name      string
	nameEn    string
	layout    string
	hasDefArt bool
	months    [NumMonths]string
	monthsArt [2][NumMonths]string
	weekdays  [NumWeekdays]string
	altSunday string
	abbrevs   [NumWeekdays]string
}

var (
	// languages contains all supported languages, the default first
	languages = []*Language{ScottishGaelic, English}

	matcher = language.NewMatcher(tags())
)

func init() {
	for _, l := range languages {
		l.compose()
	}
}

func tags() []language.Tag {
	t := make([]language.Tag, len(languages))
	for i, l := range languages {
		t[i] = l.tag
	}
	return t
}

// compose stores every name in composed canonical form (NFC)
func (l *Language) compose() {
	for i := range l.months {
		l.months[i] = norm.NFC.String(l.months[i])
		l.monthsArt[0][i] = norm.NFC.String(l.monthsArt[0][i])
		l.monthsArt[1][i] = norm.NFC.String(l.monthsArt[1][i])
	}
	for i := range l.weekdays {
		l.weekdays[i] = norm.NFC.String(l.weekdays[i])
		l.abbrevs[i] = norm.NFC.String(l.abbrevs[i])
	}
	l.altSunday = norm.NFC.String(l.altSunday)
}

// GetNumLangs returns the number of supported languages
func GetNumLangs() int {
	return len(languages)
}

// GetLang returns a language by its index
func GetLang(i int) *Language {
	if i < 0 || i >= len(languages) {
		return nil
	}
	return languages[i]
}

// Match returns the supported language that best matches the BCP 47 tag,
// for example "gd", "gd-GB" or "en-US".
func Match(tag string) (*Language, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownLang, tag, err)
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLang, tag)
	}
	return languages[idx], nil
}

// GetLangName returns the native name of a language
func (l *Language) GetLangName() string {
	return l.name
}

// GetLangNameEn returns the English name of a language
func (l *Language) GetLangNameEn() string {
	return l.nameEn
}

// Tag returns the BCP 47 tag of a language
func (l *Language) Tag() language.Tag {
	return l.tag
}

// Month returns the name of the month with 0-based index i
func (l *Language) Month(i int) string {
	return l.months[i%NumMonths]
}

// HasDefArt reports whether the language has definite article month forms
func (l *Language) HasDefArt() bool {
	return l.hasDefArt
}

// MonthWithDefArt returns the name of the month with 0-based index i
// preceded by the definite article, capitalized if capitalize is set. For
// a language without article forms it returns the plain name and false.
func (l *Language) MonthWithDefArt(i int, capitalize bool) (string, bool) {
	if !l.hasDefArt {
		return l.Month(i), false
	}
	c := 0
	if capitalize {
		c = 1
	}
	return l.monthsArt[c][i%NumMonths], true
}

// Weekday returns the name of the weekday with 0-based index i, Monday
// being 0. alt selects the alternate name of Sunday.
func (l *Language) Weekday(i int, alt bool) string {
	i %= NumWeekdays
	if alt && i == NumWeekdays-1 {
		return l.altSunday
	}
	return l.weekdays[i]
}

// WeekdayAbbreviation returns the short name of the weekday with 0-based index i
func (l *Language) WeekdayAbbreviation(i int) string {
	return l.abbrevs[i%NumWeekdays]
}

// FormatDate renders the named weekday, 1-based day of the month, named
// month and year in the language's date layout
func (l *Language) FormatDate(weekday string, day int, month string, year uint32) string {
	return fmt.Sprintf(l.layout, weekday, day, month, year)
}

// fold case folds s and strips its accents, so "Màrt" becomes "mart"
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), cases.Fold(), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return out
}

// FindMonth finds a month name, with or without its definite article, in
// the language and returns its 0-based index. Case and accents are
// ignored and a unique prefix of at least three letters is accepted.
// It returns -1 when nothing matches and -2 when the prefix is ambiguous.
func (l *Language) FindMonth(name string) int {
	key := fold(name)
	if len([]rune(key)) < minPrefix {
		return -1
	}
	found := -1
	for i := 0; i < NumMonths; i++ {
		candidates := []string{l.months[i]}
		if l.hasDefArt {
			candidates = append(candidates, l.monthsArt[0][i])
		}
		for _, c := range candidates {
			c = fold(c)
			if c == key {
				return i
			}
			if strings.HasPrefix(c, key) {
				if found >= 0 && found != i {
					return -2
				}
				found = i
			}
		}
	}
	return found
}

// FindMonth finds a month name in every supported language and returns
// its 0-based index. Languages may agree on a prefix ("mar" is March in
// both English and Scottish Gaelic); if they disagree the name is
// ambiguous.
func FindMonth(name string) (int, error) {
	found := -1
	for _, l := range languages {
		switch idx := l.FindMonth(name); {
		case idx == -2:
			return -1, fmt.Errorf("%w: %q", ErrAmbiguousName, name)
		case idx >= 0:
			if found >= 0 && found != idx {
				return -1, fmt.Errorf("%w: %q", ErrAmbiguousName, name)
			}
			found = idx
		}
	}
	if found < 0 {
		return -1, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return found, nil
}
