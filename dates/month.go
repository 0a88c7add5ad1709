package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Month rendering styles. Anything else falls back to the full localized
// name in the formatting library's own casing.
const (
	MonthDoubleDigit    = "double-digit"
	MonthFullLower      = "complete-month-lower"
	MonthFullUpper      = "complete-month-upper"
	MonthFullFirstUpper = "complete-month-first-upper"
	MonthAbbrFirstUpper = "short-month-first-upper"
	MonthAbbrUpper      = "short-month-upper"
	MonthAbbrLower      = "short-month-lower"
)

// FormatMonth renders a 1-12 month number in the given style and locale.
// Locale defaults to "en".
func FormatMonth(month int, style, locale string) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("month %d out of range 1-12", month)
	}
	if locale == "" {
		locale = "en"
	}

	if style == MonthDoubleDigit {
		return fmt.Sprintf("%02d", month), nil
	}

	// Synthetic date carrying only the month; year and day are arbitrary.
	ref := time.Date(2006, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	loc := localeFor(locale)
	full := monday.Format(ref, "January", loc)
	abbr := monday.Format(ref, "Jan", loc)

	switch style {
	case MonthFullLower:
		return strings.ToLower(full), nil
	case MonthFullUpper:
		return strings.ToUpper(full), nil
	case MonthFullFirstUpper:
		return titleCase(full, locale), nil
	case MonthAbbrFirstUpper:
		return titleCase(abbr, locale), nil
	case MonthAbbrUpper:
		return strings.ToUpper(abbr), nil
	case MonthAbbrLower:
		return strings.ToLower(abbr), nil
	default:
		return full, nil
	}
}

// FormatMonthOf extracts the month from the date and renders it like
// FormatMonth. The month is read from the instant's own calendar fields;
// no explicit zone is applied here, matching the other month entry point
// rather than Format.
func FormatMonthOf(date Input, style, locale string) (string, error) {
	i, err := Normalize(date)
	if err != nil {
		return "", err
	}
	return FormatMonth(int(i.Time().Month()), style, locale)
}

func titleCase(s, locale string) string {
	caser := cases.Title(language.Make(locale))
	return caser.String(strings.ToLower(s))
}
