package dates

import (
	"strings"

	"github.com/goodsign/monday"
)

// DefaultLocale is applied when Format receives an empty locale.
const DefaultLocale = "es"

// DefaultLayout is applied when Format receives an empty layout, e.g.
// "01 ene 2024, 23:30". Layout tokens follow Go reference-time semantics;
// this package defines no tokens of its own.
const DefaultLayout = "02 Jan 2006, 15:04"

// Format renders the date in the named zone using the given locale for
// month and weekday names. Empty locale and layout fall back to
// DefaultLocale and DefaultLayout.
func Format(date Input, zone, locale, layout string) (string, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	if layout == "" {
		layout = DefaultLayout
	}

	i, err := Normalize(date)
	if err != nil {
		return "", err
	}
	i, err = i.In(zone)
	if err != nil {
		return "", err
	}

	return monday.Format(i.Time(), layout, localeFor(locale)), nil
}

// FormatDay renders the date as "yyyy-MM-dd" in the named zone.
func FormatDay(date Input, zone string) (string, error) {
	i, err := Normalize(date)
	if err != nil {
		return "", err
	}
	i, err = i.In(zone)
	if err != nil {
		return "", err
	}
	return i.Time().Format(dayLayout), nil
}

// localeFor maps a BCP-47-ish tag ("es", "en-US", "pt_BR") onto a supported
// formatting locale. Unknown tags fall back to en_US.
func localeFor(tag string) monday.Locale {
	norm := strings.ReplaceAll(tag, "-", "_")

	// Exact region match first.
	for _, loc := range monday.ListLocales() {
		if strings.EqualFold(string(loc), norm) {
			return loc
		}
	}

	// Bare language code: pick a canonical region.
	switch strings.ToLower(strings.SplitN(norm, "_", 2)[0]) {
	case "en":
		return monday.LocaleEnUS
	case "es":
		return monday.LocaleEsES
	case "fr":
		return monday.LocaleFrFR
	case "de":
		return monday.LocaleDeDE
	case "it":
		return monday.LocaleItIT
	case "pt":
		return monday.LocalePtPT
	case "nl":
		return monday.LocaleNlNL
	case "ru":
		return monday.LocaleRuRU
	case "ja":
		return monday.LocaleJaJP
	case "ko":
		return monday.LocaleKoKR
	case "zh":
		return monday.LocaleZhCN
	default:
		return monday.LocaleEnUS
	}
}
