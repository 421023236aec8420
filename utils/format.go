package utils

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var enUS = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a USD amount with thousands separators, e.g. "$1,234.56".
func FormatCurrency(amount float64) string {
	return enUS.Sprintf("$%.2f", amount)
}

// FormatPricePerNight renders the preview price line, e.g. "$1,250/night".
func FormatPricePerNight(amount int) string {
	return enUS.Sprintf("$%d/night", amount)
}

// FormatDate renders an ISO date as "Jan 2, 2006". Unparseable input is
// returned as-is so a bad value still shows something in a table cell.
func FormatDate(value string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return value
}

// FormatShortTime renders a locale-style short time, e.g. "03:04 PM".
func FormatShortTime(t time.Time) string {
	return t.Format("03:04 PM")
}
