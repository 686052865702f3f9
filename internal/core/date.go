package core

import "time"

const canonicalDate = "2006-01-02"

// dateLayouts are tried in order; the first match wins. ISO first so an
// ambiguous-looking input is read as YYYY-MM-DD.
var dateLayouts = []string{canonicalDate, "02-01-2006"}

var monthLayouts = []string{"2006-01", "01-2006"}

// NormalizeDate parses a date given as YYYY-MM-DD or DD-MM-YYYY and
// returns the canonical YYYY-MM-DD form. Out-of-range components such as
// month 13 are rejected by the parser.
func NormalizeDate(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(canonicalDate), nil
		}
	}
	return "", ErrInvalidDate
}

// NormalizeMonth parses a month given as YYYY-MM or MM-YYYY and returns
// the canonical YYYY-MM form.
func NormalizeMonth(s string) (string, error) {
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01"), nil
		}
	}
	return "", ErrInvalidMonth
}

// MonthPrefix turns a canonical month into the date prefix its expenses
// share, e.g. "2024-03" -> "2024-03-".
func MonthPrefix(month string) string {
	return month + "-"
}
