package core

// Summary is the result of the summary report.
type Summary struct {
	Month      string // canonical YYYY-MM, empty when unfiltered
	Total      Money
	ByCategory []CategoryTotal // nil unless grouping was requested
}
