package core

import (
	"errors"
	"strings"
)

// DefaultCategory is applied when an expense is created without a category.
const DefaultCategory = "uncategorized"

type (
	// Expense is a single recorded expense. Date always holds the
	// canonical YYYY-MM-DD form.
	Expense struct {
		ID       int64
		Amount   Money
		Category string
		Note     string
		Date     string
	}

	// ExpensePatch carries the fields of a partial update. A nil field
	// means "leave the column as it is"; a non-nil empty string is a
	// deliberate overwrite.
	ExpensePatch struct {
		Amount   *Money
		Date     *string
		Note     *string
		Category *string
	}

	// CategoryTotal is a per-category subtotal from the summary report.
	CategoryTotal struct {
		Category string
		Total    Money
	}
)

var (
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD or DD-MM-YYYY")
	ErrInvalidMonth  = errors.New("month must be YYYY-MM or MM-YYYY")
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrNoFields      = errors.New("no update fields provided")
	ErrNotFound      = errors.New("expense id not found")
)

// IsEmpty reports whether the patch carries no fields at all.
func (p ExpensePatch) IsEmpty() bool {
	return p.Amount == nil && p.Date == nil && p.Note == nil && p.Category == nil
}

// Validate checks the patch before any column is written. Amount is
// checked first so a bad amount never reaches the store.
func (p ExpensePatch) Validate() error {
	if p.IsEmpty() {
		return ErrNoFields
	}
	if p.Amount != nil {
		if err := p.Amount.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (e Expense) Validate() error {
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Date) == "" {
		return ErrInvalidDate
	}
	return nil
}
