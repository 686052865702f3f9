// Package services validates user input and orchestrates storage calls for
// the five expense operations.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"expenses/internal/core"
	"expenses/internal/log"
	"expenses/internal/storage"
)

// ExpenseService sits between the CLI and the repository. All input
// validation happens here so nothing invalid reaches a SQL statement.
type ExpenseService struct {
	storage *storage.Repository
}

func NewExpenseService(storage *storage.Repository) *ExpenseService {
	return &ExpenseService{storage: storage}
}

// AddExpense validates the raw flag values, applies defaults and inserts a
// new expense. The returned expense carries the assigned id and the
// normalized field values.
func (s *ExpenseService) AddExpense(ctx context.Context, amount, date, note, category string) (core.Expense, error) {
	m, err := core.ParseAmount(amount)
	if err != nil {
		return core.Expense{}, err
	}

	isoDate, err := core.NormalizeDate(date)
	if err != nil {
		return core.Expense{}, err
	}

	if strings.TrimSpace(category) == "" {
		category = core.DefaultCategory
	}

	e := core.Expense{
		Amount:   m,
		Category: category,
		Note:     note,
		Date:     isoDate,
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}

	id, err := s.storage.Insert(ctx, e)
	if err != nil {
		return core.Expense{}, fmt.Errorf("save expense: %w", err)
	}
	e.ID = id

	return e, nil
}

// ViewFilter holds the raw optional filters of the view operation.
type ViewFilter struct {
	Limit    int
	Category string
	Start    string
	End      string
}

// ListExpenses normalizes any date filters and queries the store. An empty
// result is not an error.
func (s *ExpenseService) ListExpenses(ctx context.Context, f ViewFilter) ([]core.Expense, error) {
	lf := storage.ListFilter{
		Limit:    f.Limit,
		Category: f.Category,
	}

	var err error
	if f.Start != "" {
		if lf.StartDate, err = core.NormalizeDate(f.Start); err != nil {
			return nil, err
		}
	}
	if f.End != "" {
		if lf.EndDate, err = core.NormalizeDate(f.End); err != nil {
			return nil, err
		}
	}

	return s.storage.List(ctx, lf)
}

// UpdateRequest carries raw values for a partial update; nil means the
// flag was not supplied.
type UpdateRequest struct {
	Amount   *string
	Date     *string
	Note     *string
	Category *string
}

// UpdateExpense builds and validates a patch, then applies it as a single
// statement. A bad amount fails the whole update before any column is
// written.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id int64, req UpdateRequest) error {
	// An unknown id reports NotFound even when the patch is also bad.
	if _, err := s.storage.Get(ctx, id); err != nil {
		return err
	}

	var p core.ExpensePatch

	if req.Amount != nil {
		m, err := core.ParseAmount(*req.Amount)
		if err != nil {
			return err
		}
		p.Amount = &m
	}
	if req.Date != nil {
		isoDate, err := core.NormalizeDate(*req.Date)
		if err != nil {
			return err
		}
		p.Date = &isoDate
	}
	p.Note = req.Note
	p.Category = req.Category

	if err := p.Validate(); err != nil {
		return err
	}

	return s.storage.Update(ctx, id, p)
}

// DeleteExpense removes one expense by id.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) error {
	return s.storage.Delete(ctx, id)
}

// Summarize computes the total over the optionally month-filtered set,
// plus per-category subtotals when requested.
func (s *ExpenseService) Summarize(ctx context.Context, month string, byCategory bool) (core.Summary, error) {
	var summary core.Summary

	var prefix string
	if month != "" {
		canonical, err := core.NormalizeMonth(month)
		if err != nil {
			return core.Summary{}, err
		}
		summary.Month = canonical
		prefix = core.MonthPrefix(canonical)
	}

	total, err := s.storage.Total(ctx, prefix)
	if err != nil {
		return core.Summary{}, fmt.Errorf("compute total: %w", err)
	}
	summary.Total = total

	if byCategory {
		totals, err := s.storage.CategoryTotals(ctx, prefix)
		if err != nil {
			return core.Summary{}, fmt.Errorf("compute category totals: %w", err)
		}
		summary.ByCategory = totals
	}

	slog.DebugContext(ctx, "Summary computed",
		log.FieldMonth, summary.Month,
		"total_cents", summary.Total.Cents,
		"by_category", byCategory)

	return summary, nil
}
