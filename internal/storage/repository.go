// Package storage persists expenses in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"expenses/internal/core"
	"expenses/internal/log"

	_ "modernc.org/sqlite"
)

// Repository is the SQLite-backed expense store. One repository is opened
// per program invocation and closed when the command returns.
type Repository struct {
	db *sql.DB
}

// NewRepository opens (creating if necessary) the database at dbPath and
// brings the schema up to date.
func NewRepository(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert stores a new expense and returns the assigned id.
func (r *Repository) Insert(ctx context.Context, e core.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO expenses (amount_cents, category, note, date) VALUES (?, ?, ?, ?)",
		e.Amount.Cents, e.Category, e.Note, e.Date)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		log.FieldExpenseID, id,
		log.FieldAmountCents, e.Amount.Cents,
		log.FieldCategory, e.Category,
		log.FieldDate, e.Date)

	return id, nil
}

// ListFilter narrows a List call. Zero values mean "no constraint"; dates
// must already be in canonical form.
type ListFilter struct {
	Limit     int
	Category  string
	StartDate string
	EndDate   string
}

// List returns expenses matching all supplied filters, most recent date
// first, ties broken by newest id.
func (r *Repository) List(ctx context.Context, f ListFilter) ([]core.Expense, error) {
	q := "SELECT id, amount_cents, category, note, date FROM expenses"
	var clauses []string
	var args []any
	if f.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, f.Category)
	}
	if f.StartDate != "" {
		clauses = append(clauses, "date >= ?")
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		clauses = append(clauses, "date <= ?")
		args = append(args, f.EndDate)
	}
	if len(clauses) > 0 {
		q += " WHERE " + strings.Join(clauses, " AND ")
	}
	q += " ORDER BY date DESC, id DESC"
	if f.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var e core.Expense
		if err := rows.Scan(&e.ID, &e.Amount.Cents, &e.Category, &e.Note, &e.Date); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return expenses, nil
}

// Get returns a single expense, or core.ErrNotFound.
func (r *Repository) Get(ctx context.Context, id int64) (core.Expense, error) {
	var e core.Expense
	err := r.db.QueryRowContext(ctx,
		"SELECT id, amount_cents, category, note, date FROM expenses WHERE id = ?", id).
		Scan(&e.ID, &e.Amount.Cents, &e.Category, &e.Note, &e.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, core.ErrNotFound
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

// Update overwrites only the columns carried by the patch, as a single
// UPDATE statement. The caller validates the patch before this is reached.
func (r *Repository) Update(ctx context.Context, id int64, p core.ExpensePatch) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	var sets []string
	var args []any
	if p.Amount != nil {
		sets = append(sets, "amount_cents = ?")
		args = append(args, p.Amount.Cents)
	}
	if p.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *p.Date)
	}
	if p.Note != nil {
		sets = append(sets, "note = ?")
		args = append(args, *p.Note)
	}
	if p.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *p.Category)
	}
	if len(sets) == 0 {
		return core.ErrNoFields
	}
	args = append(args, id)

	q := "UPDATE expenses SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("update expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense updated", log.FieldExpenseID, id, "columns", len(sets))
	return nil
}

// Delete removes exactly one row, or returns core.ErrNotFound.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return core.ErrNotFound
	}

	slog.InfoContext(ctx, "Expense deleted", log.FieldExpenseID, id)
	return nil
}

// Total sums all expenses, optionally restricted to dates sharing
// monthPrefix (e.g. "2024-03-"). An empty set totals zero.
func (r *Repository) Total(ctx context.Context, monthPrefix string) (core.Money, error) {
	q := "SELECT COALESCE(SUM(amount_cents), 0) FROM expenses"
	var args []any
	if monthPrefix != "" {
		q += " WHERE date LIKE ?"
		args = append(args, monthPrefix+"%")
	}

	var cents int64
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&cents); err != nil {
		return core.Money{}, fmt.Errorf("total expenses: %w", err)
	}
	return core.Money{Cents: cents}, nil
}

// CategoryTotals returns per-category subtotals over the same filtered set
// as Total, largest first.
func (r *Repository) CategoryTotals(ctx context.Context, monthPrefix string) ([]core.CategoryTotal, error) {
	q := "SELECT category, SUM(amount_cents) FROM expenses"
	var args []any
	if monthPrefix != "" {
		q += " WHERE date LIKE ?"
		args = append(args, monthPrefix+"%")
	}
	q += " GROUP BY category ORDER BY SUM(amount_cents) DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}
	defer rows.Close()

	var totals []core.CategoryTotal
	for rows.Next() {
		var ct core.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total.Cents); err != nil {
			return nil, fmt.Errorf("scan category total: %w", err)
		}
		totals = append(totals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category totals: %w", err)
	}

	return totals, nil
}
