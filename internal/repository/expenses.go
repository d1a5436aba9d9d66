package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gastosbot/gastos-tracker/internal/common"
	"github.com/gastosbot/gastos-tracker/internal/entity"
)

// ExpenseRepository is the persistence contract for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, e *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByUser returns the user's expenses recorded in the last
	// `days` days, newest first. days <= 0 means no window.
	ListByUser(ctx context.Context, userID int64, days int) ([]*entity.Expense, error)
	SummaryByCategory(ctx context.Context, userID int64, days int) ([]entity.CategorySummary, error)
	Stats(ctx context.Context, userID int64, days int) (*entity.ExpenseStats, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS expenses (
	id          TEXT PRIMARY KEY,
	user_id     BIGINT NOT NULL,
	description TEXT NOT NULL,
	amount      DOUBLE PRECISION NOT NULL,
	currency    TEXT NOT NULL,
	category    TEXT NOT NULL,
	tx_date     TEXT NOT NULL DEFAULT '',
	image_url   TEXT NOT NULL DEFAULT '',
	ocr_data    TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_expenses_user_created ON expenses (user_id, created_at);
`

// createdAtLayout is fixed-width so stored timestamps order
// lexicographically, which keeps the window comparisons portable
// between SQLite and PostgreSQL.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// Migrate creates the expenses table when it does not exist yet. The
// DDL is portable across SQLite and PostgreSQL.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return common.WrapError(err, "migrate expenses")
		}
	}
	return nil
}

type expenseRepository struct {
	db       *sql.DB
	postgres bool
	logger   *slog.Logger
}

// NewExpenseRepository returns a SQL-backed ExpenseRepository. driver
// is the config driver key ("sqlite" or "postgres"); it only selects
// the placeholder style.
func NewExpenseRepository(db *sql.DB, driver string, logger *slog.Logger) ExpenseRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &expenseRepository{db: db, postgres: driver == "postgres", logger: logger}
}

// rebind rewrites ? placeholders to $1..$n for PostgreSQL. SQLite
// takes ? as-is.
func (r *expenseRepository) rebind(query string) string {
	if !r.postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func (r *expenseRepository) Create(ctx context.Context, e *entity.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	const q = `INSERT INTO expenses
		(id, user_id, description, amount, currency, category, tx_date, image_url, ocr_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.rebind(q),
		e.ID.String(), e.UserID, e.Description, e.Amount, e.Currency,
		e.Category, e.TxDate, e.ImageURL, string(e.OCRData),
		e.CreatedAt.UTC().Format(createdAtLayout))
	if err != nil {
		r.logger.Error("failed to insert expense", "user_id", e.UserID, "error", err)
		return common.WrapError(err, "insert expense")
	}
	r.logger.Debug("expense created",
		"expense_id", e.ID.String(),
		"user_id", e.UserID,
		"amount", e.Amount,
		"category", e.Category)
	return nil
}

const selectColumns = `id, user_id, description, amount, currency, category, tx_date, image_url, ocr_data, created_at`

func scanExpense(row interface{ Scan(...any) error }) (*entity.Expense, error) {
	var (
		e         entity.Expense
		rawID     string
		ocrData   string
		createdAt string
	)
	err := row.Scan(&rawID, &e.UserID, &e.Description, &e.Amount, &e.Currency,
		&e.Category, &e.TxDate, &e.ImageURL, &ocrData, &createdAt)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse expense id %q: %w", rawID, err)
	}
	e.ID = id
	e.CreatedAt, err = time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse expense created_at %q: %w", createdAt, err)
	}
	if ocrData != "" {
		e.OCRData = []byte(ocrData)
	}
	return &e, nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	q := `SELECT ` + selectColumns + ` FROM expenses WHERE id = ?`
	e, err := scanExpense(r.db.QueryRowContext(ctx, r.rebind(q), id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, common.WrapError(err, "get expense")
	}
	return e, nil
}

func (r *expenseRepository) Update(ctx context.Context, e *entity.Expense) error {
	const q = `UPDATE expenses
		SET description = ?, amount = ?, currency = ?, category = ?, tx_date = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, r.rebind(q),
		e.Description, e.Amount, e.Currency, e.Category, e.TxDate, e.ID.String())
	if err != nil {
		return common.WrapError(err, "update expense")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM expenses WHERE id = ?`
	res, err := r.db.ExecContext(ctx, r.rebind(q), id.String())
	if err != nil {
		return common.WrapError(err, "delete expense")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	r.logger.Debug("expense deleted", "expense_id", id.String())
	return nil
}

// windowStart converts a day window into the earliest created_at to
// include. Computing the cutoff in Go keeps the SQL portable.
func windowStart(days int) (string, bool) {
	if days <= 0 {
		return "", false
	}
	return time.Now().UTC().AddDate(0, 0, -days).Format(createdAtLayout), true
}

func (r *expenseRepository) ListByUser(ctx context.Context, userID int64, days int) ([]*entity.Expense, error) {
	q := `SELECT ` + selectColumns + ` FROM expenses WHERE user_id = ?`
	args := []any{userID}
	if since, ok := windowStart(days); ok {
		q += ` AND created_at >= ?`
		args = append(args, since)
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, r.rebind(q), args...)
	if err != nil {
		return nil, common.WrapError(err, "list expenses")
	}
	defer rows.Close()

	out := make([]*entity.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, common.WrapError(err, "scan expense")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapError(err, "list expenses")
	}
	return out, nil
}

func (r *expenseRepository) SummaryByCategory(ctx context.Context, userID int64, days int) ([]entity.CategorySummary, error) {
	q := `SELECT category, SUM(amount), COUNT(*) FROM expenses WHERE user_id = ?`
	args := []any{userID}
	if since, ok := windowStart(days); ok {
		q += ` AND created_at >= ?`
		args = append(args, since)
	}
	q += ` GROUP BY category ORDER BY SUM(amount) DESC`

	rows, err := r.db.QueryContext(ctx, r.rebind(q), args...)
	if err != nil {
		return nil, common.WrapError(err, "category summary")
	}
	defer rows.Close()

	out := make([]entity.CategorySummary, 0)
	for rows.Next() {
		var s entity.CategorySummary
		if err := rows.Scan(&s.Category, &s.Total, &s.Count); err != nil {
			return nil, common.WrapError(err, "scan category summary")
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapError(err, "category summary")
	}
	return out, nil
}

func (r *expenseRepository) Stats(ctx context.Context, userID int64, days int) (*entity.ExpenseStats, error) {
	q := `SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM expenses WHERE user_id = ?`
	args := []any{userID}
	if since, ok := windowStart(days); ok {
		q += ` AND created_at >= ?`
		args = append(args, since)
	}

	var st entity.ExpenseStats
	err := r.db.QueryRowContext(ctx, r.rebind(q), args...).Scan(&st.Total, &st.Count)
	if err != nil {
		return nil, common.WrapError(err, "expense stats")
	}
	if st.Count > 0 {
		st.Average = st.Total / float64(st.Count)
	}
	return &st, nil
}
