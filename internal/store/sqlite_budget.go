package store

import (
	"strings"

	"github.com/hance08/cashflow/internal/model"
)

func (s *Store) CreateBudget(b model.Budget) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO budgets (month, year, category, limit_amount)
        VALUES (?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, wrapErr("prepare budget insert", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	if err := stmt.QueryRow(b.Month, b.Year, b.Category, b.LimitAmount.String()).Scan(&newID); err != nil {
		return 0, wrapErr("insert budget", err)
	}
	return newID, nil
}

// GetBudgets returns budgets in insertion (id) order.
func (s *Store) GetBudgets(filter BudgetFilter) ([]*model.Budget, error) {
	query := `SELECT id, month, year, category, limit_amount FROM budgets`

	var conds []string
	var args []any
	if filter.Month != nil {
		conds = append(conds, "month = ?")
		args = append(args, *filter.Month)
	}
	if filter.Year != nil {
		conds = append(conds, "year = ?")
		args = append(args, *filter.Year)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, wrapErr("query budgets", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var budgets []*model.Budget
	for rows.Next() {
		b := &model.Budget{}
		if err := rows.Scan(&b.ID, &b.Month, &b.Year, &b.Category, &b.LimitAmount); err != nil {
			return nil, wrapErr("scan budget", err)
		}
		budgets = append(budgets, b)
	}

	return budgets, wrapErr("iterate budgets", rows.Err())
}
