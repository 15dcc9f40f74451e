package service

import (
	"strings"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/store"
	"github.com/hance08/cashflow/internal/utils"
	"github.com/hance08/cashflow/internal/validation"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type NewBudget struct {
	Month       int    `validate:"gte=1,lte=12"`
	Year        int    `validate:"gte=1"`
	Category    string `validate:"required,max=100"`
	LimitAmount decimal.Decimal
}

// BudgetLine is the progress of one category in one month. Rows sharing a
// category are merged: their limits add up and BudgetIDs lists them all.
type BudgetLine struct {
	Category  string
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	BudgetIDs []int64
}

type BudgetService struct {
	repo store.Repository
	log  zerolog.Logger
}

func NewBudgetService(repo store.Repository, log zerolog.Logger) *BudgetService {
	return &BudgetService{repo: repo, log: log}
}

func (bs *BudgetService) AddBudget(in NewBudget) (*model.Budget, error) {
	in.Category = strings.TrimSpace(in.Category)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	b := model.Budget{
		Month:       in.Month,
		Year:        in.Year,
		Category:    in.Category,
		LimitAmount: in.LimitAmount,
	}
	err := bs.repo.ExecTx(func(r store.Repository) error {
		id, err := r.CreateBudget(b)
		b.ID = id
		return err
	})
	if err != nil {
		return nil, err
	}

	bs.log.Info().
		Int64("budget_id", b.ID).
		Int("month", b.Month).
		Int("year", b.Year).
		Str("category", b.Category).
		Msg("budget added")
	return &b, nil
}

// ListBudgets returns budgets in id order, optionally limited to a month
// and/or year.
func (bs *BudgetService) ListBudgets(month, year *int) ([]*model.Budget, error) {
	var budgets []*model.Budget
	err := bs.repo.ExecTx(func(r store.Repository) error {
		var err error
		budgets, err = r.GetBudgets(store.BudgetFilter{Month: month, Year: year})
		return err
	})
	return budgets, err
}

// BudgetProgress compares each budgeted category of the month with the
// non-voided expenses booked under exactly that category in the month.
// Lines keep the order in which categories first appear.
func (bs *BudgetService) BudgetProgress(month, year int) ([]BudgetLine, error) {
	from, to, err := MonthWindow(month, year)
	if err != nil {
		return nil, err
	}

	var lines []BudgetLine
	err = bs.repo.ExecTx(func(r store.Repository) error {
		budgets, err := r.GetBudgets(store.BudgetFilter{Month: &month, Year: &year})
		if err != nil {
			return err
		}

		index := make(map[string]int)
		for _, b := range budgets {
			if i, ok := index[b.Category]; ok {
				lines[i].Limit = lines[i].Limit.Add(b.LimitAmount)
				lines[i].BudgetIDs = append(lines[i].BudgetIDs, b.ID)
				continue
			}
			index[b.Category] = len(lines)
			lines = append(lines, BudgetLine{
				Category:  b.Category,
				Limit:     b.LimitAmount,
				BudgetIDs: []int64{b.ID},
			})
		}

		for i := range lines {
			category := lines[i].Category
			spent, err := r.SumAmounts(store.TransactionFilter{
				Type:     model.TxExpense,
				Category: &category,
				From:     utils.FormatDate(from),
				To:       utils.FormatDate(to),
			})
			if err != nil {
				return err
			}
			lines[i].Spent = spent
			lines[i].Remaining = lines[i].Limit.Sub(spent)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}
