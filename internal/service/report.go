package service

import (
	"sort"

	"github.com/hance08/cashflow/internal/constants"
	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/store"
	"github.com/hance08/cashflow/internal/utils"
	"github.com/shopspring/decimal"
)

type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

type MonthOverview struct {
	Month         int
	Year          int
	Spent         decimal.Decimal
	Income        decimal.Decimal
	TopCategories []CategoryTotal
}

type ReportService struct {
	repo store.Repository
}

func NewReportService(repo store.Repository) *ReportService {
	return &ReportService{repo: repo}
}

// MonthOverview totals non-voided expenses and income booked in the month and
// ranks the largest expense categories.
func (rs *ReportService) MonthOverview(month, year int) (*MonthOverview, error) {
	from, to, err := MonthWindow(month, year)
	if err != nil {
		return nil, err
	}
	window := func(t model.TransactionType) store.TransactionFilter {
		return store.TransactionFilter{Type: t, From: utils.FormatDate(from), To: utils.FormatDate(to)}
	}

	ov := &MonthOverview{Month: month, Year: year}
	err = rs.repo.ExecTx(func(r store.Repository) error {
		expenses, err := r.ListTransactions(window(model.TxExpense))
		if err != nil {
			return err
		}
		if ov.Income, err = r.SumAmounts(window(model.TxIncome)); err != nil {
			return err
		}

		totals := make(map[string]decimal.Decimal)
		for _, tx := range expenses {
			ov.Spent = ov.Spent.Add(tx.Amount)
			category := constants.UncategorizedLabel
			if tx.Category != nil {
				category = *tx.Category
			}
			totals[category] = totals[category].Add(tx.Amount)
		}
		ov.TopCategories = topCategories(totals, constants.TopCategoryLimit)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ov, nil
}

func topCategories(totals map[string]decimal.Decimal, limit int) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(totals))
	for c, amt := range totals {
		out = append(out, CategoryTotal{Category: c, Amount: amt})
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Amount.Cmp(out[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
