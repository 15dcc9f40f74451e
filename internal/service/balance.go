package service

import (
	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/store"
	"github.com/shopspring/decimal"
)

type AccountBalance struct {
	Account *model.Account
	Balance decimal.Decimal
}

type PortfolioSummary struct {
	Accounts []AccountBalance
	// Total adds balances as plain numbers; currencies are not converted.
	Total decimal.Decimal
}

type BalanceService struct {
	repo store.Repository
}

func NewBalanceService(repo store.Repository) *BalanceService {
	return &BalanceService{repo: repo}
}

// AccountBalance returns opening + income - expense + transfers in - transfers
// out over non-voided rows. An unknown account has a zero balance.
func (bs *BalanceService) AccountBalance(accountID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := bs.repo.ExecTx(func(r store.Repository) error {
		var err error
		balance, err = accountBalance(r, accountID)
		return err
	})
	return balance, err
}

func (bs *BalanceService) PortfolioSummary() (*PortfolioSummary, error) {
	summary := &PortfolioSummary{}
	err := bs.repo.ExecTx(func(r store.Repository) error {
		accounts, err := r.GetAllAccounts()
		if err != nil {
			return err
		}
		for _, acc := range accounts {
			bal, err := accountBalance(r, acc.ID)
			if err != nil {
				return err
			}
			summary.Accounts = append(summary.Accounts, AccountBalance{Account: acc, Balance: bal})
			summary.Total = summary.Total.Add(bal)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func accountBalance(r store.Repository, accountID int64) (decimal.Decimal, error) {
	acc, err := r.GetAccountByID(accountID)
	if err != nil {
		if isNotFound(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	id := accountID
	income, err := r.SumAmounts(store.TransactionFilter{Type: model.TxIncome, AccountID: &id})
	if err != nil {
		return decimal.Zero, err
	}
	expense, err := r.SumAmounts(store.TransactionFilter{Type: model.TxExpense, AccountID: &id})
	if err != nil {
		return decimal.Zero, err
	}
	transferIn, err := r.SumAmounts(store.TransactionFilter{Type: model.TxTransfer, TransferAccountID: &id})
	if err != nil {
		return decimal.Zero, err
	}
	transferOut, err := r.SumAmounts(store.TransactionFilter{Type: model.TxTransfer, AccountID: &id})
	if err != nil {
		return decimal.Zero, err
	}

	return acc.OpeningBalance.
		Add(income).
		Sub(expense).
		Add(transferIn).
		Sub(transferOut), nil
}
