package store

import (
	"time"

	"github.com/hance08/cashflow/internal/model"
	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	CreateAccount(acc model.Account) (int64, error)
	GetAllAccounts() ([]*model.Account, error)
	GetAccountByID(id int64) (*model.Account, error)
	GetAccountByName(name string) (*model.Account, error)
	DeleteAccount(id int64) error
}

type TransactionRepository interface {
	CreateTransaction(tx model.Transaction) (int64, error)
	GetTransactionByID(id int64) (*model.Transaction, error)
	ListTransactions(filter TransactionFilter) ([]*model.Transaction, error)
	SumAmounts(filter TransactionFilter) (decimal.Decimal, error)
	UpdateTransaction(id int64, changes TransactionChanges) error
	VoidTransaction(id int64, at time.Time) (bool, error)
}

type BudgetRepository interface {
	CreateBudget(b model.Budget) (int64, error)
	GetBudgets(filter BudgetFilter) ([]*model.Budget, error)
}

type Repository interface {
	AccountRepository
	TransactionRepository
	BudgetRepository

	// ExecTx runs fn inside one database transaction, committing when fn
	// returns nil and rolling back otherwise.
	ExecTx(fn func(Repository) error) error
	Close() error
}
