package service

import (
	"time"

	"github.com/hance08/cashflow/internal/config"
	"github.com/hance08/cashflow/internal/store"
	"github.com/rs/zerolog"
)

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Balance     *BalanceService
	Budget      *BudgetService
	Report      *ReportService
	Config      *config.Config
}

func NewService(repo store.Repository, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		Account:     NewAccountService(repo, cfg, log),
		Transaction: NewTransactionService(repo, log),
		Balance:     NewBalanceService(repo),
		Budget:      NewBudgetService(repo, log),
		Report:      NewReportService(repo),
		Config:      cfg,
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}
