package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/hance08/cashflow/internal/config"
	"github.com/hance08/cashflow/internal/constants"
	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/store"
	"github.com/hance08/cashflow/internal/validation"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// NewAccount is the input for CreateAccount. An empty Currency falls back to
// the configured default.
type NewAccount struct {
	Name           string            `validate:"required,max=100"`
	Type           model.AccountType `validate:"required,account_type"`
	Currency       string            `validate:"required,currency"`
	OpeningBalance decimal.Decimal
}

type AccountService struct {
	repo   store.Repository
	config *config.Config
	log    zerolog.Logger
}

func NewAccountService(repo store.Repository, cfg *config.Config, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, config: cfg, log: log}
}

func (as *AccountService) CreateAccount(in NewAccount) (*model.Account, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = model.AccountType(strings.ToUpper(string(in.Type)))
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.Currency == "" {
		in.Currency = as.defaultCurrency()
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	var acc *model.Account
	err := as.repo.ExecTx(func(r store.Repository) error {
		id, err := r.CreateAccount(model.Account{
			Name:           in.Name,
			Type:           in.Type,
			Currency:       in.Currency,
			OpeningBalance: in.OpeningBalance,
		})
		if err != nil {
			return err
		}
		acc, err = r.GetAccountByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}

	as.log.Info().
		Int64("account_id", acc.ID).
		Str("name", acc.Name).
		Str("type", string(acc.Type)).
		Msg("account created")
	return acc, nil
}

func (as *AccountService) ListAccounts() ([]*model.Account, error) {
	return as.repo.GetAllAccounts()
}

func (as *AccountService) GetAccount(id int64) (*model.Account, error) {
	return as.repo.GetAccountByID(id)
}

// ResolveAccount finds an account by numeric id or, failing that, by exact name.
func (as *AccountService) ResolveAccount(ref string) (*model.Account, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, &model.ValidationError{Field: "account", Msg: "account is required"}
	}

	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		acc, err := as.repo.GetAccountByID(id)
		if err == nil || !errors.Is(err, model.ErrNotFound) {
			return acc, err
		}
	}
	return as.repo.GetAccountByName(ref)
}

func (as *AccountService) defaultCurrency() string {
	if as.config != nil && as.config.Defaults.Currency != "" {
		return strings.ToUpper(as.config.Defaults.Currency)
	}
	return constants.DefaultCurrency
}
