package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// NewTransaction is the input for AddTransaction. BookedAt takes a bare date
// or a timestamp; only the calendar date is kept.
type NewTransaction struct {
	Type              model.TransactionType
	AccountID         int64
	Amount            decimal.Decimal
	Category          *string
	Merchant          *string
	Memo              *string
	BookedAt          string
	TransferAccountID *int64
}

type TransactionService struct {
	repo store.Repository
	log  zerolog.Logger
	now  func() time.Time
}

func NewTransactionService(repo store.Repository, log zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, log: log, now: utcNow}
}

func (ts *TransactionService) AddTransaction(in NewTransaction) (*model.Transaction, error) {
	tx, err := ts.buildTransaction(in)
	if err != nil {
		return nil, err
	}

	var created *model.Transaction
	err = ts.repo.ExecTx(func(r store.Repository) error {
		id, err := r.CreateTransaction(*tx)
		if err != nil {
			return err
		}
		created, err = r.GetTransactionByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}

	ts.log.Info().
		Int64("transaction_id", created.ID).
		Int64("account_id", created.AccountID).
		Str("type", string(created.Type)).
		Str("amount", created.Amount.String()).
		Msg("transaction added")
	return created, nil
}

func (ts *TransactionService) buildTransaction(in NewTransaction) (*model.Transaction, error) {
	txType := model.TransactionType(strings.ToUpper(string(in.Type)))
	if !txType.Valid() {
		return nil, &model.ValidationError{Field: "type", Msg: fmt.Sprintf("invalid transaction type '%s' (must be EXPENSE, INCOME or TRANSFER)", in.Type)}
	}
	if in.AccountID <= 0 {
		return nil, &model.ValidationError{Field: "account_id", Msg: "account is required"}
	}
	if err := checkAmount(in.Amount); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.BookedAt) == "" {
		return nil, &model.ValidationError{Field: "booked_at", Msg: "booking date is required"}
	}
	bookedAt, err := ParseBookedAt(in.BookedAt)
	if err != nil {
		return nil, err
	}
	if err := model.CheckTransfer(txType, in.AccountID, in.TransferAccountID); err != nil {
		return nil, err
	}

	return &model.Transaction{
		AccountID:         in.AccountID,
		Type:              txType,
		Amount:            in.Amount,
		Category:          cleanText(in.Category),
		Merchant:          cleanText(in.Merchant),
		Memo:              cleanText(in.Memo),
		BookedAt:          bookedAt,
		TransferAccountID: in.TransferAccountID,
	}, nil
}

func (ts *TransactionService) GetTransaction(id int64) (*model.Transaction, error) {
	return ts.repo.GetTransactionByID(id)
}

// VoidTransaction marks a row voided and stamps voided_at. Voiding an already
// voided row changes nothing and reports false.
func (ts *TransactionService) VoidTransaction(id int64) (bool, error) {
	var changed bool
	err := ts.repo.ExecTx(func(r store.Repository) error {
		var err error
		changed, err = r.VoidTransaction(id, ts.now())
		return err
	})
	if err != nil {
		return false, err
	}

	if changed {
		ts.log.Info().Int64("transaction_id", id).Msg("transaction voided")
	} else {
		ts.log.Debug().Int64("transaction_id", id).Msg("transaction already voided")
	}
	return changed, nil
}

// VoidMany voids each id in its own transaction. A failing id is reported and
// does not stop the rest.
func (ts *TransactionService) VoidMany(ids []int64) BatchResult {
	var res BatchResult
	for _, id := range ids {
		changed, err := ts.VoidTransaction(id)
		res.record(id, changed, err)
		if err != nil {
			ts.log.Warn().Err(err).Int64("transaction_id", id).Msg("void failed")
		}
	}
	return res
}

func checkAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return &model.ValidationError{Field: "amount", Msg: "amount can't be negative; the type carries the direction"}
	}
	return nil
}

// cleanText maps blank text to nil so empty strings are stored as NULL.
func cleanText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func isNotFound(err error) bool {
	return errors.Is(err, model.ErrNotFound)
}
