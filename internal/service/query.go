package service

import (
	"fmt"
	"strings"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/store"
)

// TransactionQuery narrows ListTransactions. Empty fields do not filter.
// From is inclusive and To exclusive.
type TransactionQuery struct {
	Type      model.TransactionType
	AccountID *int64
	Category  string
	From      string
	To        string
	// IncludeVoided returns every row and ignores the other fields.
	IncludeVoided bool
}

func (q TransactionQuery) filter() (store.TransactionFilter, error) {
	if q.IncludeVoided {
		return store.TransactionFilter{IncludeVoided: true}, nil
	}

	var f store.TransactionFilter
	if q.Type != "" {
		t := model.TransactionType(strings.ToUpper(string(q.Type)))
		if !t.Valid() {
			return f, &model.ValidationError{Field: "type", Msg: fmt.Sprintf("invalid transaction type '%s' (must be EXPENSE, INCOME or TRANSFER)", q.Type)}
		}
		f.Type = t
	}
	f.AccountID = q.AccountID
	if q.Category != "" {
		c := q.Category
		f.Category = &c
	}

	var err error
	if f.From, err = validateDateBound("from", q.From); err != nil {
		return f, err
	}
	if f.To, err = validateDateBound("to", q.To); err != nil {
		return f, err
	}
	return f, nil
}

// ListTransactions returns matching rows ordered by booking date, newest
// first, then by id descending.
func (ts *TransactionService) ListTransactions(q TransactionQuery) ([]*model.Transaction, error) {
	f, err := q.filter()
	if err != nil {
		return nil, err
	}

	var txs []*model.Transaction
	err = ts.repo.ExecTx(func(r store.Repository) error {
		var err error
		txs, err = r.ListTransactions(f)
		return err
	})
	return txs, err
}
