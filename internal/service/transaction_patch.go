package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/store"
	"github.com/shopspring/decimal"
)

// TransactionPatch lists the fields UpdateTransaction may touch. Nil pointers
// and unset Nullable slots keep the stored value; a Null slot clears it.
type TransactionPatch struct {
	AccountID         *int64
	Type              *model.TransactionType
	Amount            *decimal.Decimal
	Category          model.Nullable[string]
	Merchant          model.Nullable[string]
	Memo              model.Nullable[string]
	BookedAt          *string
	TransferAccountID model.Nullable[int64]
	Voided            *bool
}

type TransactionUpdate struct {
	ID    int64
	Patch TransactionPatch
}

// parsedPatch is a TransactionPatch after input validation.
type parsedPatch struct {
	TransactionPatch
	bookedAt *time.Time
}

func (p TransactionPatch) parse() (*parsedPatch, error) {
	out := &parsedPatch{TransactionPatch: p}

	if p.AccountID != nil && *p.AccountID <= 0 {
		return nil, &model.ValidationError{Field: "account_id", Msg: "account is required"}
	}
	if p.Type != nil {
		t := model.TransactionType(strings.ToUpper(string(*p.Type)))
		if !t.Valid() {
			return nil, &model.ValidationError{Field: "type", Msg: fmt.Sprintf("invalid transaction type '%s' (must be EXPENSE, INCOME or TRANSFER)", *p.Type)}
		}
		out.Type = &t
	}
	if p.Amount != nil {
		if err := checkAmount(*p.Amount); err != nil {
			return nil, err
		}
	}
	if p.BookedAt != nil {
		t, err := ParseBookedAt(*p.BookedAt)
		if err != nil {
			return nil, err
		}
		out.bookedAt = &t
	}

	out.Category = cleanNullable(p.Category)
	out.Merchant = cleanNullable(p.Merchant)
	out.Memo = cleanNullable(p.Memo)
	return out, nil
}

// apply returns the row as it would look after the patch.
func (p *parsedPatch) apply(cur model.Transaction, now time.Time) (model.Transaction, error) {
	eff := cur

	if p.AccountID != nil {
		eff.AccountID = *p.AccountID
	}
	if p.Type != nil {
		eff.Type = *p.Type
	}
	if p.Amount != nil {
		eff.Amount = *p.Amount
	}
	if p.Category.IsSet() {
		eff.Category = p.Category.Ptr()
	}
	if p.Merchant.IsSet() {
		eff.Merchant = p.Merchant.Ptr()
	}
	if p.Memo.IsSet() {
		eff.Memo = p.Memo.Ptr()
	}
	if p.bookedAt != nil {
		eff.BookedAt = *p.bookedAt
	}
	if p.TransferAccountID.IsSet() {
		eff.TransferAccountID = p.TransferAccountID.Ptr()
	}

	if eff.Type != model.TxTransfer {
		eff.TransferAccountID = nil
	}
	if err := model.CheckTransfer(eff.Type, eff.AccountID, eff.TransferAccountID); err != nil {
		return cur, err
	}

	if p.Voided != nil && *p.Voided != cur.Voided {
		eff.Voided = *p.Voided
		if eff.Voided {
			eff.VoidedAt = &now
		} else {
			eff.VoidedAt = nil
		}
	}
	return eff, nil
}

// diffTransaction lists the columns that differ between two versions of a row.
func diffTransaction(cur, eff model.Transaction) store.TransactionChanges {
	var c store.TransactionChanges

	if eff.AccountID != cur.AccountID {
		c.AccountID = &eff.AccountID
	}
	if eff.Type != cur.Type {
		c.Type = &eff.Type
	}
	if !eff.Amount.Equal(cur.Amount) {
		c.Amount = &eff.Amount
	}
	if !ptrEqual(eff.Category, cur.Category) {
		c.Category = model.FromPtr(eff.Category)
	}
	if !ptrEqual(eff.Merchant, cur.Merchant) {
		c.Merchant = model.FromPtr(eff.Merchant)
	}
	if !ptrEqual(eff.Memo, cur.Memo) {
		c.Memo = model.FromPtr(eff.Memo)
	}
	if !eff.BookedAt.Equal(cur.BookedAt) {
		c.BookedAt = &eff.BookedAt
	}
	if !ptrEqual(eff.TransferAccountID, cur.TransferAccountID) {
		c.TransferAccountID = model.FromPtr(eff.TransferAccountID)
	}
	if eff.Voided != cur.Voided {
		c.Voided = &eff.Voided
		c.VoidedAt = model.FromPtr(eff.VoidedAt)
	}
	return c
}

// UpdateTransaction applies patch to row id and reports whether any column
// changed. The transfer rule is checked on the row as it would be after the
// update; a patch matching the stored row writes nothing.
func (ts *TransactionService) UpdateTransaction(id int64, patch TransactionPatch) (bool, error) {
	parsed, err := patch.parse()
	if err != nil {
		return false, err
	}

	var changes store.TransactionChanges
	err = ts.repo.ExecTx(func(r store.Repository) error {
		cur, err := r.GetTransactionByID(id)
		if err != nil {
			return err
		}

		eff, err := parsed.apply(*cur, ts.now())
		if err != nil {
			return err
		}

		changes = diffTransaction(*cur, eff)
		if changes.IsEmpty() {
			return nil
		}
		return r.UpdateTransaction(id, changes)
	})
	if err != nil {
		return false, err
	}

	if changes.IsEmpty() {
		ts.log.Debug().Int64("transaction_id", id).Msg("update left transaction unchanged")
		return false, nil
	}
	ts.log.Info().Int64("transaction_id", id).Msg("transaction updated")
	return true, nil
}

// UpdateMany applies each update in its own transaction. A failing item is
// reported and does not stop the rest.
func (ts *TransactionService) UpdateMany(updates []TransactionUpdate) BatchResult {
	var res BatchResult
	for _, u := range updates {
		changed, err := ts.UpdateTransaction(u.ID, u.Patch)
		res.record(u.ID, changed, err)
		if err != nil {
			ts.log.Warn().Err(err).Int64("transaction_id", u.ID).Msg("update failed")
		}
	}
	return res
}

func cleanNullable(n model.Nullable[string]) model.Nullable[string] {
	v, ok := n.Get()
	if !ok {
		return n
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return model.Null[string]()
	}
	return model.Value(v)
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
