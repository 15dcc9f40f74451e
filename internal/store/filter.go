package store

import (
	"strings"
	"time"

	"github.com/hance08/cashflow/internal/model"
	"github.com/shopspring/decimal"
)

// TransactionFilter selects transaction rows. Every set field narrows the
// result (AND). From is inclusive and To exclusive, both YYYY-MM-DD. Voided
// rows are skipped unless IncludeVoided is set.
type TransactionFilter struct {
	Type              model.TransactionType
	AccountID         *int64
	TransferAccountID *int64
	Category          *string
	From              string
	To                string
	IncludeVoided     bool
}

func (f TransactionFilter) where() (string, []any) {
	var conds []string
	var args []any

	if !f.IncludeVoided {
		conds = append(conds, "voided = 0")
	}
	if f.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, string(f.Type))
	}
	if f.AccountID != nil {
		conds = append(conds, "account_id = ?")
		args = append(args, *f.AccountID)
	}
	if f.TransferAccountID != nil {
		conds = append(conds, "transfer_account_id = ?")
		args = append(args, *f.TransferAccountID)
	}
	if f.Category != nil {
		conds = append(conds, "category = ?")
		args = append(args, *f.Category)
	}
	if f.From != "" {
		conds = append(conds, "booked_at >= ?")
		args = append(args, f.From)
	}
	if f.To != "" {
		conds = append(conds, "booked_at < ?")
		args = append(args, f.To)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// TransactionChanges is a column-level update. Nil pointers and unset
// Nullable slots leave their column untouched.
type TransactionChanges struct {
	AccountID         *int64
	Type              *model.TransactionType
	Amount            *decimal.Decimal
	Category          model.Nullable[string]
	Merchant          model.Nullable[string]
	Memo              model.Nullable[string]
	BookedAt          *time.Time
	TransferAccountID model.Nullable[int64]
	Voided            *bool
	VoidedAt          model.Nullable[time.Time]
}

func (c TransactionChanges) IsEmpty() bool {
	return c.AccountID == nil && c.Type == nil && c.Amount == nil &&
		!c.Category.IsSet() && !c.Merchant.IsSet() && !c.Memo.IsSet() &&
		c.BookedAt == nil && !c.TransferAccountID.IsSet() &&
		c.Voided == nil && !c.VoidedAt.IsSet()
}

func (c TransactionChanges) assignments() (string, []any) {
	var sets []string
	var args []any

	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if c.AccountID != nil {
		add("account_id", *c.AccountID)
	}
	if c.Type != nil {
		add("type", string(*c.Type))
	}
	if c.Amount != nil {
		add("amount", c.Amount.String())
	}
	if c.Category.IsSet() {
		add("category", c.Category.Ptr())
	}
	if c.Merchant.IsSet() {
		add("merchant", c.Merchant.Ptr())
	}
	if c.Memo.IsSet() {
		add("memo", c.Memo.Ptr())
	}
	if c.BookedAt != nil {
		add("booked_at", formatDate(*c.BookedAt))
	}
	if c.TransferAccountID.IsSet() {
		add("transfer_account_id", c.TransferAccountID.Ptr())
	}
	if c.Voided != nil {
		add("voided", *c.Voided)
	}
	if c.VoidedAt.IsSet() {
		var v *string
		if t, ok := c.VoidedAt.Get(); ok {
			s := formatTimestamp(t)
			v = &s
		}
		add("voided_at", v)
	}

	return strings.Join(sets, ", "), args
}

type BudgetFilter struct {
	Month *int
	Year  *int
}
