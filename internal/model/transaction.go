package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TxExpense  TransactionType = "EXPENSE"
	TxIncome   TransactionType = "INCOME"
	TxTransfer TransactionType = "TRANSFER"
)

var TransactionTypes = []TransactionType{TxExpense, TxIncome, TxTransfer}

func (t TransactionType) Valid() bool {
	switch t {
	case TxExpense, TxIncome, TxTransfer:
		return true
	}
	return false
}

func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", &ValidationError{Field: "type", Msg: fmt.Sprintf("invalid transaction type '%s' (must be EXPENSE, INCOME or TRANSFER)", s)}
	}
	return t, nil
}

// Transaction is one row of the ledger. Amount is always a non-negative
// magnitude; the direction comes from Type.
type Transaction struct {
	ID                int64
	AccountID         int64
	Type              TransactionType
	Amount            decimal.Decimal
	Category          *string
	Merchant          *string
	Memo              *string
	BookedAt          time.Time
	TransferAccountID *int64
	CreatedAt         time.Time
	Voided            bool
	VoidedAt          *time.Time
}

// CheckTransfer enforces the transfer invariant on a fully resolved row:
// a TRANSFER names a target different from its account, anything else names none.
func CheckTransfer(txType TransactionType, accountID int64, transferAccountID *int64) error {
	if txType == TxTransfer {
		if transferAccountID == nil {
			return &ValidationError{Field: "transfer_account_id", Msg: "transfer requires a target account"}
		}
		if *transferAccountID == accountID {
			return &ValidationError{Field: "transfer_account_id", Msg: "transfer target must differ from the source account"}
		}
		return nil
	}
	if transferAccountID != nil {
		return &ValidationError{Field: "transfer_account_id", Msg: fmt.Sprintf("%s transactions can't have a transfer target", txType)}
	}
	return nil
}
