package views

import (
	"fmt"

	"github.com/hance08/cashflow/internal/model"
	"github.com/pterm/pterm"
)

// AccountNames maps account ids to display names.
type AccountNames map[int64]string

func NewAccountNames(accounts []*model.Account) AccountNames {
	names := make(AccountNames, len(accounts))
	for _, acc := range accounts {
		names[acc.ID] = acc.Name
	}
	return names
}

func (n AccountNames) Name(id int64) string {
	if name, ok := n[id]; ok {
		return name
	}
	return fmt.Sprintf("[ID: %d]", id)
}

// AccountCell is "Source" or "Source -> Target" for transfers.
func (n AccountNames) AccountCell(tx *model.Transaction) string {
	if tx.TransferAccountID != nil {
		return fmt.Sprintf("%s -> %s", n.Name(tx.AccountID), n.Name(*tx.TransferAccountID))
	}
	return n.Name(tx.AccountID)
}

func colorByType(t model.TransactionType, s string) string {
	switch t {
	case model.TxExpense:
		return pterm.Red(s)
	case model.TxIncome:
		return pterm.Green(s)
	case model.TxTransfer:
		return pterm.Blue(s)
	default:
		return s
	}
}

func textOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func statusLabel(tx *model.Transaction) string {
	if tx.Voided {
		return pterm.Gray("Voided")
	}
	return "Active"
}
