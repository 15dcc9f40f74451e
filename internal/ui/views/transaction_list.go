package views

import (
	"fmt"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct {
	names AccountNames
}

func NewTransactionListView(names AccountNames) *TransactionListView {
	return &TransactionListView{names: names}
}

func (v *TransactionListView) Render(txs []*model.Transaction, limit int) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	shown := txs
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
		pterm.DefaultSection.Printf("Showing recent transactions (limit: %d)", limit)
	} else {
		pterm.DefaultSection.Printf("Transactions")
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Account", "Category", "Merchant", "Amount", "Status"},
	}

	for _, tx := range shown {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", tx.ID),
			utils.FormatDate(tx.BookedAt),
			colorByType(tx.Type, string(tx.Type)),
			colorByType(tx.Type, v.names.AccountCell(tx)),
			textOrDash(tx.Category),
			textOrDash(tx.Merchant),
			colorByType(tx.Type, utils.FormatAmount(tx.Amount)),
			statusLabel(tx),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(txs))
	return nil
}
