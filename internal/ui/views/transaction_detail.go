package views

import (
	"fmt"
	"time"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/ui"
	"github.com/hance08/cashflow/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(tx *model.Transaction, names AccountNames) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")

	target := "-"
	if tx.TransferAccountID != nil {
		target = names.Name(*tx.TransferAccountID)
	}
	voidedAt := "-"
	if tx.VoidedAt != nil {
		voidedAt = tx.VoidedAt.Local().Format(time.DateTime)
	}

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", tx.ID)},
		{"Date", utils.FormatDate(tx.BookedAt)},
		{"Type", colorByType(tx.Type, string(tx.Type))},
		{"Account", names.Name(tx.AccountID)},
		{"Transfer To", target},
		{"Amount", utils.FormatAmount(tx.Amount)},
		{"Category", textOrDash(tx.Category)},
		{"Merchant", textOrDash(tx.Merchant)},
		{"Memo", textOrDash(tx.Memo)},
		{"Status", statusLabel(tx)},
		{"Voided At", voidedAt},
		{"Created At", tx.CreatedAt.Local().Format(time.DateTime)},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}

func RenderVoidPreview(txs []*model.Transaction, names AccountNames) error {
	pterm.Warning.Printf("About to void %d transaction(s):\n", len(txs))

	tableData := pterm.TableData{{"ID", "Date", "Type", "Account", "Amount"}}
	for _, tx := range txs {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", tx.ID),
			utils.FormatDate(tx.BookedAt),
			string(tx.Type),
			names.AccountCell(tx),
			utils.FormatAmount(tx.Amount),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Println("Voided transactions stay in the ledger but no longer count towards balances")
	return nil
}
