package views

import (
	"fmt"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(summary *service.PortfolioSummary) error {
	if len(summary.Accounts) == 0 {
		pterm.Warning.Println("No accounts yet, create one with 'cashflow account create'")
		return nil
	}

	headers := []string{"ID", "Name", "Type", "Balance"}
	tableData := pterm.TableData{headers}

	for _, ab := range summary.Accounts {
		acc := ab.Account
		balance := utils.FormatMoney(ab.Balance, acc.Currency)

		var coloredType string
		switch acc.Type {
		case model.AccountBank, model.AccountWallet, model.AccountStash:
			coloredType = pterm.Green(acc.Type)
		case model.AccountCredit:
			coloredType = pterm.Red(acc.Type)
		default:
			coloredType = pterm.Gray(acc.Type)
		}

		coloredBalance := pterm.Green(balance)
		if ab.Balance.IsNegative() {
			coloredBalance = pterm.Red(balance)
		}

		tableData = append(tableData, []string{fmt.Sprintf("%d", acc.ID), acc.Name, coloredType, coloredBalance})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(summary.Accounts))

	return nil
}
