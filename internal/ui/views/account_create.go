package views

import (
	"fmt"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/ui"
	"github.com/hance08/cashflow/internal/utils"
	"github.com/pterm/pterm"
)

func RenderAccountSuccess(acc *model.Account) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), fmt.Sprintf("%d", acc.ID)},
		{pterm.Blue("Name"), acc.Name},
		{pterm.Blue("Type"), string(acc.Type)},
		{pterm.Blue("Currency"), acc.Currency},
		{pterm.Blue("Opening Balance"), utils.FormatAmount(acc.OpeningBalance)},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Print("Account created successfully!\n")

	return nil
}
