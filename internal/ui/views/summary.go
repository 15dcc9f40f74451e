package views

import (
	"fmt"

	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui"
	"github.com/hance08/cashflow/internal/utils"
	"github.com/pterm/pterm"
)

func RenderMonthOverview(ov *service.MonthOverview, total string) error {
	pterm.DefaultSection.Printf("Overview %04d-%02d", ov.Year, ov.Month)

	tableData := pterm.TableData{
		{"Total Balance", total},
		{"Spent This Month", pterm.Red(utils.FormatAmount(ov.Spent))},
		{"Income This Month", pterm.Green(utils.FormatAmount(ov.Income))},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Top Expense Categories")
	if len(ov.TopCategories) == 0 {
		pterm.Info.Println("No expenses this month")
		return nil
	}

	bars := make(pterm.Bars, 0, len(ov.TopCategories))
	for _, c := range ov.TopCategories {
		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("%s (%s)", c.Category, utils.FormatAmount(c.Amount)),
			Value: int(c.Amount.Round(0).IntPart()),
		})
	}
	return pterm.DefaultBarChart.WithHorizontal().WithBars(bars).WithShowValue().Render()
}
