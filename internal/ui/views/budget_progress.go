package views

import (
	"fmt"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/utils"
	"github.com/pterm/pterm"
)

func RenderBudgetList(budgets []*model.Budget) error {
	if len(budgets) == 0 {
		pterm.Warning.Println("No budgets found")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Period", "Category", "Limit"}}
	for _, b := range budgets {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", b.ID),
			fmt.Sprintf("%04d-%02d", b.Year, b.Month),
			b.Category,
			utils.FormatAmount(b.LimitAmount),
		})
	}

	pterm.DefaultSection.Printf("Budgets")
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func RenderBudgetProgress(month, year int, lines []service.BudgetLine) error {
	pterm.DefaultSection.Printf("Budget Progress %04d-%02d", year, month)
	if len(lines) == 0 {
		pterm.Warning.Println("No budgets set for this month")
		return nil
	}

	tableData := pterm.TableData{{"Category", "Limit", "Spent", "Remaining", "Used"}}
	for _, l := range lines {
		remaining := utils.FormatAmount(l.Remaining)
		if l.Remaining.IsNegative() {
			remaining = pterm.Red(remaining)
		} else {
			remaining = pterm.Green(remaining)
		}

		used := "-"
		if l.Limit.IsPositive() {
			used = l.Spent.Div(l.Limit).Shift(2).StringFixed(0) + "%"
		}

		tableData = append(tableData, []string{
			l.Category,
			utils.FormatAmount(l.Limit),
			utils.FormatAmount(l.Spent),
			remaining,
			used,
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
