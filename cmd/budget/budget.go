package budget

import (
	"time"

	"github.com/hance08/cashflow/internal/service"
	"github.com/spf13/cobra"
)

func NewBudgetCmd(svc *service.Service) *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Set monthly category budgets and track spending against them.",
		Long:  `Set monthly category budgets and track spending against them.`,
	}

	budgetCmd.AddCommand(NewAddCmd(svc))
	budgetCmd.AddCommand(NewListCmd(svc))
	budgetCmd.AddCommand(NewProgressCmd(svc))

	return budgetCmd
}

func currentPeriod() (int, int) {
	now := time.Now()
	return int(now.Month()), now.Year()
}
