package budget

import (
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Month int
	Year  int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
	cmd   *cobra.Command
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().IntVar(&flags.Month, "month", 0, "Only budgets for this month (1-12)")
	cmd.Flags().IntVar(&flags.Year, "year", 0, "Only budgets for this year")

	return cmd
}

func (r *listRunner) Run() error {
	var month, year *int
	if r.cmd.Flags().Changed("month") {
		month = &r.flags.Month
	}
	if r.cmd.Flags().Changed("year") {
		year = &r.flags.Year
	}

	budgets, err := r.svc.Budget.ListBudgets(month, year)
	if err != nil {
		return err
	}
	return views.RenderBudgetList(budgets)
}
