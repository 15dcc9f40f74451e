package budget

import (
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui/views"
	"github.com/spf13/cobra"
)

type progressFlags struct {
	Month int
	Year  int
}

type progressRunner struct {
	svc   *service.Service
	flags *progressFlags
}

func NewProgressCmd(svc *service.Service) *cobra.Command {
	flags := &progressFlags{}

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show spending against each budget for a month",
		Long: `Compare each budgeted category with the non-voided expenses booked
under exactly that category during the month.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &progressRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	month, year := currentPeriod()
	cmd.Flags().IntVar(&flags.Month, "month", month, "Month (1-12), default is the current month")
	cmd.Flags().IntVar(&flags.Year, "year", year, "Year, default is the current year")

	return cmd
}

func (r *progressRunner) Run() error {
	lines, err := r.svc.Budget.BudgetProgress(r.flags.Month, r.flags.Year)
	if err != nil {
		return err
	}
	return views.RenderBudgetProgress(r.flags.Month, r.flags.Year, lines)
}
