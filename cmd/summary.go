package cmd

import (
	"time"

	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui/views"
	"github.com/hance08/cashflow/internal/utils"
	"github.com/spf13/cobra"
)

type summaryFlags struct {
	Month int
	Year  int
}

type summaryRunner struct {
	svc   *service.Service
	flags *summaryFlags
}

func NewSummaryCmd(svc *service.Service) *cobra.Command {
	flags := &summaryFlags{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show total balance and a month overview",
		Long: `Show the total of all account balances, the month's spending and income,
and the five largest expense categories. Balances in different currencies
are added as plain numbers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &summaryRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	now := time.Now()
	cmd.Flags().IntVar(&flags.Month, "month", int(now.Month()), "Month (1-12), default is the current month")
	cmd.Flags().IntVar(&flags.Year, "year", now.Year(), "Year, default is the current year")

	return cmd
}

func (r *summaryRunner) Run() error {
	portfolio, err := r.svc.Balance.PortfolioSummary()
	if err != nil {
		return err
	}

	overview, err := r.svc.Report.MonthOverview(r.flags.Month, r.flags.Year)
	if err != nil {
		return err
	}

	return views.RenderMonthOverview(overview, utils.FormatAmount(portfolio.Total))
}
