package budget

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui/prompts"
	"github.com/hance08/cashflow/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Month    int
	Year     int
	Category string
	Limit    string
}

type addRunner struct {
	svc   *service.Service
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a budget for a category and month",
		Long: `Add a spending limit for one category in one month.
Spending is matched on the exact category text.

Example: cashflow budget add --category Groceries --limit 400 --month 5 --year 2025`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	month, year := currentPeriod()
	cmd.Flags().IntVar(&flags.Month, "month", month, "Month (1-12), default is the current month")
	cmd.Flags().IntVar(&flags.Year, "year", year, "Year, default is the current year")
	cmd.Flags().StringVarP(&flags.Category, "category", "c", "", "Category to budget")
	cmd.Flags().StringVar(&flags.Limit, "limit", "", "Spending limit")

	return cmd
}

func (r *addRunner) Run() error {
	var in service.NewBudget
	var err error

	if r.cmd.Flags().Changed("category") || r.cmd.Flags().Changed("limit") {
		in, err = r.flagsMode()
	} else {
		in, err = r.interactiveMode()
	}
	if err != nil {
		return err
	}

	b, err := r.svc.Budget.AddBudget(in)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Budget #%d set: %s %s for %04d-%02d\n",
		b.ID, b.Category, utils.FormatAmount(b.LimitAmount), b.Year, b.Month)
	return nil
}

func (r *addRunner) flagsMode() (service.NewBudget, error) {
	if r.flags.Category == "" || r.flags.Limit == "" {
		return service.NewBudget{}, fmt.Errorf("when using flags, --category and --limit are both required")
	}

	limit, err := utils.ParseAmount(r.flags.Limit)
	if err != nil {
		return service.NewBudget{}, &model.ValidationError{Field: "limit", Msg: err.Error()}
	}

	return service.NewBudget{
		Month:       r.flags.Month,
		Year:        r.flags.Year,
		Category:    r.flags.Category,
		LimitAmount: limit,
	}, nil
}

func (r *addRunner) interactiveMode() (service.NewBudget, error) {
	form, err := prompts.PromptBudget()
	if err != nil {
		return service.NewBudget{}, err
	}

	month, err := strconv.Atoi(strings.TrimSpace(form.Month))
	if err != nil {
		return service.NewBudget{}, &model.ValidationError{Field: "month", Msg: "month must be a number"}
	}
	year, err := strconv.Atoi(strings.TrimSpace(form.Year))
	if err != nil {
		return service.NewBudget{}, &model.ValidationError{Field: "year", Msg: "year must be a number"}
	}
	limit, err := utils.ParseAmount(form.Limit)
	if err != nil {
		return service.NewBudget{}, &model.ValidationError{Field: "limit", Msg: err.Error()}
	}

	return service.NewBudget{
		Month:       month,
		Year:        year,
		Category:    form.Category,
		LimitAmount: limit,
	}, nil
}
