package account

import (
	"fmt"

	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui/views"
	"github.com/spf13/cobra"
)

type listRunner struct {
	svc *service.Service
}

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all accounts with their balances",
		Long: `List all accounts in creation order with their current balance.
Voided transactions do not count towards balances.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{svc: svc}
			return runner.Run()
		},
	}
}

func (r *listRunner) Run() error {
	summary, err := r.svc.Balance.PortfolioSummary()
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	return views.NewAccountListView().Render(summary)
}
