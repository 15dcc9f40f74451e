package transaction

import (
	"fmt"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Type          string
	Account       string
	Category      string
	From          string
	To            string
	IncludeVoided bool
	Limit         int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List transactions",
		Long: `List transactions, newest booking date first.

Filters combine with AND. --from is inclusive and --to exclusive.
--all lists every transaction including voided ones and ignores the other filters.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Filter by type: expense, income or transfer")
	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Filter by account (ID or name)")
	cmd.Flags().StringVarP(&flags.Category, "category", "c", "", "Filter by exact category")
	cmd.Flags().StringVar(&flags.From, "from", "", "Booked on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.To, "to", "", "Booked before this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&flags.IncludeVoided, "all", false, "Include voided transactions and ignore filters")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 20, "Maximum number of transactions to display (0 for all)")

	return cmd
}

func (r *listRunner) Run() error {
	q := service.TransactionQuery{
		Type:          model.TransactionType(r.flags.Type),
		Category:      r.flags.Category,
		From:          r.flags.From,
		To:            r.flags.To,
		IncludeVoided: r.flags.IncludeVoided,
	}

	if r.flags.Account != "" && !r.flags.IncludeVoided {
		id, err := resolveAccountID(r.svc, r.flags.Account)
		if err != nil {
			return err
		}
		q.AccountID = &id
		pterm.Info.Printf("Showing transactions for account: %s\n\n", r.flags.Account)
	}

	txs, err := r.svc.Transaction.ListTransactions(q)
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	names, err := accountNames(r.svc)
	if err != nil {
		return err
	}

	return views.NewTransactionListView(names).Render(txs, r.flags.Limit)
}
