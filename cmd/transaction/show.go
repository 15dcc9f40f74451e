package transaction

import (
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui/views"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	svc *service.Service
}

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				svc: svc,
			}
			return runner.Run(args)
		},
	}
}

func (r *ShowCommandRunner) Run(args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	tx, err := r.svc.Transaction.GetTransaction(ids[0])
	if err != nil {
		return err
	}

	names, err := accountNames(r.svc)
	if err != nil {
		return err
	}
	return views.RenderTransactionDetail(tx, names)
}
