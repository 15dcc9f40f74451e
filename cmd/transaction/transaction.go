package transaction

import (
	"github.com/hance08/cashflow/internal/service"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(svc *service.Service) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    "Manage transactions: add, list, view details, void or edit them.",
	}

	transactionCmd.AddCommand(NewAddCmd(svc))
	transactionCmd.AddCommand(NewListCmd(svc))
	transactionCmd.AddCommand(NewShowCmd(svc))
	transactionCmd.AddCommand(NewVoidCmd(svc))
	transactionCmd.AddCommand(NewEditCmd(svc))

	return transactionCmd
}
