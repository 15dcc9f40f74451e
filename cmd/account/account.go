package account

import (
	"github.com/hance08/cashflow/internal/service"
	"github.com/spf13/cobra"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create accounts and list them with their balances.",
		Long:  `Create accounts and list them with their balances.`,
	}

	accountCmd.AddCommand(NewCreateCmd(svc))
	accountCmd.AddCommand(NewListCmd(svc))

	return accountCmd
}
