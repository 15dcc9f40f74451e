package account

import (
	"fmt"
	"strings"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui/prompts"
	"github.com/hance08/cashflow/internal/ui/views"
	"github.com/hance08/cashflow/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name     string
	Type     string
	Currency string
	Balance  string
}

type createRunner struct {
	svc   *service.Service
	flags *createFlags
	cmd   *cobra.Command
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account.",
		Long: `Create an account to record transactions against.

Account types: BANK, WALLET, STASH, CREDIT, OTHER.
Run without flags for interactive mode.

Example: cashflow account create -n Checking -t bank -b 1250.00`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account name")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Account type: BANK, WALLET, STASH, CREDIT, OTHER")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency code (defaults to config default)")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Opening balance (e.g. 1250.00, may be negative)")

	return cmd
}

func (r *createRunner) Run() error {
	var in service.NewAccount
	var err error

	hasFlags := r.cmd.Flags().Changed("name") || r.cmd.Flags().Changed("type")
	if hasFlags {
		in, err = r.flagsMode()
	} else {
		in, err = r.interactiveMode()
	}
	if err != nil {
		return err
	}

	acc, err := r.svc.Account.CreateAccount(in)
	if err != nil {
		return err
	}

	return views.RenderAccountSuccess(acc)
}

func (r *createRunner) flagsMode() (service.NewAccount, error) {
	if r.flags.Name == "" || r.flags.Type == "" {
		return service.NewAccount{}, fmt.Errorf("when using flags, --name and --type are both required")
	}

	accType, err := model.ParseAccountType(r.flags.Type)
	if err != nil {
		return service.NewAccount{}, err
	}

	balance, err := parseBalance(r.flags.Balance)
	if err != nil {
		return service.NewAccount{}, err
	}

	return service.NewAccount{
		Name:           r.flags.Name,
		Type:           accType,
		Currency:       r.flags.Currency,
		OpeningBalance: balance,
	}, nil
}

func (r *createRunner) interactiveMode() (service.NewAccount, error) {
	name, err := prompts.PromptAccountName()
	if err != nil {
		return service.NewAccount{}, err
	}

	accType, err := prompts.PromptAccountType()
	if err != nil {
		return service.NewAccount{}, err
	}

	currency, err := prompts.PromptCurrency(r.svc.Config.Defaults.Currency)
	if err != nil {
		return service.NewAccount{}, err
	}

	balanceStr, err := prompts.PromptOpeningBalance()
	if err != nil {
		return service.NewAccount{}, err
	}
	balance, err := parseBalance(balanceStr)
	if err != nil {
		return service.NewAccount{}, err
	}

	return service.NewAccount{
		Name:           name,
		Type:           accType,
		Currency:       currency,
		OpeningBalance: balance,
	}, nil
}

func parseBalance(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	balance, err := utils.ParseAmount(s)
	if err != nil {
		return decimal.Zero, &model.ValidationError{Field: "balance", Msg: err.Error()}
	}
	return balance, nil
}
