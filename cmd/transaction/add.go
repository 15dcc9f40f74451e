package transaction

import (
	"fmt"
	"time"

	"github.com/hance08/cashflow/internal/constants"
	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui/prompts"
	"github.com/hance08/cashflow/internal/ui/views"
	"github.com/hance08/cashflow/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Type     string
	Account  string
	Amount   string
	Category string
	Merchant string
	Memo     string
	Date     string
	To       string
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
		Short: "Add a new transaction",
		Long: `Record an expense, an income or a transfer between two accounts.

Use flags for quick entry or run without flags for interactive mode.
Accounts can be given by ID or by name.

Examples:
  # Interactive mode
  cashflow add

  # Quick mode with flags
  cashflow add --type expense --account Checking --amount 4.50 --category Coffee

  # Transfer between accounts
  cashflow add --type transfer --account Checking --to Savings --amount 200`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "expense", "Transaction type: expense, income or transfer")
	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Account (ID or name)")
	cmd.Flags().StringVar(&flags.Amount, "amount", "", "Transaction amount (e.g., 150 or 150.50)")
	cmd.Flags().StringVarP(&flags.Category, "category", "c", "", "Category (optional)")
	cmd.Flags().StringVarP(&flags.Merchant, "merchant", "m", "", "Merchant (optional)")
	cmd.Flags().StringVar(&flags.Memo, "memo", "", "Memo (optional)")
	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Booking date (YYYY-MM-DD), default is today")
	cmd.Flags().StringVar(&flags.To, "to", "", "Target account for transfers (ID or name)")

	return cmd
}

func (r *addRunner) Run() error {
	var in service.NewTransaction
	var err error

	hasFlags := r.cmd.Flags().Changed("account") || r.cmd.Flags().Changed("amount")
	if hasFlags {
		in, err = r.flagsMode()
	} else {
		in, err = r.interactiveMode()
	}
	if err != nil {
		return err
	}

	tx, err := r.svc.Transaction.AddTransaction(in)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction created successfully! (ID: %d)\n", tx.ID)

	names, err := accountNames(r.svc)
	if err != nil {
		return err
	}
	return views.RenderTransactionDetail(tx, names)
}

func (r *addRunner) flagsMode() (service.NewTransaction, error) {
	if r.flags.Account == "" || r.flags.Amount == "" {
		return service.NewTransaction{}, fmt.Errorf("when using flags, --account and --amount are both required")
	}

	txType, err := model.ParseTransactionType(r.flags.Type)
	if err != nil {
		return service.NewTransaction{}, err
	}

	accountID, err := resolveAccountID(r.svc, r.flags.Account)
	if err != nil {
		return service.NewTransaction{}, err
	}

	amount, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return service.NewTransaction{}, &model.ValidationError{Field: "amount", Msg: err.Error()}
	}

	var target *int64
	if r.flags.To != "" {
		id, err := resolveAccountID(r.svc, r.flags.To)
		if err != nil {
			return service.NewTransaction{}, fmt.Errorf("transfer target: %w", err)
		}
		target = &id
	}

	date := r.flags.Date
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	flags := r.cmd.Flags()
	return service.NewTransaction{
		Type:              txType,
		AccountID:         accountID,
		Amount:            amount,
		Category:          optionalText(r.flags.Category, flags.Changed("category")),
		Merchant:          optionalText(r.flags.Merchant, flags.Changed("merchant")),
		Memo:              optionalText(r.flags.Memo, flags.Changed("memo")),
		BookedAt:          date,
		TransferAccountID: target,
	}, nil
}

func (r *addRunner) interactiveMode() (service.NewTransaction, error) {
	accounts, err := r.svc.Account.ListAccounts()
	if err != nil {
		return service.NewTransaction{}, fmt.Errorf("failed to load accounts: %w", err)
	}

	// Step 1: type
	txType, err := prompts.PromptTransactionType("")
	if err != nil {
		return service.NewTransaction{}, err
	}

	// Step 2: accounts
	sourceTitle := map[model.TransactionType]string{
		model.TxExpense:  "Payment Source:",
		model.TxIncome:   "Deposit To:",
		model.TxTransfer: "From Account:",
	}[txType]

	accountID, err := prompts.PromptAccountSelection(accounts, sourceTitle, 0, balanceGetter(r.svc))
	if err != nil {
		return service.NewTransaction{}, err
	}

	var target *int64
	if txType == model.TxTransfer {
		id, err := prompts.PromptAccountSelection(accounts, "To Account:", accountID, balanceGetter(r.svc))
		if err != nil {
			return service.NewTransaction{}, err
		}
		target = &id
	}

	// Step 3: amount
	amountStr, err := prompts.PromptAmount("")
	if err != nil {
		return service.NewTransaction{}, err
	}
	amount, err := utils.ParseAmount(amountStr)
	if err != nil {
		return service.NewTransaction{}, fmt.Errorf("invalid amount format: %w", err)
	}

	// Step 4: optional details
	category, err := prompts.PromptOptionalText("Category:", nil)
	if err != nil {
		return service.NewTransaction{}, err
	}
	merchant, err := prompts.PromptOptionalText("Merchant:", nil)
	if err != nil {
		return service.NewTransaction{}, err
	}
	memo, err := prompts.PromptOptionalText("Memo:", nil)
	if err != nil {
		return service.NewTransaction{}, err
	}

	// Step 5: date
	date, err := prompts.PromptTransactionDate("")
	if err != nil {
		return service.NewTransaction{}, err
	}

	return service.NewTransaction{
		Type:              txType,
		AccountID:         accountID,
		Amount:            amount,
		Category:          category,
		Merchant:          merchant,
		Memo:              memo,
		BookedAt:          date,
		TransferAccountID: target,
	}, nil
}
