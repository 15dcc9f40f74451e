package transaction

import (
	"errors"
	"fmt"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui"
	"github.com/hance08/cashflow/internal/ui/prompts"
	"github.com/hance08/cashflow/internal/ui/views"
	"github.com/hance08/cashflow/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editFlags struct {
	Type          string
	Account       string
	Amount        string
	Category      string
	ClearCategory bool
	Merchant      string
	ClearMerchant bool
	Memo          string
	ClearMemo     bool
	Date          string
	To            string
	ClearTo       bool
	Void          bool
	Unvoid        bool
}

type EditCommandRunner struct {
	svc   *service.Service
	flags *editFlags
	cmd   *cobra.Command
}

func NewEditCmd(svc *service.Service) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>...",
		Short: "Edit one or more transactions",
		Long: `Edit transactions with flags, or a single transaction interactively.

Only the fields you pass change. Use the --clear-* flags to remove a
category, merchant, memo or transfer target. Changing a transfer into an
expense or income drops its target. Each ID is updated on its own.

Examples:
  cashflow transaction edit 12
  cashflow transaction edit 12 14 --category Groceries
  cashflow transaction edit 12 --clear-memo --date 2024-05-01`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &EditCommandRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Type, "type", "t", "", "New type: expense, income or transfer")
	f.StringVarP(&flags.Account, "account", "a", "", "New account (ID or name)")
	f.StringVar(&flags.Amount, "amount", "", "New amount")
	f.StringVarP(&flags.Category, "category", "c", "", "New category")
	f.BoolVar(&flags.ClearCategory, "clear-category", false, "Remove the category")
	f.StringVarP(&flags.Merchant, "merchant", "m", "", "New merchant")
	f.BoolVar(&flags.ClearMerchant, "clear-merchant", false, "Remove the merchant")
	f.StringVar(&flags.Memo, "memo", "", "New memo")
	f.BoolVar(&flags.ClearMemo, "clear-memo", false, "Remove the memo")
	f.StringVarP(&flags.Date, "date", "d", "", "New booking date (YYYY-MM-DD)")
	f.StringVar(&flags.To, "to", "", "New transfer target (ID or name)")
	f.BoolVar(&flags.ClearTo, "clear-to", false, "Remove the transfer target")
	f.BoolVar(&flags.Void, "void", false, "Mark as voided")
	f.BoolVar(&flags.Unvoid, "unvoid", false, "Restore a voided transaction")

	cmd.MarkFlagsMutuallyExclusive("category", "clear-category")
	cmd.MarkFlagsMutuallyExclusive("merchant", "clear-merchant")
	cmd.MarkFlagsMutuallyExclusive("memo", "clear-memo")
	cmd.MarkFlagsMutuallyExclusive("to", "clear-to")
	cmd.MarkFlagsMutuallyExclusive("void", "unvoid")

	return cmd
}

func (r *EditCommandRunner) Run(args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	if !r.hasEditFlags() {
		if len(ids) != 1 {
			return fmt.Errorf("interactive edit takes exactly one transaction ID, use flags to edit several")
		}
		return r.interactiveMode(ids[0])
	}

	patch, err := r.patchFromFlags()
	if err != nil {
		return err
	}

	updates := make([]service.TransactionUpdate, 0, len(ids))
	for _, id := range ids {
		updates = append(updates, service.TransactionUpdate{ID: id, Patch: patch})
	}

	res := r.svc.Transaction.UpdateMany(updates)
	views.RenderBatchResult("Updated", res)
	if res.Failed() > 0 {
		return errors.New("some transactions could not be updated")
	}
	return nil
}

func (r *EditCommandRunner) hasEditFlags() bool {
	for _, name := range []string{
		"type", "account", "amount", "category", "clear-category", "merchant", "clear-merchant",
		"memo", "clear-memo", "date", "to", "clear-to", "void", "unvoid",
	} {
		if r.cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func (r *EditCommandRunner) patchFromFlags() (service.TransactionPatch, error) {
	var patch service.TransactionPatch
	changed := r.cmd.Flags().Changed

	if changed("type") {
		t, err := model.ParseTransactionType(r.flags.Type)
		if err != nil {
			return patch, err
		}
		patch.Type = &t
	}
	if changed("account") {
		id, err := resolveAccountID(r.svc, r.flags.Account)
		if err != nil {
			return patch, err
		}
		patch.AccountID = &id
	}
	if changed("amount") {
		amount, err := utils.ParseAmount(r.flags.Amount)
		if err != nil {
			return patch, &model.ValidationError{Field: "amount", Msg: err.Error()}
		}
		patch.Amount = &amount
	}
	if changed("date") {
		date := r.flags.Date
		patch.BookedAt = &date
	}
	if changed("to") {
		id, err := resolveAccountID(r.svc, r.flags.To)
		if err != nil {
			return patch, fmt.Errorf("transfer target: %w", err)
		}
		patch.TransferAccountID = model.Value(id)
	}
	if r.flags.ClearTo {
		patch.TransferAccountID = model.Null[int64]()
	}

	patch.Category = textSlot(r.flags.Category, changed("category"), r.flags.ClearCategory)
	patch.Merchant = textSlot(r.flags.Merchant, changed("merchant"), r.flags.ClearMerchant)
	patch.Memo = textSlot(r.flags.Memo, changed("memo"), r.flags.ClearMemo)

	if r.flags.Void || r.flags.Unvoid {
		voided := r.flags.Void
		patch.Voided = &voided
	}

	return patch, nil
}

func textSlot(value string, set, clear bool) model.Nullable[string] {
	switch {
	case clear:
		return model.Null[string]()
	case set:
		return model.Value(value)
	default:
		return model.Nullable[string]{}
	}
}

const (
	menuType    = "Type"
	menuAccount = "Account"
	menuTarget  = "Transfer Target"
	menuAmount  = "Amount"
	menuDetails = "Category, Merchant, Memo"
	menuDate    = "Date"
	menuVoided  = "Void / Restore"
	menuSave    = "Save & Exit"
	menuDiscard = "Cancel (discard changes)"
)

func (r *EditCommandRunner) interactiveMode(txID int64) error {
	tx, err := r.svc.Transaction.GetTransaction(txID)
	if err != nil {
		return err
	}

	accounts, err := r.svc.Account.ListAccounts()
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	names := views.NewAccountNames(accounts)

	pterm.DefaultSection.Printf("Editing Transaction #%d", txID)
	if err := views.RenderTransactionDetail(tx, names); err != nil {
		return err
	}

	var patch service.TransactionPatch
	draft := *tx

	for {
		menuOptions := []string{menuType, menuAccount}
		if draft.Type == model.TxTransfer {
			menuOptions = append(menuOptions, menuTarget)
		}
		menuOptions = append(menuOptions, menuAmount, menuDetails, menuDate, menuVoided, menuSave, menuDiscard)

		editChoice, err := prompts.PromptSelect("What would you like to edit?", menuOptions, "")
		if err != nil {
			return err
		}

		switch editChoice {
		case menuType:
			t, err := prompts.PromptTransactionType(draft.Type)
			if err != nil {
				return err
			}
			draft.Type = t
			patch.Type = &t

		case menuAccount:
			id, err := prompts.PromptAccountSelection(accounts, "Account:", 0, balanceGetter(r.svc))
			if err != nil {
				return err
			}
			draft.AccountID = id
			patch.AccountID = &id

		case menuTarget:
			id, err := prompts.PromptAccountSelection(accounts, "To Account:", draft.AccountID, balanceGetter(r.svc))
			if err != nil {
				return err
			}
			draft.TransferAccountID = &id
			patch.TransferAccountID = model.Value(id)

		case menuAmount:
			amountStr, err := prompts.PromptAmount(utils.FormatAmount(draft.Amount))
			if err != nil {
				return err
			}
			amount, err := utils.ParseAmount(amountStr)
			if err != nil {
				pterm.Error.Printf("Invalid amount: %v\n", err)
				continue
			}
			draft.Amount = amount
			patch.Amount = &amount

		case menuDetails:
			if err := r.editDetails(&draft, &patch); err != nil {
				return err
			}

		case menuDate:
			date, err := prompts.PromptTransactionDate(utils.FormatDate(draft.BookedAt))
			if err != nil {
				return err
			}
			if err := setBookedAt(&draft, &patch, date); err != nil {
				pterm.Error.Printf("Invalid date: %v\n", err)
				continue
			}

		case menuVoided:
			voided, err := prompts.PromptConfirm("Mark this transaction as voided?", draft.Voided)
			if err != nil {
				return err
			}
			draft.Voided = voided
			patch.Voided = &voided

		case menuSave:
			changed, err := r.svc.Transaction.UpdateTransaction(txID, patch)
			if err != nil {
				pterm.Error.Printf("Cannot save: %v\n", err)
				pterm.Warning.Println("Please fix the errors before saving")
				continue
			}

			if changed {
				pterm.Success.Printf("Transaction #%d updated successfully\n", txID)
			} else {
				pterm.Info.Println("Nothing changed")
			}
			ui.Separator()
			return nil

		case menuDiscard:
			pterm.Info.Println("Changes discarded")
			return nil
		}
	}
}

// setBookedAt records a new booked date on both the draft shown in the menu
// and the pending patch.
func setBookedAt(draft *model.Transaction, patch *service.TransactionPatch, date string) error {
	bookedAt, err := service.ParseBookedAt(date)
	if err != nil {
		return err
	}
	draft.BookedAt = bookedAt
	patch.BookedAt = &date
	return nil
}

func (r *EditCommandRunner) editDetails(draft *model.Transaction, patch *service.TransactionPatch) error {
	category, err := prompts.PromptOptionalText("Category:", draft.Category)
	if err != nil {
		return err
	}
	merchant, err := prompts.PromptOptionalText("Merchant:", draft.Merchant)
	if err != nil {
		return err
	}
	memo, err := prompts.PromptOptionalText("Memo:", draft.Memo)
	if err != nil {
		return err
	}

	draft.Category, draft.Merchant, draft.Memo = category, merchant, memo
	patch.Category = model.FromPtr(category)
	patch.Merchant = model.FromPtr(merchant)
	patch.Memo = model.FromPtr(memo)

	pterm.Success.Println("Details updated")
	ui.Separator()
	return nil
}
