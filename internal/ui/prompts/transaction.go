package prompts

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hance08/cashflow/internal/constants"
	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/validation"
)

// PromptTransactionType prompts for transaction type selection
func PromptTransactionType(current model.TransactionType) (model.TransactionType, error) {
	selected := current
	if selected == "" {
		selected = model.TxExpense
	}

	err := huh.NewSelect[model.TransactionType]().
		Title("Choose the transaction type:").
		Options(transactionTypeOptions()...).
		Value(&selected).
		Run()

	return selected, err
}

var transactionTypeLabels = map[model.TransactionType]string{
	model.TxExpense:  "Record Expense",
	model.TxIncome:   "Record Income",
	model.TxTransfer: "Transfer",
}

func transactionTypeOptions() []huh.Option[model.TransactionType] {
	opts := make([]huh.Option[model.TransactionType], 0, len(model.TransactionTypes))
	for _, t := range model.TransactionTypes {
		label, ok := transactionTypeLabels[t]
		if !ok {
			label = string(t)
		}
		opts = append(opts, huh.NewOption(label, t))
	}
	return opts
}

// PromptAmount prompts for a non-negative transaction amount
func PromptAmount(current string) (string, error) {
	return PromptInput("Amount:", current, func(s string) error {
		if s == "" && current != "" {
			return nil
		}
		return validation.ValidateMagnitude(s)
	})
}

// PromptTransactionDate prompts for transaction date
func PromptTransactionDate(current string) (string, error) {
	if current == "" {
		current = time.Now().Format(constants.DateFormat)
	}
	return PromptDate(
		"Transaction Date (YYYY-MM-DD):",
		current,
		"Press Enter to keep "+current,
	)
}

// PromptAccountSelection lists accounts, skipping excludeID, and returns the
// chosen account id.
func PromptAccountSelection(
	accounts []*model.Account,
	message string,
	excludeID int64,
	balanceGetter func(int64) (string, error),
) (int64, error) {
	var opts []huh.Option[int64]

	for _, acc := range accounts {
		if acc.ID == excludeID {
			continue
		}

		displayName := fmt.Sprintf("%s (%s)", acc.Name, acc.Type)
		if balanceGetter != nil {
			balance, err := balanceGetter(acc.ID)
			if err == nil {
				displayName = fmt.Sprintf("%s (Balance: %s %s)", acc.Name, balance, acc.Currency)
			}
		}

		opts = append(opts, huh.NewOption(displayName, acc.ID))
	}

	if len(opts) == 0 {
		return 0, fmt.Errorf("no available accounts, create one with 'cashflow account create'")
	}

	var selected int64

	err := huh.NewSelect[int64]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(15).
		Run()

	return selected, err
}
