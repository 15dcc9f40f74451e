package prompts

import (
	"fmt"
	"strings"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/validation"
)

// PromptAccountType prompts for account type selection
func PromptAccountType() (model.AccountType, error) {
	options := []string{
		"BANK - Checking or savings account",
		"WALLET - Cash on hand",
		"STASH - Money set aside",
		"CREDIT - Credit card or loan",
		"OTHER - Anything else",
	}

	selected, err := PromptSelect("Account Types:", options, "BANK")
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	return model.AccountType(strings.Split(selected, " ")[0]), nil
}

// PromptAccountName prompts for account name with validation
func PromptAccountName() (string, error) {
	return PromptInput("Account Name:", "", validation.ValidateAccountName)
}

// PromptCurrency prompts for currency selection with common options
func PromptCurrency(defaultCurrency string) (string, error) {
	commonCurrencies := []string{
		"USD - US Dollar",
		"EUR - Euro",
		"GBP - British Pound",
		"JPY - Japanese Yen",
		"CNY - Chinese Yuan",
		"TWD - Taiwan Dollar",
		"HKD - Hong Kong Dollar",
		"SGD - Singapore Dollar",
		"Other (Custom)",
	}

	message := fmt.Sprintf("Currency (default: %s):", defaultCurrency)

	selected, err := PromptSelect(message, commonCurrencies, defaultCurrency)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	if selected == "Other (Custom)" {
		customCurrency, err := PromptInput("Enter currency code:", "", validation.ValidateCurrency)
		if err != nil {
			return "", fmt.Errorf("input cancelled: %w", err)
		}
		return strings.ToUpper(strings.TrimSpace(customCurrency)), nil
	}

	return strings.Split(selected, " ")[0], nil
}

// PromptOpeningBalance prompts for the opening balance; it may be negative
// for credit accounts.
func PromptOpeningBalance() (string, error) {
	return PromptInput("Opening Balance (press Enter for 0):", "0", validation.ValidateSignedAmount)
}
