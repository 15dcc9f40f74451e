package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a money value with two decimals, e.g. "-12.50".
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func FormatMoney(d decimal.Decimal, currency string) string {
	if currency == "" {
		return FormatAmount(d)
	}
	return fmt.Sprintf("%s %s", FormatAmount(d), currency)
}

// ParseAmount parses user input such as "150", "150.5" or "-20.75". Sign
// rules are the caller's business.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %s", amountStr)
	}
	return d, nil
}
