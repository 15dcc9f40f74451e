package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountBank   AccountType = "BANK"
	AccountWallet AccountType = "WALLET"
	AccountStash  AccountType = "STASH"
	AccountCredit AccountType = "CREDIT"
	AccountOther  AccountType = "OTHER"
)

// AccountTypes lists every account type in display order.
var AccountTypes = []AccountType{AccountBank, AccountWallet, AccountStash, AccountCredit, AccountOther}

func (t AccountType) Valid() bool {
	switch t {
	case AccountBank, AccountWallet, AccountStash, AccountCredit, AccountOther:
		return true
	}
	return false
}

// ParseAccountType accepts any letter case, e.g. "bank" or "BANK".
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", &ValidationError{Field: "type", Msg: fmt.Sprintf("invalid account type '%s' (must be one of BANK, WALLET, STASH, CREDIT, OTHER)", s)}
	}
	return t, nil
}

type Account struct {
	ID             int64
	Name           string
	Type           AccountType
	Currency       string
	OpeningBalance decimal.Decimal
	CreatedAt      time.Time
}
