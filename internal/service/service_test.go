package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hance08/cashflow/internal/config"
	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.NewStore(filepath.Join(t.TempDir(), "cashflow.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	cfg := config.NewDefault()
	return NewService(s, cfg, zerolog.Nop())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

func idPtr(id int64) *int64 { return &id }

func mustAccount(t *testing.T, svc *Service, name, opening string) int64 {
	t.Helper()
	acc, err := svc.Account.CreateAccount(NewAccount{
		Name:           name,
		Type:           model.AccountBank,
		OpeningBalance: dec(opening),
	})
	if err != nil {
		t.Fatalf("CreateAccount(%s): %v", name, err)
	}
	return acc.ID
}

func mustAdd(t *testing.T, svc *Service, in NewTransaction) *model.Transaction {
	t.Helper()
	tx, err := svc.Transaction.AddTransaction(in)
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	return tx
}

func expense(accountID int64, amount, category, booked string) NewTransaction {
	in := NewTransaction{Type: model.TxExpense, AccountID: accountID, Amount: dec(amount), BookedAt: booked}
	if category != "" {
		in.Category = strPtr(category)
	}
	return in
}

func assertBalance(t *testing.T, svc *Service, accountID int64, want string) {
	t.Helper()
	got, err := svc.Balance.AccountBalance(accountID)
	if err != nil {
		t.Fatalf("AccountBalance(%d): %v", accountID, err)
	}
	if !got.Equal(dec(want)) {
		t.Fatalf("AccountBalance(%d) = %s, want %s", accountID, got, want)
	}
}

func fixClock(svc *Service, at time.Time) {
	svc.Transaction.now = func() time.Time { return at }
}
