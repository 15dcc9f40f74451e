package model

import (
	"errors"
	"testing"
)

func TestCheckTransfer(t *testing.T) {
	one, two := int64(1), int64(2)
	cases := []struct {
		name     string
		txType   TransactionType
		account  int64
		transfer *int64
		ok       bool
	}{
		{"expense without target", TxExpense, 1, nil, true},
		{"income with target", TxIncome, 1, &two, false},
		{"transfer with target", TxTransfer, 1, &two, true},
		{"transfer without target", TxTransfer, 1, nil, false},
		{"transfer to itself", TxTransfer, 1, &one, false},
	}
	for _, tc := range cases {
		err := CheckTransfer(tc.txType, tc.account, tc.transfer)
		if tc.ok && err != nil {
			t.Fatalf("%s: expected ok, got %v", tc.name, err)
		}
		if !tc.ok {
			if err == nil {
				t.Fatalf("%s: expected error", tc.name)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("%s: expected validation error, got %v", tc.name, err)
			}
		}
	}
}

func TestParseTypes(t *testing.T) {
	if tt, err := ParseTransactionType(" transfer "); err != nil || tt != TxTransfer {
		t.Fatalf("expected TRANSFER, got %q (err=%v)", tt, err)
	}
	if _, err := ParseTransactionType("refund"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if at, err := ParseAccountType("wallet"); err != nil || at != AccountWallet {
		t.Fatalf("expected WALLET, got %q (err=%v)", at, err)
	}
	if _, err := ParseAccountType("SAVINGS"); err == nil {
		t.Fatalf("expected error for unknown account type")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	var err error = &FormatError{Field: "booked_at", Value: "yesterday"}
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("format errors should count as validation errors")
	}
	err = &NotFoundError{Entity: "transaction", ID: 9}
	if !errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) {
		t.Fatalf("unexpected classification for %v", err)
	}
	inner := errors.New("disk I/O error")
	err = &StoreError{Op: "insert transaction", Err: inner}
	if !errors.Is(err, ErrStore) || !errors.Is(err, inner) {
		t.Fatalf("store error should match ErrStore and unwrap to the cause")
	}
}
