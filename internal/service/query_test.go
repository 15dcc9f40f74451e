package service

import (
	"errors"
	"testing"

	"github.com/hance08/cashflow/internal/model"
)

func ids(txs []*model.Transaction) []int64 {
	out := make([]int64, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.ID)
	}
	return out
}

func sameIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListTransactions(t *testing.T) {
	svc := newTestService(t)
	a := mustAccount(t, svc, "A", "0")
	b := mustAccount(t, svc, "B", "0")

	t1 := mustAdd(t, svc, expense(a, "10", "Food", "2024-03-01"))
	t2 := mustAdd(t, svc, expense(a, "20", "Rent", "2024-03-15"))
	t3 := mustAdd(t, svc, NewTransaction{Type: model.TxIncome, AccountID: b, Amount: dec("100"), BookedAt: "2024-03-15"})
	t4 := mustAdd(t, svc, expense(b, "5", "Food", "2024-04-01"))
	voided := mustAdd(t, svc, expense(a, "99", "Food", "2024-03-20"))
	if _, err := svc.Transaction.VoidTransaction(voided.ID); err != nil {
		t.Fatalf("VoidTransaction: %v", err)
	}

	cases := []struct {
		name string
		q    TransactionQuery
		want []int64
	}{
		{"default", TransactionQuery{}, []int64{t4.ID, t3.ID, t2.ID, t1.ID}},
		{"by type", TransactionQuery{Type: "expense"}, []int64{t4.ID, t2.ID, t1.ID}},
		{"by account", TransactionQuery{AccountID: idPtr(a)}, []int64{t2.ID, t1.ID}},
		{"by category", TransactionQuery{Category: "Food"}, []int64{t4.ID, t1.ID}},
		{"category is case sensitive", TransactionQuery{Category: "food"}, nil},
		{"half-open window", TransactionQuery{From: "2024-03-01", To: "2024-04-01"}, []int64{t3.ID, t2.ID, t1.ID}},
		{"combined", TransactionQuery{Type: model.TxExpense, Category: "Food", From: "2024-03-02"}, []int64{t4.ID}},
		{"empty window", TransactionQuery{From: "2024-04-01", To: "2024-03-01"}, nil},
		{"include voided ignores filters", TransactionQuery{IncludeVoided: true, AccountID: idPtr(b)}, []int64{t4.ID, voided.ID, t3.ID, t2.ID, t1.ID}},
	}
	for _, tc := range cases {
		txs, err := svc.Transaction.ListTransactions(tc.q)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got := ids(txs); !sameIDs(got, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}

	all, _ := svc.Transaction.ListTransactions(TransactionQuery{IncludeVoided: true})
	seen := 0
	for _, tx := range all {
		if tx.ID == voided.ID {
			seen++
			if !tx.Voided {
				t.Fatal("voided row must be flagged")
			}
		}
	}
	if seen != 1 {
		t.Fatalf("voided row must appear exactly once, got %d", seen)
	}
}

func TestListTransactions_InvalidFilters(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Transaction.ListTransactions(TransactionQuery{Type: "LOAN"}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var fe *model.FormatError
	if _, err := svc.Transaction.ListTransactions(TransactionQuery{From: "March"}); !errors.As(err, &fe) {
		t.Fatalf("expected format error, got %v", err)
	}
}
