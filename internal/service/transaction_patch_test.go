package service

import (
	"errors"
	"testing"
	"time"

	"github.com/hance08/cashflow/internal/model"
)

func patchType(t model.TransactionType) *model.TransactionType { return &t }

func boolPtr(b bool) *bool { return &b }

func TestUpdateTransaction_TypeToTransferNeedsTarget(t *testing.T) {
	svc := newTestService(t)
	a := mustAccount(t, svc, "A", "0")
	tx := mustAdd(t, svc, expense(a, "20", "Food", "2024-01-10"))

	_, err := svc.Transaction.UpdateTransaction(tx.ID, TransactionPatch{Type: patchType(model.TxTransfer)})
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	got, err := svc.Transaction.GetTransaction(tx.ID)
	if err != nil {
		t.Fatalf("GetTransaction: %v", err)
	}
	if got.Type != model.TxExpense || got.TransferAccountID != nil {
		t.Fatalf("row must be unmodified, got %+v", got)
	}
}

func TestUpdateTransaction_TransferRules(t *testing.T) {
	svc := newTestService(t)
	a := mustAccount(t, svc, "A", "100")
	b := mustAccount(t, svc, "B", "0")
	tx := mustAdd(t, svc, expense(a, "20", "", "2024-01-10"))

	changed, err := svc.Transaction.UpdateTransaction(tx.ID, TransactionPatch{
		Type:              patchType(model.TxTransfer),
		TransferAccountID: model.Value(b),
	})
	if err != nil || !changed {
		t.Fatalf("to transfer: changed=%v err=%v", changed, err)
	}
	assertBalance(t, svc, a, "80")
	assertBalance(t, svc, b, "20")

	if _, err := svc.Transaction.UpdateTransaction(tx.ID, TransactionPatch{AccountID: idPtr(b)}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("moving a transfer onto its target must fail, got %v", err)
	}
	if _, err := svc.Transaction.UpdateTransaction(tx.ID, TransactionPatch{TransferAccountID: model.Null[int64]()}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("clearing the target of a transfer must fail, got %v", err)
	}

	// Back to income: the target is dropped even when one is submitted.
	changed, err = svc.Transaction.UpdateTransaction(tx.ID, TransactionPatch{
		Type:              patchType(model.TxIncome),
		TransferAccountID: model.Value(b),
	})
	if err != nil || !changed {
		t.Fatalf("to income: changed=%v err=%v", changed, err)
	}
	got, _ := svc.Transaction.GetTransaction(tx.ID)
	if got.Type != model.TxIncome || got.TransferAccountID != nil {
		t.Fatalf("unexpected row %+v", got)
	}
	assertBalance(t, svc, a, "120")
	assertBalance(t, svc, b, "0")
}

func TestUpdateTransaction_NullableFields(t *testing.T) {
	svc := newTestService(t)
	a := mustAccount(t, svc, "A", "0")
	tx := mustAdd(t, svc, NewTransaction{
		Type:      model.TxExpense,
		AccountID: a,
		Amount:    dec("9.99"),
		Category:  strPtr("Food"),
		Merchant:  strPtr("Bakery"),
		Memo:      strPtr("bread"),
		BookedAt:  "2024-01-10",
	})

	changed, err := svc.Transaction.UpdateTransaction(tx.ID, TransactionPatch{
		Category: model.Null[string](),
		Merchant: model.Value(""),
	})
	if err != nil || !changed {
		t.Fatalf("clear: changed=%v err=%v", changed, err)
	}

	got, _ := svc.Transaction.GetTransaction(tx.ID)
	if got.Category != nil || got.Merchant != nil {
		t.Fatalf("expected cleared category and merchant, got %+v", got)
	}
	if got.Memo == nil || *got.Memo != "bread" {
		t.Fatalf("omitted memo must be kept, got %v", got.Memo)
	}
}

func TestUpdateTransaction_NoOpWritesNothing(t *testing.T) {
	svc := newTestService(t)
	a := mustAccount(t, svc, "A", "0")
	tx := mustAdd(t, svc, expense(a, "10", "Food", "2024-01-10"))

	cases := []struct {
		name  string
		patch TransactionPatch
	}{
		{"empty patch", TransactionPatch{}},
		{"same values", TransactionPatch{
			Amount:   decPtr("10.00"),
			Category: model.Value("Food"),
			BookedAt: strPtr("2024-01-10T18:00:00Z"),
			Voided:   boolPtr(false),
		}},
		{"target on non-transfer", TransactionPatch{TransferAccountID: model.Value(a)}},
	}
	for _, tc := range cases {
		changed, err := svc.Transaction.UpdateTransaction(tx.ID, tc.patch)
		if err != nil || changed {
			t.Fatalf("%s: changed=%v err=%v", tc.name, changed, err)
		}
	}
}

func TestUpdateTransaction_VoidAndUnvoid(t *testing.T) {
	svc := newTestService(t)
	a := mustAccount(t, svc, "A", "50")
	tx := mustAdd(t, svc, expense(a, "10", "", "2024-01-10"))

	at := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	fixClock(svc, at)
	if changed, err := svc.Transaction.UpdateTransaction(tx.ID, TransactionPatch{Voided: boolPtr(true)}); err != nil || !changed {
		t.Fatalf("void: changed=%v err=%v", changed, err)
	}
	got, _ := svc.Transaction.GetTransaction(tx.ID)
	if !got.Voided || got.VoidedAt == nil || !got.VoidedAt.Equal(at) {
		t.Fatalf("expected voided at %v, got %+v", at, got)
	}
	assertBalance(t, svc, a, "50")

	// Editing a voided row keeps it voided with the original stamp.
	fixClock(svc, at.Add(24*time.Hour))
	if _, err := svc.Transaction.UpdateTransaction(tx.ID, TransactionPatch{Memo: model.Value("refund"), Voided: boolPtr(true)}); err != nil {
		t.Fatalf("edit voided: %v", err)
	}
	got, _ = svc.Transaction.GetTransaction(tx.ID)
	if !got.Voided || !got.VoidedAt.Equal(at) {
		t.Fatalf("voided_at must be unchanged, got %+v", got)
	}

	if changed, err := svc.Transaction.UpdateTransaction(tx.ID, TransactionPatch{Voided: boolPtr(false)}); err != nil || !changed {
		t.Fatalf("unvoid: changed=%v err=%v", changed, err)
	}
	got, _ = svc.Transaction.GetTransaction(tx.ID)
	if got.Voided || got.VoidedAt != nil {
		t.Fatalf("expected active row without voided_at, got %+v", got)
	}
	assertBalance(t, svc, a, "40")
}

func TestUpdateTransaction_Errors(t *testing.T) {
	svc := newTestService(t)
	a := mustAccount(t, svc, "A", "0")
	tx := mustAdd(t, svc, expense(a, "10", "", "2024-01-10"))

	if _, err := svc.Transaction.UpdateTransaction(999, TransactionPatch{Memo: model.Value("x")}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	var fe *model.FormatError
	if _, err := svc.Transaction.UpdateTransaction(tx.ID, TransactionPatch{BookedAt: strPtr("10.01.2024")}); !errors.As(err, &fe) {
		t.Fatalf("expected format error, got %v", err)
	}
	if _, err := svc.Transaction.UpdateTransaction(tx.ID, TransactionPatch{Amount: decPtr("-1")}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Transaction.UpdateTransaction(tx.ID, TransactionPatch{AccountID: idPtr(77)}); !errors.Is(err, model.ErrStore) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestUpdateMany_FailuresDoNotAbortSiblings(t *testing.T) {
	svc := newTestService(t)
	a := mustAccount(t, svc, "A", "0")
	t1 := mustAdd(t, svc, expense(a, "10", "", "2024-01-10"))
	t2 := mustAdd(t, svc, expense(a, "20", "", "2024-01-11"))

	res := svc.Transaction.UpdateMany([]TransactionUpdate{
		{ID: t1.ID, Patch: TransactionPatch{BookedAt: strPtr("not a date")}},
		{ID: t2.ID, Patch: TransactionPatch{Category: model.Value("Rent")}},
		{ID: t2.ID, Patch: TransactionPatch{Category: model.Value("Rent")}},
	})
	if res.Succeeded != 2 || res.Changed != 1 || res.Failed() != 1 || res.Errors[0].ID != t1.ID {
		t.Fatalf("unexpected result %+v", res)
	}

	got, _ := svc.Transaction.GetTransaction(t2.ID)
	if got.Category == nil || *got.Category != "Rent" {
		t.Fatalf("expected category Rent, got %v", got.Category)
	}
	got, _ = svc.Transaction.GetTransaction(t1.ID)
	if got.BookedAt.Format("2006-01-02") != "2024-01-10" {
		t.Fatalf("failed item must be untouched, got %v", got.BookedAt)
	}
}
