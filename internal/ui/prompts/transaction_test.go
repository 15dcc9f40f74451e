package prompts

import (
	"testing"

	"github.com/hance08/cashflow/internal/model"
)

func TestTransactionTypeOptions(t *testing.T) {
	opts := transactionTypeOptions()
	if len(opts) != len(model.TransactionTypes) {
		t.Fatalf("expected %d options, got %d", len(model.TransactionTypes), len(opts))
	}

	want := []struct {
		label string
		value model.TransactionType
	}{
		{"Record Expense", model.TxExpense},
		{"Record Income", model.TxIncome},
		{"Transfer", model.TxTransfer},
	}
	for i, w := range want {
		if opts[i].Key != w.label || opts[i].Value != w.value {
			t.Errorf("option %d = (%q, %s), want (%q, %s)", i, opts[i].Key, opts[i].Value, w.label, w.value)
		}
	}
}
