package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/utils"
)

var exportHeader = []string{
	"id", "account_id", "type", "amount", "category", "merchant", "memo",
	"booked_at", "transfer_account_id", "created_at", "voided", "voided_at",
}

// ExportTransactionsCSV writes the ledger as CSV with a header row. Voided
// rows are written only when includeVoided is set.
func (ts *TransactionService) ExportTransactionsCSV(w io.Writer, includeVoided bool) (int, error) {
	txs, err := ts.ListTransactions(TransactionQuery{IncludeVoided: includeVoided})
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, tx := range txs {
		if err := cw.Write(exportRecord(tx)); err != nil {
			return 0, fmt.Errorf("failed to write transaction %d: %w", tx.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush csv: %w", err)
	}

	ts.log.Info().Int("rows", len(txs)).Bool("include_voided", includeVoided).Msg("transactions exported")
	return len(txs), nil
}

func exportRecord(tx *model.Transaction) []string {
	voided := "0"
	if tx.Voided {
		voided = "1"
	}
	var transfer, voidedAt string
	if tx.TransferAccountID != nil {
		transfer = strconv.FormatInt(*tx.TransferAccountID, 10)
	}
	if tx.VoidedAt != nil {
		voidedAt = tx.VoidedAt.UTC().Format(time.RFC3339)
	}

	return []string{
		strconv.FormatInt(tx.ID, 10),
		strconv.FormatInt(tx.AccountID, 10),
		string(tx.Type),
		tx.Amount.String(),
		deref(tx.Category),
		deref(tx.Merchant),
		deref(tx.Memo),
		utils.FormatDate(tx.BookedAt),
		transfer,
		tx.CreatedAt.UTC().Format(time.RFC3339),
		voided,
		voidedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
