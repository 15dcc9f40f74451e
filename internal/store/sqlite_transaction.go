package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/utils"
	"github.com/shopspring/decimal"
)

const transactionColumns = `id, account_id, type, amount, category, merchant, memo,
        booked_at, transfer_account_id, created_at, voided, voided_at`

func (s *Store) CreateTransaction(tx model.Transaction) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO transactions (account_id, type, amount, category, merchant, memo, booked_at, transfer_account_id)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, wrapErr("prepare transaction insert", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRow(
		tx.AccountID, string(tx.Type), tx.Amount.String(),
		tx.Category, tx.Merchant, tx.Memo,
		formatDate(tx.BookedAt), tx.TransferAccountID,
	).Scan(&newID)
	if err != nil {
		return 0, wrapErr("insert transaction", err)
	}

	return newID, nil
}

func (s *Store) GetTransactionByID(id int64) (*model.Transaction, error) {
	row := s.db.QueryRow(`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &model.NotFoundError{Entity: "transaction", ID: id}
		}
		return nil, err
	}
	return tx, nil
}

// ListTransactions returns matching rows, newest booking date first, then
// newest insert first within a date.
func (s *Store) ListTransactions(filter TransactionFilter) ([]*model.Transaction, error) {
	where, args := filter.where()

	rows, err := s.db.Query(`SELECT `+transactionColumns+` FROM transactions`+where+`
        ORDER BY booked_at DESC, id DESC`, args...)
	if err != nil {
		return nil, wrapErr("query transactions", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var transactions []*model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, wrapErr("iterate transactions", rows.Err())
}

// SumAmounts adds up the amount of every matching row. Amounts are summed as
// decimals in Go rather than with SQL SUM, which would go through floats.
// No matching rows gives zero.
func (s *Store) SumAmounts(filter TransactionFilter) (decimal.Decimal, error) {
	where, args := filter.where()

	rows, err := s.db.Query(`SELECT amount FROM transactions`+where, args...)
	if err != nil {
		return decimal.Zero, wrapErr("query amounts", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	total := decimal.Zero
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, wrapErr("scan amount", err)
		}
		total = total.Add(amount)
	}

	return total, wrapErr("iterate amounts", rows.Err())
}

func (s *Store) UpdateTransaction(id int64, changes TransactionChanges) error {
	if changes.IsEmpty() {
		return nil
	}

	set, args := changes.assignments()
	args = append(args, id)

	result, err := s.db.Exec(`UPDATE transactions SET `+set+` WHERE id = ?`, args...)
	if err != nil {
		return wrapErr("update transaction", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapErr("update transaction", err)
	}
	if rowsAffected == 0 {
		return &model.NotFoundError{Entity: "transaction", ID: id}
	}
	return nil
}

// VoidTransaction flags a live transaction as voided. The voided = 0 guard
// makes a second call a no-op that keeps the first voided_at; it reports
// false in that case.
func (s *Store) VoidTransaction(id int64, at time.Time) (bool, error) {
	result, err := s.db.Exec(`
        UPDATE transactions
        SET voided = 1, voided_at = ?
        WHERE id = ? AND voided = 0
    `, formatTimestamp(at), id)
	if err != nil {
		return false, wrapErr("void transaction", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, wrapErr("void transaction", err)
	}
	if rowsAffected > 0 {
		return true, nil
	}

	var exists bool
	if err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM transactions WHERE id = ?)`, id).Scan(&exists); err != nil {
		return false, wrapErr("check transaction existence", err)
	}
	if !exists {
		return false, &model.NotFoundError{Entity: "transaction", ID: id}
	}
	return false, nil
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	tx := &model.Transaction{}
	var (
		txType, bookedAt, createdAt string
		category, merchant, memo    sql.NullString
		transferAccountID           sql.NullInt64
		voidedAt                    sql.NullString
	)

	err := row.Scan(
		&tx.ID, &tx.AccountID, &txType, &tx.Amount,
		&category, &merchant, &memo,
		&bookedAt, &transferAccountID, &createdAt,
		&tx.Voided, &voidedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, wrapErr("scan transaction", err)
	}

	tx.Type = model.TransactionType(txType)
	tx.Category = nullString(category)
	tx.Merchant = nullString(merchant)
	tx.Memo = nullString(memo)
	if transferAccountID.Valid {
		tx.TransferAccountID = &transferAccountID.Int64
	}

	booked, err := parseTimestamp(bookedAt)
	if err != nil {
		return nil, wrapErr("scan transaction", err)
	}
	tx.BookedAt = utils.ToDate(booked)

	if tx.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, wrapErr("scan transaction", err)
	}
	if voidedAt.Valid {
		t, err := parseTimestamp(voidedAt.String)
		if err != nil {
			return nil, wrapErr("scan transaction", err)
		}
		tx.VoidedAt = &t
	}

	return tx, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func parseTimestamp(s string) (time.Time, error) {
	return utils.ParseTimestamp(s)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatDate(t time.Time) string {
	return utils.FormatDate(t)
}
