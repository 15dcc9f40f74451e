package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/cashflow/internal/model"
)

const accountColumns = "id, name, type, currency, opening_balance, created_at"

func (s *Store) CreateAccount(acc model.Account) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO accounts (name, type, currency, opening_balance)
        VALUES (?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, wrapErr("prepare account insert", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRow(acc.Name, string(acc.Type), acc.Currency, acc.OpeningBalance.String()).Scan(&newID)
	if err != nil {
		return 0, wrapErr(fmt.Sprintf("create account '%s'", acc.Name), err)
	}

	return newID, nil
}

func (s *Store) GetAllAccounts() ([]*model.Account, error) {
	rows, err := s.db.Query(`SELECT ` + accountColumns + ` FROM accounts ORDER BY id`)
	if err != nil {
		return nil, wrapErr("query accounts", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var accounts []*model.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, wrapErr("iterate accounts", rows.Err())
}

func (s *Store) GetAccountByID(id int64) (*model.Account, error) {
	row := s.db.QueryRow(`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &model.NotFoundError{Entity: "account", ID: id}
		}
		return nil, err
	}
	return acc, nil
}

// GetAccountByName returns the oldest account with exactly this name; names
// are not unique.
func (s *Store) GetAccountByName(name string) (*model.Account, error) {
	row := s.db.QueryRow(`SELECT `+accountColumns+` FROM accounts WHERE name = ? ORDER BY id LIMIT 1`, name)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s' doesn't exist: %w", name, model.ErrNotFound)
		}
		return nil, err
	}
	return acc, nil
}

// DeleteAccount removes an account; its transactions go with it through
// ON DELETE CASCADE.
func (s *Store) DeleteAccount(id int64) error {
	result, err := s.db.Exec(`DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return wrapErr("delete account", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapErr("delete account", err)
	}
	if rowsAffected == 0 {
		return &model.NotFoundError{Entity: "account", ID: id}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	acc := &model.Account{}
	var accType, createdAt string

	err := row.Scan(
		&acc.ID, &acc.Name, &accType,
		&acc.Currency, &acc.OpeningBalance, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, wrapErr("scan account", err)
	}

	acc.Type = model.AccountType(accType)
	if acc.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, wrapErr("scan account", err)
	}
	return acc, nil
}
