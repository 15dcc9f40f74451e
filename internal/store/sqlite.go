package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Foreign keys must be on for the account -> transactions cascade. Immediate
// locking makes every transaction take the write lock up front so writers
// queue on busy_timeout instead of failing mid-way.
const dsnOptions = "?_foreign_keys=on&_txlock=immediate&_busy_timeout=5000"

type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Prepare(query string) (*sql.Stmt, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

type Store struct {
	db DBTX
}

func NewStore(dbPath string) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := addVoidColumns(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to upgrade legacy schema : %w", err)
	}
	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) ExecTx(fn func(Repository) error) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return ErrInTransaction
	}

	tx, err := db.Begin()
	if err != nil {
		return wrapErr("begin transaction", err)
	}

	txStore := &Store{db: tx}

	err = fn(txStore)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
		}
		return err
	}
	return wrapErr("commit transaction", tx.Commit())
}

func (s *Store) Close() error {
	if db, ok := s.db.(*sql.DB); ok {
		return db.Close()
	}
	return nil
}

func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

// addVoidColumns upgrades a transactions table created before voiding existed.
// It runs ahead of the migrations because their indexes reference voided.
// On a fresh database the table does not exist yet and nothing happens.
func addVoidColumns(db DBTX) error {
	cols, err := tableColumns(db, "transactions")
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		return nil
	}

	if !cols["voided"] {
		if _, err := db.Exec("ALTER TABLE transactions ADD COLUMN voided INTEGER NOT NULL DEFAULT 0"); err != nil {
			return fmt.Errorf("failed to add voided column: %w", err)
		}
	}
	if !cols["voided_at"] {
		if _, err := db.Exec("ALTER TABLE transactions ADD COLUMN voided_at TEXT"); err != nil {
			return fmt.Errorf("failed to add voided_at column: %w", err)
		}
	}
	return nil
}

func tableColumns(db DBTX, table string) (map[string]bool, error) {
	rows, err := db.Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect table %s: %w", table, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column name: %w", err)
		}
		cols[name] = true
	}
	return cols, rows.Err()
}
