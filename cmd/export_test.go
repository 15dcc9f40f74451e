package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hance08/cashflow/internal/config"
	"github.com/hance08/cashflow/internal/logger"
	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func newExportFixture(t *testing.T) (*service.Service, *store.Store) {
	t.Helper()
	s, err := store.NewStore(filepath.Join(t.TempDir(), "cashflow.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	svc := service.NewService(s, config.NewDefault(), zerolog.Nop())

	acc, err := svc.Account.CreateAccount(service.NewAccount{Name: "Checking", Type: model.AccountBank})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	_, err = svc.Transaction.AddTransaction(service.NewTransaction{
		Type:      model.TxExpense,
		AccountID: acc.ID,
		Amount:    decimal.RequireFromString("12.50"),
		BookedAt:  "2025-03-04",
	})
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	return svc, s
}

func leftoverTemps(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".cashflow-export-*"))
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	return matches
}

func TestExport_WritesFile(t *testing.T) {
	svc, _ := newExportFixture(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.csv")

	runner := &exportRunner{svc: svc, flags: &exportFlags{Output: path}, log: zerolog.Nop()}
	n, err := runner.exportToFile(path)
	if err != nil {
		t.Fatalf("exportToFile: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 row, got %d", n)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "id,account_id,type,amount") {
		t.Errorf("unexpected csv content:\n%s", data)
	}
	if tmp := leftoverTemps(t, dir); len(tmp) != 0 {
		t.Errorf("temp files left behind: %v", tmp)
	}
}

func TestExport_FailureKeepsExistingFile(t *testing.T) {
	svc, s := newExportFixture(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.csv")
	if err := os.WriteFile(path, []byte("previous export\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// A closed store makes every read fail.
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	runner := &exportRunner{svc: svc, flags: &exportFlags{Output: path}, log: zerolog.Nop()}
	if err := runner.Run(); err == nil {
		t.Fatal("expected export to fail on a closed store")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "previous export\n" {
		t.Errorf("existing file was modified: %q", data)
	}
	if tmp := leftoverTemps(t, dir); len(tmp) != 0 {
		t.Errorf("temp files left behind: %v", tmp)
	}
}

func TestExport_FailureCreatesNoFile(t *testing.T) {
	svc, s := newExportFixture(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.csv")
	_ = s.Close()

	runner := &exportRunner{svc: svc, flags: &exportFlags{Output: path}, log: zerolog.Nop()}
	if err := runner.Run(); err == nil {
		t.Fatal("expected export to fail on a closed store")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no output file, stat err = %v", err)
	}
	if tmp := leftoverTemps(t, dir); len(tmp) != 0 {
		t.Errorf("temp files left behind: %v", tmp)
	}
}

func TestExportCmd_LogsThroughContextLogger(t *testing.T) {
	svc, _ := newExportFixture(t)
	path := filepath.Join(t.TempDir(), "ledger.csv")

	buf := &bytes.Buffer{}
	ctx := logger.WithContext(context.Background(), logger.NewWithWriter(buf))

	cmd := NewExportCmd(svc)
	cmd.SetArgs([]string{"--output", path})
	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatalf("ExecuteContext: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "export written") || !strings.Contains(out, `"rows":1`) {
		t.Errorf("expected export log line, got: %s", out)
	}
}
