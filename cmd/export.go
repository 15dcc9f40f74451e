package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hance08/cashflow/internal/logger"
	"github.com/hance08/cashflow/internal/service"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type exportFlags struct {
	Output        string
	IncludeVoided bool
}

type exportRunner struct {
	svc   *service.Service
	flags *exportFlags
	log   zerolog.Logger
}

func NewExportCmd(svc *service.Service) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as CSV",
		Long: `Write every transaction column as CSV with a header row.
Voided transactions are skipped unless --all is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &exportRunner{
				svc:   svc,
				flags: flags,
				log:   logger.FromContext(cmd.Context()),
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file (default is stdout)")
	cmd.Flags().BoolVar(&flags.IncludeVoided, "all", false, "Include voided transactions")

	return cmd
}

func (r *exportRunner) Run() error {
	if r.flags.Output == "" {
		_, err := r.svc.Transaction.ExportTransactionsCSV(os.Stdout, r.flags.IncludeVoided)
		return err
	}

	n, err := r.exportToFile(r.flags.Output)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Exported %d transactions to %s\n", n, r.flags.Output)
	return nil
}

// exportToFile writes into a temp file next to path and renames it over path
// once the export is complete, so a failed export never leaves a partial file.
func (r *exportRunner) exportToFile(path string) (int, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".cashflow-export-*.csv")
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	n, err := r.svc.Transaction.ExportTransactionsCSV(tmp, r.flags.IncludeVoided)
	if cerr := tmp.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to write %s: %w", path, cerr)
	}
	if err == nil {
		if rerr := os.Rename(tmpPath, path); rerr != nil {
			err = fmt.Errorf("failed to write %s: %w", path, rerr)
		}
	}

	if err != nil {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			r.log.Warn().Err(rmErr).Str("path", tmpPath).Msg("failed to remove partial export")
		}
		return 0, err
	}

	r.log.Debug().Int("rows", n).Str("path", path).Msg("export written")
	return n, nil
}
