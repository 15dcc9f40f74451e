package cmd

import (
	"os"

	"github.com/hance08/cashflow/internal/app"
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc    *service.Service
	dbPath string
}

func NewInfoCmd(svc *service.Service, dbPath string) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc:    svc,
				dbPath: dbPath,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.svc.Config.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbExists := false
	if _, err := os.Stat(r.dbPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          r.dbPath,
		DBExists:        dbExists,
		DefaultCurrency: r.svc.Config.Defaults.Currency,
		LogLevel:        r.svc.Config.Log.Level,
		AppDataDir:      appDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func appDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
