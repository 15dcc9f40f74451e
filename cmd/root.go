package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/cashflow/cmd/account"
	"github.com/hance08/cashflow/cmd/budget"
	"github.com/hance08/cashflow/cmd/transaction"
	"github.com/hance08/cashflow/internal/app"
	"github.com/hance08/cashflow/internal/config"
	"github.com/hance08/cashflow/internal/constants"
	"github.com/hance08/cashflow/internal/errhandler"
	"github.com/hance08/cashflow/internal/logger"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		pterm.Warning.Printf("Ignoring .env: %v\n", err)
	}

	cfgFile = configFlag(os.Args[1:])
	cfg, err := initConfig()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)

	application, cleanup, err := app.NewApp(cfg, log)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "cashflow",
		Short: "cashflow is a CLI personal finance ledger",
		Long: `cashflow records accounts, expenses, income and transfers,
tracks monthly category budgets and reports balances.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", cfgFile, "set the config file path")

	svc := application.Service
	rootCmd.AddCommand(account.NewAccountCmd(svc))
	rootCmd.AddCommand(transaction.NewTransactionCmd(svc))
	rootCmd.AddCommand(budget.NewBudgetCmd(svc))

	rootCmd.AddCommand(transaction.NewAddCmd(svc))
	rootCmd.AddCommand(NewSummaryCmd(svc))
	rootCmd.AddCommand(NewExportCmd(svc))
	rootCmd.AddCommand(NewInfoCmd(svc, application.DBPath))

	err = rootCmd.ExecuteContext(logger.WithContext(context.Background(), log))
	cleanup()
	if err != nil {
		os.Exit(errhandler.HandleError(err))
	}
}

// configFlag reads --config ahead of cobra, since the database has to be
// open before the command tree is built.
func configFlag(args []string) string {
	set := pflag.NewFlagSet("config", pflag.ContinueOnError)
	set.ParseErrorsWhitelist.UnknownFlags = true
	set.SetOutput(io.Discard)
	set.Usage = func() {}

	path := set.String("config", "", "")
	_ = set.Parse(args)
	return *path
}

func initConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	defaults := config.NewDefault()
	viper.SetDefault("database.path", defaults.Database.Path)
	viper.SetDefault("defaults.currency", defaults.Defaults.Currency)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.format", defaults.Log.Format)

	if cfgFile == "" {
		if err := createDefaultConfig(); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}
	cfg.ConfigPath = viper.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func createDefaultConfig() error {
	appDir, err := app.AppDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
