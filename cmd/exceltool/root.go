package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lingEric/exceltool/internal/config"
	"github.com/lingEric/exceltool/internal/logging"
)

type rootFlags struct {
	envFile   string
	logLevel  string
	logFormat string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "exceltool",
		Short: "Export and import record rosters as Excel workbooks",
		Long: `exceltool writes demo student rosters to Excel workbooks, paginated
across sheets with a title band, header row and dropdown constraints,
and reads them back as JSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rf.envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = rf.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = rf.logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			rf.cfg = cfg
			rf.logger = logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rf.envFile, "env-file", config.DefaultEnvFile, "Dotenv file read at startup if present")
	pf.StringVar(&rf.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&rf.logFormat, "log-format", "text", "Log format: text, json")

	rootCmd.AddCommand(newExportCmd(rf), newImportCmd(rf))
	return rootCmd
}
