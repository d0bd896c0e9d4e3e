package main

import (
	"errors"
	"fmt"
	"os"

	"bench-report/internal/app"
	"bench-report/internal/shared/configs"

	"github.com/spf13/cobra"
)

const (
	defaultConfigPath = "./configs/configs.yml"
	successMessage    = "create table successfully!"
)

type rootOptions struct {
	configPath string
	tableName  string
	logLevel   string
	cfg        *configs.Config
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "benchtable",
		Short: "Average benchmark logs into a spreadsheet table",
		Long: `benchtable reads a benchmark log (one "size [run] metric value ..." row per line),
averages the samples of each contiguous size run and writes the averages to
<table_name>.xlsx, one row per size.

Without a subcommand it performs a single report run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.New(opts.cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			if _, err := application.RunReport(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successMessage)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "config file")
	rootCmd.PersistentFlags().StringVarP(&opts.tableName, "table", "t", "", "bench log to report on (overrides report.table_name)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (overrides log.level)")

	rootCmd.AddCommand(newServeCommand(opts))

	return rootCmd
}

// loadConfig reads the config file. The default path is optional: when it is missing and
// --config was not given, defaults and BENCHTABLE_* variables apply.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*configs.Config, error) {
	path := o.configPath
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}

	cfg, err := configs.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if o.tableName != "" {
		cfg.Report.TableName = o.tableName
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	return cfg, nil
}
