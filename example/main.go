// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Command example prints every date of a year, one per line, in Scottish
// Gaelic or English.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfg = &config{}

var info = "print every date of a year"
var rootCmd = &cobra.Command{
	Use:          "example",
	Short:        info,
	Long:         info,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(viper.GetViper(), cfg); err != nil {
			return err
		}
		logger, err := newLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()
		return printDates(cmd.OutOrStdout(), cfg, logger)
	},
}

func init() {
	initRootCmd(rootCmd, viper.GetViper())
}

func initRootCmd(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().Uint32("year", defaultYear, "year to print")
	cmd.Flags().String("lang", defaultLang, "language tag, gd or en")
	cmd.Flags().String("month", "", "only print this month, by name in either language")
	cmd.Flags().Bool("alt_sunday", false, "render Sunday as the Sabbath")
	cmd.Flags().String("config", "", "optional config file (toml, yaml or json)")
	cmd.Flags().String("log_level", defaultLogLevel, "log level: debug, info, warn, error")

	v.BindPFlag("year", cmd.Flags().Lookup("year"))
	v.BindPFlag("lang", cmd.Flags().Lookup("lang"))
	v.BindPFlag("month", cmd.Flags().Lookup("month"))
	v.BindPFlag("altSunday", cmd.Flags().Lookup("alt_sunday"))
	v.BindPFlag("config", cmd.Flags().Lookup("config"))
	v.BindPFlag("logLevel", cmd.Flags().Lookup("log_level"))
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = lvl
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
