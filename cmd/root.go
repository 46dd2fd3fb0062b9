package cmd

import (
	"fmt"
	"os"

	"tablediff/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tablediff",
	Short: "Key-indexed diff of two tabular datasets",
	Long: `tablediff compares two datasets sharing a schema (CSV files, XLSX sheets,
S3 objects or database tables) and reports keys present on one side only and
rows whose values differ, matched by a composite primary key.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with the development config for readable timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
