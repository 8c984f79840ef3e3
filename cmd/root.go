package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/ncnews/internal/config"
	"github.com/SergeyParamoshkin/ncnews/internal/logging"
)

// cfg holds the environment defaults; persistent flags override them.
var cfg = config.FromEnv()

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:          "ncnews",
	Short:        "NC News REST API",
	SilenceUsage: true,
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfg.Addr, "addr", cfg.Addr, "application address")
	flags.StringVar(&cfg.DiagAddr, "diag_addr", cfg.DiagAddr, "diag address")
	flags.StringVar(&cfg.DatabaseURL, "database_url", cfg.DatabaseURL, "postgres connection url")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "development logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, errors.Wrap(err, "create logger")
	}

	return logger, nil
}
