package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

func init() {
	migrateCmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Run database migrations",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := "up"
			if len(args) > 0 {
				direction = args[0]
			}

			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			switch direction {
			case "up":
				return store.MigrateUp(cfg.DatabaseURL, logger.Sugar())
			case "down":
				return store.MigrateDown(cfg.DatabaseURL, logger.Sugar())
			}

			return errors.Errorf("unknown migration direction %q", direction)
		},
	}

	RootCmd.AddCommand(migrateCmd)
}
