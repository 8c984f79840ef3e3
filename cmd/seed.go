package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

func init() {
	seedCmd := &cobra.Command{
		Use:   "seed [dataset]",
		Short: "Reset the tables and load an embedded dataset (default \"test\")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "test"
			if len(args) > 0 {
				name = args[0]
			}

			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()
			sugar := logger.Sugar()

			data, err := store.LoadSeed(name)
			if err != nil {
				return err
			}

			db, err := store.Connect(cmd.Context(), cfg.DatabaseURL, sugar)
			if err != nil {
				return err
			}
			s := store.New(db)
			defer s.Close()

			if err := s.Seed(cmd.Context(), data); err != nil {
				return err
			}

			sugar.Infow("seeded database",
				"dataset", name,
				"topics", len(data.Topics),
				"users", len(data.Users),
				"articles", len(data.Articles),
				"comments", len(data.Comments),
			)

			return nil
		},
	}

	RootCmd.AddCommand(seedCmd)
}
