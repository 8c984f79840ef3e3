package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric/global"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/ncnews/internal/app"
	"github.com/SergeyParamoshkin/ncnews/internal/config"
	"github.com/SergeyParamoshkin/ncnews/internal/metrics"
	"github.com/SergeyParamoshkin/ncnews/internal/store"
)

var migrateOnStart bool

// Swapped in tests.
var (
	connectDB = store.Connect
	migrateUp = store.MigrateUp
)

// openStore waits for the database with connectDB's backoff and only then
// applies migrations, when asked to.
func openStore(ctx context.Context, logger *zap.SugaredLogger, migrate bool) (*store.Store, error) {
	db, err := connectDB(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, err
	}

	if migrate {
		if err := migrateUp(cfg.DatabaseURL, logger); err != nil {
			db.Close()

			return nil, err
		}
	}

	return store.New(db), nil
}

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the API and diag servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync() // flushes buffer, if any
			sugar := logger.Sugar()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, err := openStore(ctx, sugar, migrateOnStart)
			if err != nil {
				return err
			}
			defer s.Close()

			exporter, err := metrics.NewExporter()
			if err != nil {
				return err
			}
			httpMetrics := metrics.NewHTTP(global.Meter(config.ServiceName))

			a := app.New(sugar, s, httpMetrics)

			return a.Serve(ctx, cfg.Addr, cfg.DiagAddr, app.DiagRouter(exporter))
		},
	}
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")

	RootCmd.AddCommand(serveCmd)
}

