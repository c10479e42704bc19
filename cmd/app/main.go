package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"fyyurtrivia/cmd/fx/artist_fx"
	"fyyurtrivia/cmd/fx/category_fx"
	"fyyurtrivia/cmd/fx/config_fx"
	"fyyurtrivia/cmd/fx/controllers_fx"
	"fyyurtrivia/cmd/fx/db_fx"
	"fyyurtrivia/cmd/fx/logger_fx"
	"fyyurtrivia/cmd/fx/question_fx"
	"fyyurtrivia/cmd/fx/quiz_fx"
	"fyyurtrivia/cmd/fx/show_fx"
	"fyyurtrivia/cmd/fx/venue_fx"
	"fyyurtrivia/internal/config"
	"fyyurtrivia/internal/infra"
	"fyyurtrivia/internal/seed"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "app",
		Short:         "Trivia and venue booking API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(serveCmd(), migrateCmd(), seedCmd())
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				config_fx.Module,
				logger_fx.Module,
				db_fx.Module,
				category_fx.Module,
				question_fx.Module,
				quiz_fx.Module,
				venue_fx.Module,
				artist_fx.Module,
				show_fx.Module,
				controllers_fx.Module,

				fx.Provide(ProvideMetrics, ProvideRouter),
				fx.Invoke(StartServer),
			)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(_ context.Context, env *toolEnv) error {
				if err := infra.AutoMigrate(env.db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				env.log.Info("schema migrated")
				return nil
			})
		},
	}
}

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load categories, questions, venues, artists and shows from YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := seed.Load(file)
			if err != nil {
				return err
			}
			return withDatabase(cmd.Context(), func(ctx context.Context, env *toolEnv) error {
				if err := infra.AutoMigrate(env.db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				_, err := seed.Apply(ctx, env.db, doc, env.log)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "seeds/seed.yaml", "Seed document (YAML)")
	return cmd
}

// withDatabase runs fn against a database opened from the environment, for
// one-shot commands that do not need the fx graph.
func withDatabase(ctx context.Context, fn func(context.Context, *toolEnv) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := infra.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := infra.OpenDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer infra.CloseDatabase(db, log)

	return fn(ctx, &toolEnv{cfg: cfg, log: log, db: db})
}
