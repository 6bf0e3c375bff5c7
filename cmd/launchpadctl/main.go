// Package main provides the launchpad admin CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/launchpad/db"
	"github.com/feral-file/launchpad/internal/adapter"
	"github.com/feral-file/launchpad/internal/api/shared/executor"
	"github.com/feral-file/launchpad/internal/blob"
	"github.com/feral-file/launchpad/internal/config"
	"github.com/feral-file/launchpad/internal/identity"
	"github.com/feral-file/launchpad/internal/logger"
	"github.com/feral-file/launchpad/internal/messaging"
	"github.com/feral-file/launchpad/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the connections shared by every subcommand
type app struct {
	db   *gorm.DB
	exec executor.Executor
}

func rootCmd() *cobra.Command {
	var (
		configFile string
		envPath    string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "launchpadctl",
		Short: "Administer the launchpad startup directory",
		Long: `Administer the launchpad startup directory.

Examples:
  launchpadctl migrate                        # Apply the database schema
  launchpadctl approve <startup-id>           # Approve a listing
  launchpadctl approve <startup-id> --revoke  # Withdraw approval
  launchpadctl feature <startup-id> --off     # Remove from featured
  launchpadctl reconcile <startup-id>         # Reset counters to history lengths
  launchpadctl seed-taxonomy config/taxonomy.yaml
`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&envPath, "env", "config/", "Path to environment files")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Timeout for the whole command")

	// withApp loads configuration, connects to the database and runs fn
	withApp := func(fn func(ctx context.Context, a *app, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadCtlConfig(configFile, envPath)
			if err != nil {
				return err
			}

			if err := logger.Initialize(logger.Config{
				Debug:           cfg.Debug,
				SentryDSN:       cfg.SentryDSN,
				BreadcrumbLevel: zapcore.InfoLevel,
				Tags:            map[string]string{"service": "launchpadctl"},
			}); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Flush(2 * time.Second)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			return fn(ctx, a, args)
		}
	}

	cmd.AddCommand(
		migrateCmd(withApp),
		approveCmd(withApp),
		featureCmd(withApp),
		reconcileCmd(withApp),
		seedTaxonomyCmd(withApp),
	)

	return cmd
}

type runner func(fn func(ctx context.Context, a *app, args []string) error) func(*cobra.Command, []string) error

func newApp(cfg *config.CtlConfig) (*app, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := store.ConfigureConnectionPool(gormDB, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		return nil, fmt.Errorf("failed to configure connection pool: %w", err)
	}

	// Admin commands never upload or release files, so no blob backend is registered
	exec := executor.NewExecutor(executor.Deps{
		Store:     store.NewPGStore(gormDB),
		Blobs:     blob.NewStore(0),
		Publisher: messaging.NewNoopPublisher(),
		Revoker:   identity.NewNoopRevoker(),
		Clock:     adapter.NewClock(),
	})

	return &app{db: gormDB, exec: exec}, nil
}

func migrateCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *app, _ []string) error {
			if err := a.db.WithContext(ctx).Exec(db.InitSQL).Error; err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
			logger.InfoCtx(ctx, "Schema applied")
			return nil
		}),
	}
}

func approveCmd(run runner) *cobra.Command {
	var revoke bool

	cmd := &cobra.Command{
		Use:   "approve <startup-id>",
		Short: "Approve a startup listing for the public directory",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, a *app, args []string) error {
			resp, err := a.exec.SetApproval(ctx, args[0], !revoke)
			if err != nil {
				return err
			}
			logger.InfoCtx(ctx, "Approval updated", zap.String("startup_id", resp.ID), zap.Bool("approved", resp.Approved))
			return nil
		}),
	}
	cmd.Flags().BoolVar(&revoke, "revoke", false, "Withdraw approval instead of granting it")

	return cmd
}

func featureCmd(run runner) *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "feature <startup-id>",
		Short: "Feature a startup listing",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, a *app, args []string) error {
			resp, err := a.exec.SetFeatured(ctx, args[0], !off)
			if err != nil {
				return err
			}
			logger.InfoCtx(ctx, "Featured flag updated", zap.String("startup_id", resp.ID), zap.Bool("featured", resp.Featured))
			return nil
		}),
	}
	cmd.Flags().BoolVar(&off, "off", false, "Remove the featured flag")

	return cmd
}

func reconcileCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <startup-id>",
		Short: "Reset engagement counters to the length of their histories",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, a *app, args []string) error {
			resp, err := a.exec.ReconcileCounters(ctx, args[0])
			if err != nil {
				return err
			}
			logger.InfoCtx(ctx, "Counters reconciled",
				zap.String("startup_id", args[0]),
				zap.Bool("drifted", resp.Drifted),
				zap.Int64("views", resp.Views),
				zap.Int64("upvotes", resp.Upvotes),
				zap.Int64("website_visits", resp.WebsiteVisits),
			)
			return nil
		}),
	}
}

func seedTaxonomyCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-taxonomy <file>",
		Short: "Create or update sectors, categories and industries from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, a *app, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read seed file: %w", err)
			}

			seed, err := ParseTaxonomySeed(data)
			if err != nil {
				return err
			}

			saved, err := ApplyTaxonomySeed(ctx, a.exec, seed)
			if err != nil {
				return err
			}
			logger.InfoCtx(ctx, "Taxonomy seeded", zap.Int("entries", saved), zap.String("file", args[0]))
			return nil
		}),
	}
}
