package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/launchpad/internal/adapter"
	"github.com/feral-file/launchpad/internal/api/middleware"
	"github.com/feral-file/launchpad/internal/api/server"
	"github.com/feral-file/launchpad/internal/api/shared/executor"
	"github.com/feral-file/launchpad/internal/blob"
	"github.com/feral-file/launchpad/internal/config"
	"github.com/feral-file/launchpad/internal/identity"
	"github.com/feral-file/launchpad/internal/logger"
	"github.com/feral-file/launchpad/internal/messaging"
	"github.com/feral-file/launchpad/internal/providers/jetstream"
	"github.com/feral-file/launchpad/internal/ratelimit"
	"github.com/feral-file/launchpad/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "launchpad-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Launchpad API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Blob backends: documents on disk, images and video on Cloudflare when configured
	diskBackend, err := blob.NewDisk(fs, blob.DiskConfig{
		Dir:          cfg.Storage.Dir,
		PublicURL:    cfg.Storage.PublicURL,
		AllowedTypes: cfg.Storage.AllowedTypes,
	})
	if err != nil {
		logger.Fatal("Failed to initialize disk storage", zap.Error(err), zap.String("dir", cfg.Storage.Dir))
	}
	backends := []blob.Backend{diskBackend}

	if cfg.Cloudflare.APIToken != "" {
		cfClient, err := adapter.NewCloudflareClient(cfg.Cloudflare.APIToken)
		if err != nil {
			logger.Fatal("Failed to create Cloudflare client", zap.Error(err))
		}
		cfConfig := blob.CloudflareConfig{
			AccountID:    cfg.Cloudflare.AccountID,
			ImageVariant: cfg.Cloudflare.ImageVariant,
		}
		backends = append(backends,
			blob.NewCloudflareImages(cfClient, cfConfig),
			blob.NewCloudflareStream(cfClient, fs, cfConfig),
		)
		logger.InfoCtx(ctx, "Cloudflare Images and Stream enabled", zap.String("account_id", cfg.Cloudflare.AccountID))
	} else {
		logger.WarnCtx(ctx, "Cloudflare not configured, only document uploads are accepted")
	}
	blobStore := blob.NewStore(cfg.Storage.MaxUploadSize, backends...)

	// Engagement and lead events
	publisher := messaging.NewNoopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			EnsureStream:   cfg.NATS.EnsureStream,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS not configured, engagement events will not be published")
	}
	defer publisher.Close()

	// Identity provider
	var verifier identity.Verifier
	if cfg.Auth.JWTPublicKey != "" {
		verifier, err = identity.NewVerifier(identity.VerifierConfig{
			PublicKeyPEM: cfg.Auth.JWTPublicKey,
			Issuer:       cfg.Auth.JWTIssuer,
			Leeway:       cfg.Auth.JWTLeeway,
		})
		if err != nil {
			logger.Fatal("Failed to initialize token verifier", zap.Error(err))
		}
	} else {
		logger.WarnCtx(ctx, "JWT public key not configured, only API key authentication is available")
	}

	revoker := identity.NewNoopRevoker()
	if cfg.Identity.SecretKey != "" {
		revoker = identity.WithRetry(
			identity.NewSessionRevoker(adapter.NewHTTPClient(cfg.Identity.HTTPTimeout), identity.RevokerConfig{
				APIURL:    cfg.Identity.APIURL,
				SecretKey: cfg.Identity.SecretKey,
			}),
			cfg.Identity.RevokeAttempts,
		)
	} else {
		logger.WarnCtx(ctx, "Identity provider secret not configured, sessions will not be revoked on account deletion")
	}

	// Create server config
	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		FilesDir:       cfg.Storage.Dir,
		FilesPrefix:    cfg.Storage.PublicURL,
		RateLimit: ratelimit.Config{
			RequestsPerSecond: cfg.Server.RateLimitRPS,
			Burst:             cfg.Server.RateLimitBurst,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, executor.Deps{
		Store:              dataStore,
		Blobs:              blobStore,
		Publisher:          publisher,
		Revoker:            revoker,
		Clock:              clock,
		ReleaseConcurrency: cfg.Worker.ReleaseConcurrency,
	}, middleware.AuthConfig{
		Verifier: verifier,
		APIKeys:  cfg.Auth.APIKeys,
	})

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, zap.String("message", "Server forced to shutdown"))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
