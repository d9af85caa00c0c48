package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/huddle/internal/api"
	"github.com/lalith-99/huddle/internal/config"
	"github.com/lalith-99/huddle/internal/db"
	"github.com/lalith-99/huddle/internal/observ"
	"github.com/lalith-99/huddle/internal/repository"
	"github.com/lalith-99/huddle/internal/repository/memory"
	"github.com/lalith-99/huddle/internal/repository/postgres"
	"github.com/lalith-99/huddle/internal/seed"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// ---------------------------------------------------------------
	// 1. Load config
	// ---------------------------------------------------------------
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// ---------------------------------------------------------------
	// 2. Create logger
	// ---------------------------------------------------------------
	logger, err := observ.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---------------------------------------------------------------
	// 3. Build the store
	//
	// All state lives in memory. A seed only decides what the store
	// holds at boot; nothing is written back.
	// ---------------------------------------------------------------
	initial, err := loadSeed(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	store := memory.NewStore(
		memory.WithLogger(logger.Named("store")),
		memory.WithReplyDepth(cfg.ReplyDepth),
		memory.WithSeed(initial),
	)

	// Assigning to the interface types checks at compile time that the
	// memory stores satisfy them.
	var (
		userRepo       repository.UserRepository       = memory.NewUserStore(store)
		teamRepo       repository.TeamRepository       = memory.NewTeamStore(store)
		channelRepo    repository.ChannelRepository    = memory.NewChannelStore(store)
		membershipRepo repository.MembershipRepository = memory.NewMembershipStore(store)
		messageRepo    repository.MessageRepository    = memory.NewMessageStore(store)
		videoCallRepo  repository.VideoCallRepository  = memory.NewVideoCallStore(store)
	)

	stats := store.Stats()
	logger.Info("store ready",
		zap.Int("users", stats.Users),
		zap.Int("teams", stats.Teams),
		zap.Int("channels", stats.Channels),
		zap.Int("messages", stats.Messages),
	)

	// ---------------------------------------------------------------
	// 4. Set up HTTP server
	// ---------------------------------------------------------------
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.NewRouter(api.Deps{
		Users:           userRepo,
		Teams:           teamRepo,
		Channels:        channelRepo,
		Members:         membershipRepo,
		Messages:        messageRepo,
		Calls:           videoCallRepo,
		Logger:          logger,
		Stats:           func() any { return store.Stats() },
		CallerUserID:    cfg.CallerUserID,
		JWTSecret:       cfg.JWTSecret,
		MessageLimitMax: cfg.MessageLimitMax,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	identity := zap.Int64("caller_user_id", cfg.CallerUserID)
	if cfg.JWTSecret != "" {
		identity = zap.String("identity", "jwt")
	}
	logger.Info("starting Huddle",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
		identity,
	)

	// ---------------------------------------------------------------
	// 5. Serve until a signal arrives, then drain
	// ---------------------------------------------------------------
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

// loadSeed picks the first configured source: Postgres, then a YAML
// file, then the built-in demo workspace. With none set the store
// starts empty.
func loadSeed(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*memory.Seed, error) {
	now := time.Now()

	switch {
	case cfg.SeedDatabaseURL != "":
		database, err := db.New(ctx, cfg.SeedDatabaseURL, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to seed database: %w", err)
		}
		defer database.Close()

		return postgres.Load(ctx, database.Pool(), logger)

	case cfg.SeedFile != "":
		logger.Info("loading seed file", zap.String("path", cfg.SeedFile))
		return seed.LoadFile(cfg.SeedFile, now)

	case cfg.SeedDemo:
		logger.Info("loading demo workspace")
		return seed.Demo(now)

	default:
		logger.Info("starting with an empty store")
		return nil, nil
	}
}
