package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/upandey0/bookmarks/internal/auth"
	"github.com/upandey0/bookmarks/internal/config"
	"github.com/upandey0/bookmarks/internal/httpserver"
	"github.com/upandey0/bookmarks/internal/httpserver/deps"
	"github.com/upandey0/bookmarks/internal/logger"
	"github.com/upandey0/bookmarks/internal/metadata"
	"github.com/upandey0/bookmarks/internal/redis"
	"github.com/upandey0/bookmarks/internal/service"
	"github.com/upandey0/bookmarks/internal/store"
	"github.com/upandey0/bookmarks/internal/store/memory"
	redisstore "github.com/upandey0/bookmarks/internal/store/redis"
	"github.com/upandey0/bookmarks/internal/summary"
	"github.com/upandey0/bookmarks/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	var (
		bookmarkStore store.Bookmarks
		userStore     store.Users
		redisClient   *goredis.Client
	)

	switch cfg.Store {
	case config.StoreRedis:
		// Fail fast if Redis is unavailable.
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")
		redisClient = client
		bookmarkStore = redisstore.NewBookmarks(client)
		userStore = redisstore.NewUsers(client)
	case config.StoreMemory:
		loggerClient.Warn("using in-memory store, data will not survive restarts")
		mem := memory.New()
		bookmarkStore = mem
		userStore = mem.Users()
	}

	tokens, err := auth.NewTokenService(cfg.TokenKey, cfg.TokenTTL)
	if err != nil {
		loggerClient.Errorf("Invalid token key: %v", err)
		os.Exit(1)
	}

	// One client for both outbound fetches (page metadata and summary).
	httpClient := &http.Client{Timeout: cfg.FetchTimeout}

	extractor := metadata.NewExtractor(httpClient, cfg.DefaultFavicon, loggerClient)
	summaries := summary.NewFetcher(httpClient, cfg.SummaryURL, loggerClient)

	bookmarks := service.NewBookmarks(bookmarkStore, extractor, summaries, loggerClient)
	users := service.NewUsers(userStore, tokens, loggerClient)

	d := deps.Deps{
		Logger:    loggerClient,
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,
		ClientURL: cfg.ClientURL,
		Bookmarks: bookmarks,
		Users:     users,
		Tokens:    tokens,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Bookmarks API v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Bookmarks %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Bookmarks API stopped cleanly")
	return nil
}
