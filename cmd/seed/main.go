package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/upandey0/bookmarks/internal/config"
	"github.com/upandey0/bookmarks/internal/errors"
	"github.com/upandey0/bookmarks/internal/importer"
	"github.com/upandey0/bookmarks/internal/logger"
	"github.com/upandey0/bookmarks/internal/metadata"
	"github.com/upandey0/bookmarks/internal/redis"
	"github.com/upandey0/bookmarks/internal/service"
	"github.com/upandey0/bookmarks/internal/store"
	"github.com/upandey0/bookmarks/internal/store/memory"
	redisstore "github.com/upandey0/bookmarks/internal/store/redis"
	"github.com/upandey0/bookmarks/internal/summary"
)

// seed bulk-imports a YAML list of URLs into an existing user's
// collection, running each URL through the same enrichment pipeline
// as the API.
func main() {
	file := flag.String("file", "bookmarks.yaml", "YAML file with a bookmarks: list of URLs")
	email := flag.String("email", "", "email of the user to import into")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.PrettyLog)

	if *email == "" {
		log.Error("missing -email flag")
		os.Exit(2)
	}

	urls, err := importer.Load(*file)
	if err != nil {
		log.Errorf("failed to load %s: %v", *file, err)
		os.Exit(1)
	}

	var (
		bookmarkStore store.Bookmarks
		userStore     store.Users
	)
	switch cfg.Store {
	case config.StoreRedis:
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
		}, log)
		if err != nil {
			log.Errorf("failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		defer func() { _ = client.Close() }()
		bookmarkStore = redisstore.NewBookmarks(client)
		userStore = redisstore.NewUsers(client)
	case config.StoreMemory:
		log.Warn("memory store selected, seeded data will be discarded on exit")
		mem := memory.New()
		bookmarkStore = mem
		userStore = mem.Users()
	}

	ctx := context.Background()

	user, err := userStore.ByEmail(ctx, *email)
	if err != nil {
		log.Errorf("user %s not found: %v", *email, err)
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: cfg.FetchTimeout}
	svc := service.NewBookmarks(
		bookmarkStore,
		metadata.NewExtractor(httpClient, cfg.DefaultFavicon, log),
		summary.NewFetcher(httpClient, cfg.SummaryURL, log),
		log,
	)

	var created, skipped, failed int
	for _, u := range urls {
		b, err := svc.Add(ctx, user.ID, u)
		switch {
		case err == nil:
			created++
			log.Info("created", logger.String("id", b.ID), logger.String("url", u))
		case errors.Is(err, errors.ErrAlreadyExists):
			skipped++
			log.Info("already saved, skipping", logger.String("url", u))
		case errors.Is(err, errors.ErrValidation):
			failed++
			log.Warn("invalid url, skipping", logger.String("url", u))
		default:
			failed++
			log.Error("import failed", logger.String("url", u), logger.Error(err))
		}
	}

	log.Infof("import done: %d created, %d skipped, %d failed", created, skipped, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
