package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

const (
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ClientURL string // CORS origin of the web client (ex: http://localhost:5173)

	SummaryURL     string        // base URL of the summarization service
	DefaultFavicon string        // placeholder favicon path for pages without one
	FetchTimeout   time.Duration // timeout for outbound page/summary GETs (0 = transport default)

	TokenKey string        // PASETO v4 symmetric key, 64 hex chars
	TokenTTL time.Duration // access token lifetime

	Store string // "redis" | "memory" (memory is ephemeral, for local dev)

	// Redis (required when Store == "redis")
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisWarnThreshold  int           // warn after this many attempts
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("BOOKMARKS_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("BOOKMARKS_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("BOOKMARKS_LOG_LEVEL", "info"),
		PrettyLog: mustBool("BOOKMARKS_PRETTY_LOG", true),

		// Web client
		ClientURL: getenv("BOOKMARKS_CLIENT_URL", "http://localhost:5173"),

		// Enrichment
		SummaryURL:     getenv("BOOKMARKS_SUMMARY_URL", "https://r.jina.ai"),
		DefaultFavicon: getenv("BOOKMARKS_DEFAULT_FAVICON", "/favicon-default.ico"),
		FetchTimeout:   mustDuration("BOOKMARKS_FETCH_TIMEOUT", 0),

		// Auth
		TokenKey: requireEnv("BOOKMARKS_TOKEN_KEY"),
		TokenTTL: mustDuration("BOOKMARKS_TOKEN_TTL", 24*time.Hour),

		// Store selection
		Store: getenv("BOOKMARKS_STORE", StoreRedis),

		// Redis settings
		RedisAddr:           getenv("BOOKMARKS_REDIS_ADDR", ""),
		RedisUser:           getenv("BOOKMARKS_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("BOOKMARKS_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("BOOKMARKS_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	if cfg.Store != StoreRedis && cfg.Store != StoreMemory {
		panic(fmt.Sprintf("❌ FATAL: BOOKMARKS_STORE must be %q or %q, got %q", StoreRedis, StoreMemory, cfg.Store))
	}
	if cfg.Store == StoreRedis && cfg.RedisAddr == "" {
		panic("❌ FATAL: BOOKMARKS_REDIS_ADDR is required when BOOKMARKS_STORE=redis")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.TokenKey = "***REDACTED***"
		cfgCopy.RedisPassword = "***REDACTED***"
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
