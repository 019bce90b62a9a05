package config

import (
	"os"
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		wantPanic bool
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			shouldSet: true,
			wantPanic: false,
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			shouldSet: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		def   time.Duration
		want  time.Duration
	}{
		{"valid duration", "TEST_DUR", "30s", time.Second, 30 * time.Second},
		{"invalid duration falls back", "TEST_DUR_BAD", "nonsense", 5 * time.Second, 5 * time.Second},
		{"unset falls back", "TEST_DUR_UNSET", "", 2 * time.Minute, 2 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}
			if got := mustDuration(tt.key, tt.def); got != tt.want {
				t.Errorf("mustDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   bool
		want  bool
	}{
		{"true", "true", false, true},
		{"false", "false", true, false},
		{"numeric true", "1", false, true},
		{"invalid falls back", "maybe", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_BOOL_" + tt.name
			t.Setenv(key, tt.value)
			if got := mustBool(key, tt.def); got != tt.want {
				t.Errorf("mustBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestLoad_StoreValidation(t *testing.T) {
	t.Setenv("BOOKMARKS_TOKEN_KEY", "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")

	t.Run("memory store needs no redis addr", func(t *testing.T) {
		t.Setenv("BOOKMARKS_STORE", "memory")
		cfg := Load()
		if cfg.Store != StoreMemory {
			t.Errorf("Store = %q, want %q", cfg.Store, StoreMemory)
		}
	})

	t.Run("redis store requires addr", func(t *testing.T) {
		t.Setenv("BOOKMARKS_STORE", "redis")
		if v := os.Getenv("BOOKMARKS_REDIS_ADDR"); v != "" {
			t.Setenv("BOOKMARKS_REDIS_ADDR", "")
		}
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Load() should panic without BOOKMARKS_REDIS_ADDR")
			}
		}()
		Load()
	})

	t.Run("unknown store rejected", func(t *testing.T) {
		t.Setenv("BOOKMARKS_STORE", "mongodb")
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Load() should panic on unknown store")
			}
		}()
		Load()
	})
}
