package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App AppConfig
	Log LogConfig
	Sim SimConfig
}

type AppConfig struct {
	AppName     string
	Environment string
}

type LogConfig struct {
	Level  string
	Format string
}

// SimConfig controls the simulated latencies of the mutating commands and
// the auto-reply timers. Defaults mirror the original portal's fixed delays.
type SimConfig struct {
	CreateLatency     time.Duration
	UpdateLatency     time.Duration
	DeleteLatency     time.Duration
	AuthLatency       time.Duration
	PasswordLatency   time.Duration
	NewsletterLatency time.Duration

	TypingDelay    time.Duration
	ReplyWindowMin time.Duration
	ReplyWindowMax time.Duration
	AutoReply      bool
}

func Load() (Config, error) {
	// No .env file is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := Config{}

	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	var firstErr error
	dur := func(key string, fallback time.Duration) time.Duration {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("invalid duration for %s: %w", key, err)
			}
			return fallback
		}
		return d
	}
	boolean := func(key string, fallback bool) bool {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("invalid bool for %s: %w", key, err)
			}
			return fallback
		}
		return b
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "alumni-portal"),
		Environment: opt("APP_ENV", "development"),
	}

	cfg.Log = LogConfig{
		Level:  opt("LOG_LEVEL", "info"),
		Format: opt("LOG_FORMAT", "text"),
	}

	cfg.Sim = SimConfig{
		CreateLatency:     dur("SIM_CREATE_LATENCY", 1500*time.Millisecond),
		UpdateLatency:     dur("SIM_UPDATE_LATENCY", 1500*time.Millisecond),
		DeleteLatency:     dur("SIM_DELETE_LATENCY", time.Second),
		AuthLatency:       dur("SIM_AUTH_LATENCY", time.Second),
		PasswordLatency:   dur("SIM_PASSWORD_LATENCY", 1500*time.Millisecond),
		NewsletterLatency: dur("SIM_NEWSLETTER_LATENCY", 2*time.Second),
		TypingDelay:       dur("SIM_TYPING_DELAY", time.Second),
		ReplyWindowMin:    dur("SIM_REPLY_MIN", 3*time.Second),
		ReplyWindowMax:    dur("SIM_REPLY_MAX", 5*time.Second),
		AutoReply:         boolean("SIM_AUTO_REPLY", true),
	}

	if firstErr != nil {
		return Config{}, firstErr
	}
	if cfg.Sim.ReplyWindowMax < cfg.Sim.ReplyWindowMin {
		return Config{}, fmt.Errorf("SIM_REPLY_MAX below SIM_REPLY_MIN")
	}

	return cfg, nil
}
