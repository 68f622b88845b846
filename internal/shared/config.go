package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	SessionTTL     time.Duration
	MaxUploadBytes int64
	Workers        int
	UploadRPS      int
	DefaultTopN    int
	LexiconFile    string
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ":9100"),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		SessionTTL:     time.Duration(atoi("SESSION_TTL_SECONDS", 3600)) * time.Second,
		MaxUploadBytes: int64(atoi("MAX_UPLOAD_MB", 32)) << 20,
		Workers:        atoi("ANALYSIS_WORKERS", 4),
		UploadRPS:      atoi("UPLOAD_RPS", 5),
		DefaultTopN:    atoi("DEFAULT_TOP_N", 20),
		LexiconFile:    env("LEXICON_FILE", ""),
	}
	if c.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR is empty; sessions are held in process memory")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
