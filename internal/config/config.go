// Package config loads service settings from flags, .env and the
// environment.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	GroqModel   string
	GeminiModel string
	GroqAPIKey  string

	// Retries is how many times the primary provider is retried after
	// its first failure.
	Retries    int
	RetryDelay time.Duration

	// Pace is the artificial delay around emitted events.
	Pace time.Duration

	// RunTimeout bounds one full generation exchange.
	RunTimeout time.Duration

	ProfileCacheSize int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:             *port,
		Env:              env,
		GroqModel:        envOr("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GeminiModel:      envOr("GEMINI_MODEL", "gemini-2.5-flash"),
		GroqAPIKey:       strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		Retries:          envInt("LLM_RETRIES", 1),
		RetryDelay:       envDuration("LLM_RETRY_DELAY", time.Second),
		Pace:             envDuration("PIPELINE_PACE", 300*time.Millisecond),
		RunTimeout:       envDuration("RUN_TIMEOUT", 5*time.Minute),
		ProfileCacheSize: envInt("PROFILE_CACHE_SIZE", 256),
	}, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
