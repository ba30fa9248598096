package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every resolved runtime setting. The rest of the project only
// depends on these values, not on how they were loaded.
type Config struct {
	DiscordToken    string
	StabilityAPIKey string
	DefaultModel    string

	MaxConcurrent      int           // simultaneous provider calls
	UserCooldown       time.Duration // minimum gap between two requests of one user
	GateAcquireTimeout time.Duration // 0 means wait indefinitely
	RequestTimeout     time.Duration // outbound HTTP timeout

	GuildID        string // optional, registers slash commands per-guild (faster sync)
	UsageDBPath    string
	Port           string
	Mode           string // "dev" or "release"
	BannedKeywords []string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// same behaviour as the original deployment: a missing .env is fine
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:       os.Getenv("DISCORD_TOKEN"),
		StabilityAPIKey:    os.Getenv("STABILITY_API_KEY"),
		DefaultModel:       getEnv("STABILITY_MODEL", "stable-diffusion-xl-1024-v1-0"),
		MaxConcurrent:      getEnvInt("MAX_CONCURRENT", 2),
		UserCooldown:       time.Duration(getEnvInt("USER_COOLDOWN", 10)) * time.Second,
		GateAcquireTimeout: time.Duration(getEnvInt("GATE_ACQUIRE_TIMEOUT", 0)) * time.Second,
		RequestTimeout:     time.Duration(getEnvInt("REQUEST_TIMEOUT", 180)) * time.Second,
		GuildID:            os.Getenv("GUILD_ID"),
		UsageDBPath:        getEnv("USAGE_DB_PATH", "usage.db"),
		Port:               getEnv("GOPORT", "8000"),
		Mode:               getEnv("MODE", "release"),
		BannedKeywords:     splitCSV(os.Getenv("BANNED_KEYWORDS")),
	}

	if cfg.DiscordToken == "" || cfg.StabilityAPIKey == "" {
		return nil, errors.New("DISCORD_TOKEN and STABILITY_API_KEY must be set in environment variables (.env)")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
