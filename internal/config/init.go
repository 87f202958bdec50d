package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Settings is everything the application reads from the environment.
type Settings struct {
	Env           string
	Port          string
	DBDriver      string
	DBDSN         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	IndexCacheTTL time.Duration
	MediaRoot     string
	NATSURL       string
	SeedGroups    []GroupSeed
}

// GroupSeed is one `slug:Title` entry of SEED_GROUPS.
type GroupSeed struct {
	Slug  string
	Title string
}

// Init loads .env (if any) and validates the required variables.
func Init() *Settings {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	s := &Settings{
		Env:           os.Getenv("APP_ENV"),
		Port:          getenvDefault("APP_PORT", "8000"),
		DBDriver:      getenvDefault("DB_DRIVER", "mysql"),
		DBDSN:         os.Getenv("DB_DSN"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		IndexCacheTTL: 20 * time.Second,
		MediaRoot:     getenvDefault("MEDIA_ROOT", "media"),
		NATSURL:       os.Getenv("NATS_URL"),
		SeedGroups:    ParseGroupSeeds(os.Getenv("SEED_GROUPS")),
	}

	if redisDB, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
		s.RedisDB = redisDB
	}

	if raw := os.Getenv("INDEX_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			Logger.Warn("Invalid INDEX_CACHE_TTL, keeping default", zap.String("value", raw), zap.Duration("default", s.IndexCacheTTL))
		} else {
			s.IndexCacheTTL = ttl
		}
	}

	if s.DBDSN == "" {
		Logger.Fatal("DB_DSN is not set")
	}
	if s.RedisAddr == "" {
		Logger.Fatal("REDIS_ADDR is not set")
	}
	if s.JWTSecret == "" {
		Logger.Fatal("JWT_SECRET is not set")
	}

	return s
}

// ParseGroupSeeds parses "slug:Title;slug2:Title 2". Malformed entries are skipped.
func ParseGroupSeeds(raw string) []GroupSeed {
	var seeds []GroupSeed
	for _, entry := range strings.Split(raw, ";") {
		slug, title, ok := strings.Cut(strings.TrimSpace(entry), ":")
		slug, title = strings.TrimSpace(slug), strings.TrimSpace(title)
		if !ok || slug == "" || title == "" {
			continue
		}
		seeds = append(seeds, GroupSeed{Slug: slug, Title: title})
	}
	return seeds
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
