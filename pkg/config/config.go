package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Reco     RecoConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type JWTConfig struct {
	SecretKey string
}

// RecoConfig holds the serving defaults of the recommendation engine.
// Alpha and K are only defaults; per-request values win.
type RecoConfig struct {
	ArtifactPath    string
	DefaultK        int
	DefaultAlpha    float64
	DiversifyWindow int
	CacheTTLSeconds int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	defaultK, err := strconv.Atoi(getEnv("RECO_DEFAULT_K", "10"))
	if err != nil || defaultK <= 0 {
		return nil, errors.New("invalid default k")
	}

	defaultAlpha, err := strconv.ParseFloat(getEnv("RECO_DEFAULT_ALPHA", "0.6"), 64)
	if err != nil || defaultAlpha < 0 || defaultAlpha > 1 {
		return nil, errors.New("invalid default alpha")
	}

	diversifyWindow, err := strconv.Atoi(getEnv("RECO_DIVERSIFY_WINDOW", "10"))
	if err != nil || diversifyWindow <= 0 {
		return nil, errors.New("invalid diversify window")
	}

	cacheTTL, err := strconv.Atoi(getEnv("RECO_CACHE_TTL_SECONDS", "300"))
	if err != nil || cacheTTL < 0 {
		return nil, errors.New("invalid cache ttl")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "ShopReco API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "shopreco"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Enabled:       getEnv("REDIS_ENABLED", "false") == "true",
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Reco: RecoConfig{
			ArtifactPath:    getEnv("RECO_ARTIFACT_PATH", "models/recommender.json"),
			DefaultK:        defaultK,
			DefaultAlpha:    defaultAlpha,
			DiversifyWindow: diversifyWindow,
			CacheTTLSeconds: cacheTTL,
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
