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
	Data     DataConfig
	Engine   EngineConfig
	JWT      JWTConfig
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
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTLSec   int
}

type DataConfig struct {
	CustomerCSVPath string
	ProductCSVPath  string
}

// EngineConfig selects the price-fit policy once, at startup.
// "customer" rewards proximity to the customer's average order value,
// "catalog" uses the snapshot's min-max normalized price.
type EngineConfig struct {
	PricePolicy string
	DefaultTopN int
	MaxCatalog  int
}

type JWTConfig struct {
	SecretKey string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	cacheTTL, err := strconv.Atoi(getEnv("REDIS_CACHE_TTL_SECONDS", "300"))
	if err != nil {
		return nil, errors.New("invalid redis cache ttl")
	}

	defaultTopN, err := strconv.Atoi(getEnv("ENGINE_DEFAULT_TOP_N", "5"))
	if err != nil {
		return nil, errors.New("invalid default top n")
	}

	maxCatalog, err := strconv.Atoi(getEnv("ENGINE_MAX_CATALOG_SIZE", "100000"))
	if err != nil {
		return nil, errors.New("invalid max catalog size")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Shopping Recommendation API"),
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
			Name:     getEnv("DB_NAME", "shopping_recommendation"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			CacheTTLSec:   cacheTTL,
		},
		Data: DataConfig{
			CustomerCSVPath: getEnv("CUSTOMER_CSV_PATH", "data/customer_data_collection.csv"),
			ProductCSVPath:  getEnv("PRODUCT_CSV_PATH", "data/product_recommendation_data.csv"),
		},
		Engine: EngineConfig{
			PricePolicy: getEnv("ENGINE_PRICE_POLICY", "customer"),
			DefaultTopN: defaultTopN,
			MaxCatalog:  maxCatalog,
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
	}

	if cfg.Engine.PricePolicy != "customer" && cfg.Engine.PricePolicy != "catalog" {
		return nil, errors.New("ENGINE_PRICE_POLICY must be \"customer\" or \"catalog\"")
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
