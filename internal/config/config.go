package config

import (
	"errors"
	"os"
	"strconv"
)

// placeholderSecret is the known-weak development secret. Refusing to boot
// with it keeps a forgotten JWT_SECRET from reaching production.
const placeholderSecret = "change-me"

// ErrWeakJWTSecret is returned when JWT_SECRET is unset or left at the
// placeholder value.
var ErrWeakJWTSecret = errors.New("JWT_SECRET must be set to a non-placeholder value")

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	MySQLDSN        string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	AccessTokenMin  int
	RefreshTokenDay int
	BcryptCost      int
	SwaggerHost     string
}

// Load builds Config from environment. All values except the signing
// secret have development defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		MySQLDSN:        getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/wisekey?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AccessTokenMin:  getEnvInt("ACCESS_TOKEN_MINUTES", 15),
		RefreshTokenDay: getEnvInt("REFRESH_TOKEN_DAYS", 14),
		BcryptCost:      getEnvInt("BCRYPT_COST", 10),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == placeholderSecret {
		return nil, ErrWeakJWTSecret
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
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
