package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	TokenTTL  time.Duration
	LogLevel  string
	LogFormat string // "json" or "console"
	LogFile   string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "overlaysnow.db"
	} // sqlite file in project root
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
		log.Printf("[config] JWT_SECRET not set; using insecure dev default")
	}
	ttl := 30 * time.Minute
	if raw := os.Getenv("TOKEN_TTL_MINUTES"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Minute
		}
	}
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	format := os.Getenv("LOG_FORMAT")
	if format == "" {
		format = "json"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{
		Port:      port,
		DBDSN:     dsn,
		JWTSecret: secret,
		TokenTTL:  ttl,
		LogLevel:  level,
		LogFormat: format,
		LogFile:   logFile,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s TOKEN_TTL=%s LOG_LEVEL=%s LOG_FORMAT=%s",
		cfg.Port, cfg.DBDSN, cfg.TokenTTL, cfg.LogLevel, cfg.LogFormat)
	return cfg
}
