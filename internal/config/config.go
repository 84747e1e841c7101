// Package config lê a configuração do processo das variáveis de ambiente,
// opcionalmente carregadas de um arquivo .env.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBDriver     string
	DBHost       string
	DBPort       uint
	DBName       string
	DBUsername   string
	DBPassword   string
	DBSecretID   string
	DBSSLDisable bool
	SQLitePath   string

	JWTSecret string
	TokenTTL  time.Duration

	CORSOrigins []string

	LogLevel  string
	LogFormat string

	EnableDevRoutes bool

	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Load carrega o .env (se existir) e depois lê o ambiente.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv monta a Config a partir de uma função de lookup; os testes não
// precisam mexer no ambiente do processo.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:          orDefault(getenv("PORT"), "8080"),
		DBDriver:      strings.ToLower(orDefault(getenv("DB_DRIVER"), "postgres")),
		DBHost:        orDefault(getenv("DB_HOST"), "localhost"),
		DBName:        getenv("DB_NAME"),
		DBUsername:    getenv("DB_USERNAME"),
		DBPassword:    getenv("DB_PASSWORD"),
		DBSecretID:    getenv("DB_SECRET_ID"),
		DBSSLDisable:  getenv("DB_SSL_MODE_DISABLE") == "true",
		SQLitePath:    orDefault(getenv("DB_SQLITE_PATH"), "sales.db"),
		JWTSecret:     getenv("JWT_SECRET"),
		LogLevel:      orDefault(getenv("LOG_LEVEL"), "info"),
		LogFormat:     orDefault(getenv("LOG_FORMAT"), "json"),
		AdminName:     getenv("ADMIN_NAME"),
		AdminEmail:    getenv("ADMIN_EMAIL"),
		AdminPassword: getenv("ADMIN_PASSWORD"),
	}

	port, err := strconv.ParseUint(orDefault(getenv("DB_PORT"), "5432"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("DB_PORT inválida: %w", err)
	}
	cfg.DBPort = uint(port)

	ttl, err := time.ParseDuration(orDefault(getenv("TOKEN_TTL"), "24h"))
	if err != nil {
		return nil, fmt.Errorf("TOKEN_TTL inválido: %w", err)
	}
	cfg.TokenTTL = ttl

	if v := getenv("ENABLE_DEV_ROUTES"); v != "" {
		cfg.EnableDevRoutes, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("ENABLE_DEV_ROUTES inválido: %w", err)
		}
	}

	for _, o := range strings.Split(orDefault(getenv("CORS_ORIGINS"), "http://localhost:5173"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("DB_DRIVER desconhecido: %q", cfg.DBDriver)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET não definida")
	}

	return cfg, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
