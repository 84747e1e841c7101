package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/salestrack/sales-api/internal/config"
	"github.com/salestrack/sales-api/internal/logging"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect abre o banco configurado (postgres em produção, sqlite local).
// TranslateError fica ligado para que violações de unicidade e FK cheguem
// como gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func Connect(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logging.NewGormLogger(log),
		TranslateError: true,
	}

	switch cfg.DBDriver {
	case "sqlite":
		dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", cfg.SQLitePath)
		return gorm.Open(sqlite.Open(dsn), gormCfg)
	default:
		username, password, err := retrieveCredentials(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return gorm.Open(postgres.Open(PostgresDSN(cfg, username, password)), gormCfg)
	}
}

func PostgresDSN(cfg *config.Config, username, password string) string {
	var sslMode string
	if cfg.DBSSLDisable {
		sslMode = " sslmode=disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		cfg.DBHost, username, password, cfg.DBName, cfg.DBPort, sslMode)
}
