package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/salestrack/sales-api/internal/auth"
	"github.com/salestrack/sales-api/internal/config"
	"github.com/salestrack/sales-api/internal/logging"
	"github.com/salestrack/sales-api/internal/router"
	"github.com/salestrack/sales-api/internal/user"
	"github.com/salestrack/sales-api/internal/utils/db"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("configuração inválida")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao conectar no banco")
	}

	// AutoMigrate para todos os modelos
	if err := db.Migrate(database); err != nil {
		log.Fatal().Err(err).Msg("erro no AutoMigrate")
	}
	if err := user.SeedAdmin(database, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("erro ao criar admin")
	}

	srv := newServer(database, cfg, log)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("erro ao encerrar servidor")
		}
	}()

	log.Info().Str("addr", srv.Addr).Str("db_driver", cfg.DBDriver).Msg("servidor iniciado")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("servidor parou")
	}
	log.Info().Msg("servidor encerrado")
}

func newServer(database *gorm.DB, cfg *config.Config, log zerolog.Logger) *http.Server {
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.New(database, cfg, tokens, log),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
