package user

import (
	"github.com/rs/zerolog"
	"github.com/salestrack/sales-api/internal/config"
	"github.com/salestrack/sales-api/internal/utils"
	"gorm.io/gorm"
)

// SeedAdmin cria o administrador configurado em ADMIN_NAME caso ainda não
// exista. Sem ADMIN_PASSWORD, gera uma senha temporária e a registra no log.
func SeedAdmin(db *gorm.DB, cfg *config.Config, log zerolog.Logger) error {
	if cfg.AdminName == "" {
		return nil
	}
	store := NewStore()
	if _, err := store.Repository.FindByName(db, cfg.AdminName); err == nil {
		return nil
	} else if !isNotFound(err) {
		return err
	}

	password := cfg.AdminPassword
	if password == "" {
		tmp, err := utils.GenerateTemporaryPassword()
		if err != nil {
			return err
		}
		password = tmp
		log.Warn().Str("user_name", cfg.AdminName).Str("temporary_password", password).
			Msg("admin criado com senha temporária; troque-a")
	}

	email := cfg.AdminEmail
	if email == "" {
		email = cfg.AdminName + "@localhost"
	}
	if _, err := store.Register(db, cfg.AdminName, email, password, true); err != nil {
		return err
	}
	log.Info().Str("user_name", cfg.AdminName).Msg("admin criado")
	return nil
}
