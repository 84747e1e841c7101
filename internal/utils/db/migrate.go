package db

import (
	"github.com/salestrack/sales-api/internal/models"
	"gorm.io/gorm"
)

// Migrate cria/atualiza as tabelas de todos os modelos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}
