package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenInMemory abre um sqlite em memória já migrado. Usado só pelos testes.
//
// O pool fica limitado a uma conexão: cada conexão a ":memory:" é um banco
// novo, então todo acesso dentro de uma transação precisa usar o tx.
func OpenInMemory() (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(database); err != nil {
		return nil, err
	}
	return database, nil
}
