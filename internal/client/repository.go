package client

import (
	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/patch"
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, c *models.Client) error
	FindByID(db *gorm.DB, id uint) (*models.Client, error)
	FindByEmail(db *gorm.DB, email string) (*models.Client, error)
	ListAll(db *gorm.DB) ([]models.Client, error)
	Update(db *gorm.DB, id uint, cols patch.Columns) (*models.Client, error)
	Delete(db *gorm.DB, id uint) error
	Count(db *gorm.DB) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, c *models.Client) error {
	return apperr.FromDB(db.Create(c).Error, "client")
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Client, error) {
	var c models.Client
	if err := db.First(&c, id).Error; err != nil {
		return nil, apperr.FromDB(err, "client")
	}
	return &c, nil
}

func (r *repositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Client, error) {
	var c models.Client
	if err := db.Where("client_email = ?", email).First(&c).Error; err != nil {
		return nil, apperr.FromDB(err, "client")
	}
	return &c, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]models.Client, error) {
	var list []models.Client
	err := db.Order("client_id ASC").Find(&list).Error
	return list, apperr.FromDB(err, "client")
}

// Update aplica colunas já validadas pela allow-list.
func (r *repositoryImpl) Update(db *gorm.DB, id uint, cols patch.Columns) (*models.Client, error) {
	if len(cols) == 0 {
		return nil, patch.ErrNoFields
	}
	var c models.Client
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&c).Updates(map[string]interface{}(cols)).Error; err != nil {
			return err
		}
		return tx.First(&c, id).Error
	})
	if err != nil {
		return nil, apperr.FromDB(err, "client")
	}
	return &c, nil
}

// Delete remove apenas a linha do cliente; a exclusão com dependentes fica
// no coordenador de cascata (pacote sales).
func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	res := db.Delete(&models.Client{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "client")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("client")
	}
	return nil
}

func (r *repositoryImpl) Count(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&models.Client{}).Count(&n).Error
	return n, apperr.FromDB(err, "client")
}
