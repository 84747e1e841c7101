package user

import (
	"errors"

	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/models"
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, u *models.User) error
	FindByName(db *gorm.DB, name string) (*models.User, error)
	ListAll(db *gorm.DB) ([]models.User, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, u *models.User) error {
	return apperr.FromDB(db.Create(u).Error, "user")
}

func (r *repositoryImpl) FindByName(db *gorm.DB, name string) (*models.User, error) {
	var u models.User
	if err := db.Where("user_name = ?", name).First(&u).Error; err != nil {
		return nil, apperr.FromDB(err, "user")
	}
	return &u, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]models.User, error) {
	var list []models.User
	err := db.Order("created_at ASC").Order("user_id ASC").Find(&list).Error
	return list, apperr.FromDB(err, "user")
}

func isNotFound(err error) bool {
	return errors.Is(err, apperr.ErrNotFound)
}
