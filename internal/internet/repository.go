package internet

import (
	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/patch"
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, i *models.Internet) error
	FindByID(db *gorm.DB, id uint) (*models.Internet, error)
	ListAll(db *gorm.DB) ([]models.Internet, error)
	ListByClient(db *gorm.DB, clientID uint) ([]models.Internet, error)
	Update(db *gorm.DB, id uint, cols patch.Columns) (*models.Internet, error)
	Delete(db *gorm.DB, id uint) error
	DeleteByClient(db *gorm.DB, clientID uint) (int64, error)
	CountByStatus(db *gorm.DB, status string) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, i *models.Internet) error {
	return apperr.FromDB(db.Create(i).Error, "internet deal")
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Internet, error) {
	var i models.Internet
	if err := db.First(&i, id).Error; err != nil {
		return nil, apperr.FromDB(err, "internet deal")
	}
	return &i, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]models.Internet, error) {
	var list []models.Internet
	err := db.Order("internet_id ASC").Find(&list).Error
	return list, apperr.FromDB(err, "internet deal")
}

func (r *repositoryImpl) ListByClient(db *gorm.DB, clientID uint) ([]models.Internet, error) {
	var list []models.Internet
	err := db.Where("client_id = ?", clientID).Order("internet_id ASC").Find(&list).Error
	return list, apperr.FromDB(err, "internet deal")
}

func (r *repositoryImpl) Update(db *gorm.DB, id uint, cols patch.Columns) (*models.Internet, error) {
	if len(cols) == 0 {
		return nil, patch.ErrNoFields
	}
	var i models.Internet
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&i, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&i).Updates(map[string]interface{}(cols)).Error; err != nil {
			return err
		}
		return tx.First(&i, id).Error
	})
	if err != nil {
		return nil, apperr.FromDB(err, "internet deal")
	}
	return &i, nil
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	res := db.Delete(&models.Internet{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "internet deal")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("internet deal")
	}
	return nil
}

func (r *repositoryImpl) DeleteByClient(db *gorm.DB, clientID uint) (int64, error) {
	res := db.Where("client_id = ?", clientID).Delete(&models.Internet{})
	return res.RowsAffected, apperr.FromDB(res.Error, "internet deal")
}

func (r *repositoryImpl) CountByStatus(db *gorm.DB, status string) (int64, error) {
	var n int64
	err := db.Model(&models.Internet{}).Where("deal_status = ?", status).Count(&n).Error
	return n, apperr.FromDB(err, "internet deal")
}
