package meeting

import (
	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/patch"
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, m *models.Meeting) error
	FindByID(db *gorm.DB, id uint) (*models.Meeting, error)
	ListAll(db *gorm.DB) ([]models.Meeting, error)
	ListByClient(db *gorm.DB, clientID uint) ([]models.Meeting, error)
	Update(db *gorm.DB, id uint, cols patch.Columns) (*models.Meeting, error)
	Delete(db *gorm.DB, id uint) error
	DeleteByClient(db *gorm.DB, clientID uint) (int64, error)
	CountByStatus(db *gorm.DB, status string) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, m *models.Meeting) error {
	return apperr.FromDB(db.Create(m).Error, "meeting")
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Meeting, error) {
	var m models.Meeting
	if err := db.First(&m, id).Error; err != nil {
		return nil, apperr.FromDB(err, "meeting")
	}
	return &m, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]models.Meeting, error) {
	var list []models.Meeting
	err := db.Order("meeting_id ASC").Find(&list).Error
	return list, apperr.FromDB(err, "meeting")
}

func (r *repositoryImpl) ListByClient(db *gorm.DB, clientID uint) ([]models.Meeting, error) {
	var list []models.Meeting
	err := db.Where("client_id = ?", clientID).Order("meeting_id ASC").Find(&list).Error
	return list, apperr.FromDB(err, "meeting")
}

func (r *repositoryImpl) Update(db *gorm.DB, id uint, cols patch.Columns) (*models.Meeting, error) {
	if len(cols) == 0 {
		return nil, patch.ErrNoFields
	}
	var m models.Meeting
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&m).Updates(map[string]interface{}(cols)).Error; err != nil {
			return err
		}
		return tx.First(&m, id).Error
	})
	if err != nil {
		return nil, apperr.FromDB(err, "meeting")
	}
	return &m, nil
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	res := db.Delete(&models.Meeting{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "meeting")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("meeting")
	}
	return nil
}

func (r *repositoryImpl) DeleteByClient(db *gorm.DB, clientID uint) (int64, error) {
	res := db.Where("client_id = ?", clientID).Delete(&models.Meeting{})
	return res.RowsAffected, apperr.FromDB(res.Error, "meeting")
}

func (r *repositoryImpl) CountByStatus(db *gorm.DB, status string) (int64, error) {
	var n int64
	err := db.Model(&models.Meeting{}).Where("meeting_status = ?", status).Count(&n).Error
	return n, apperr.FromDB(err, "meeting")
}
