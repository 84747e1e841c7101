package office

import (
	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/patch"
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, o *models.Office) error
	FindByID(db *gorm.DB, id uint) (*models.Office, error)
	ListAll(db *gorm.DB) ([]models.Office, error)
	ListByBuilding(db *gorm.DB, buildingID uint) ([]models.Office, error)
	ListByClient(db *gorm.DB, clientID uint) ([]models.Office, error)
	Update(db *gorm.DB, id uint, cols patch.Columns) (*models.Office, error)
	Delete(db *gorm.DB, id uint) error
	DeleteByBuilding(db *gorm.DB, buildingID uint) (int64, error)
	DeleteForClient(db *gorm.DB, clientID uint) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, o *models.Office) error {
	return apperr.FromDB(db.Create(o).Error, "office")
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Office, error) {
	var o models.Office
	if err := db.First(&o, id).Error; err != nil {
		return nil, apperr.FromDB(err, "office")
	}
	return &o, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]models.Office, error) {
	var list []models.Office
	err := db.Order("office_id ASC").Find(&list).Error
	return list, apperr.FromDB(err, "office")
}

func (r *repositoryImpl) ListByBuilding(db *gorm.DB, buildingID uint) ([]models.Office, error) {
	var list []models.Office
	err := db.Where("building_id = ?", buildingID).Order("office_id ASC").Find(&list).Error
	return list, apperr.FromDB(err, "office")
}

func (r *repositoryImpl) ListByClient(db *gorm.DB, clientID uint) ([]models.Office, error) {
	var list []models.Office
	err := db.Where("client_id = ?", clientID).Order("office_id ASC").Find(&list).Error
	return list, apperr.FromDB(err, "office")
}

func (r *repositoryImpl) Update(db *gorm.DB, id uint, cols patch.Columns) (*models.Office, error) {
	if len(cols) == 0 {
		return nil, patch.ErrNoFields
	}
	var o models.Office
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&o, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&o).Updates(map[string]interface{}(cols)).Error; err != nil {
			return err
		}
		return tx.First(&o, id).Error
	})
	if err != nil {
		return nil, apperr.FromDB(err, "office")
	}
	return &o, nil
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	res := db.Delete(&models.Office{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "office")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("office")
	}
	return nil
}

func (r *repositoryImpl) DeleteByBuilding(db *gorm.DB, buildingID uint) (int64, error) {
	res := db.Where("building_id = ?", buildingID).Delete(&models.Office{})
	return res.RowsAffected, apperr.FromDB(res.Error, "office")
}

// DeleteForClient remove os escritórios vinculados ao cliente e todos os
// escritórios dos prédios que ele possui, inclusive os de outros clientes.
func (r *repositoryImpl) DeleteForClient(db *gorm.DB, clientID uint) (int64, error) {
	owned := db.Model(&models.Building{}).Select("building_id").Where("client_id = ?", clientID)
	res := db.Where("client_id = ? OR building_id IN (?)", clientID, owned).Delete(&models.Office{})
	return res.RowsAffected, apperr.FromDB(res.Error, "office")
}
