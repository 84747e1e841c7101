package building

import (
	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/patch"
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, b *models.Building) error
	FindByID(db *gorm.DB, id uint) (*models.Building, error)
	FindByIDWithOffices(db *gorm.DB, id uint) (*models.Building, error)
	FindByName(db *gorm.DB, name string) (*models.Building, error)
	ListAll(db *gorm.DB) ([]models.Building, error)
	ListOwnedBy(db *gorm.DB, clientID uint) ([]models.Building, error)
	Update(db *gorm.DB, id uint, cols patch.Columns) (*models.Building, error)
	SetOwner(db *gorm.DB, id uint, clientID uint) error
	Delete(db *gorm.DB, id uint) error
	DeleteOwnedBy(db *gorm.DB, clientID uint) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, b *models.Building) error {
	return apperr.FromDB(db.Create(b).Error, "building")
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Building, error) {
	var b models.Building
	if err := db.First(&b, id).Error; err != nil {
		return nil, apperr.FromDB(err, "building")
	}
	return &b, nil
}

func (r *repositoryImpl) FindByIDWithOffices(db *gorm.DB, id uint) (*models.Building, error) {
	var b models.Building
	err := db.Preload("Offices", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("office_id ASC")
	}).First(&b, id).Error
	if err != nil {
		return nil, apperr.FromDB(err, "building")
	}
	return &b, nil
}

// FindByName busca pela chave natural; o nome é único.
func (r *repositoryImpl) FindByName(db *gorm.DB, name string) (*models.Building, error) {
	var b models.Building
	if err := db.Where("building_name = ?", name).First(&b).Error; err != nil {
		return nil, apperr.FromDB(err, "building")
	}
	return &b, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]models.Building, error) {
	var list []models.Building
	err := db.Order("building_id ASC").Find(&list).Error
	return list, apperr.FromDB(err, "building")
}

func (r *repositoryImpl) ListOwnedBy(db *gorm.DB, clientID uint) ([]models.Building, error) {
	var list []models.Building
	err := db.Where("client_id = ?", clientID).Order("building_id ASC").Find(&list).Error
	return list, apperr.FromDB(err, "building")
}

func (r *repositoryImpl) Update(db *gorm.DB, id uint, cols patch.Columns) (*models.Building, error) {
	if len(cols) == 0 {
		return nil, patch.ErrNoFields
	}
	var b models.Building
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&b).Updates(map[string]interface{}(cols)).Error; err != nil {
			return err
		}
		return tx.First(&b, id).Error
	})
	if err != nil {
		return nil, apperr.FromDB(err, "building")
	}
	return &b, nil
}

// SetOwner grava o cliente dono do prédio. Só é usado para prédios recém
// criados; um prédio reaproveitado mantém o dono original.
func (r *repositoryImpl) SetOwner(db *gorm.DB, id uint, clientID uint) error {
	res := db.Model(&models.Building{}).Where("building_id = ?", id).Update("client_id", clientID)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "building")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("building")
	}
	return nil
}

// Delete remove só o prédio; com escritórios vinculados a FK impede a
// exclusão. Use o coordenador de cascata.
func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	res := db.Delete(&models.Building{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "building")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("building")
	}
	return nil
}

func (r *repositoryImpl) DeleteOwnedBy(db *gorm.DB, clientID uint) (int64, error) {
	res := db.Where("client_id = ?", clientID).Delete(&models.Building{})
	return res.RowsAffected, apperr.FromDB(res.Error, "building")
}
