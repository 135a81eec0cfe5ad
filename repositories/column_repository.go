package repositories

import (
	"columns-cms/models"

	"gorm.io/gorm"
)

type ColumnRepository interface {
	WithTx(tx *gorm.DB) ColumnRepository
	Create(column *models.Column) error
	GetByID(id uint) (*models.Column, error)
	GetList(params models.ColumnListParams) ([]models.Column, int64, error)
	ListByWriter(userID uint) ([]models.Column, error)
	Delete(id uint) error
}

type columnRepository struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &columnRepository{db: db}
}

func (r *columnRepository) WithTx(tx *gorm.DB) ColumnRepository {
	return &columnRepository{db: tx}
}

// Create inserts the column and its writer/moderator join rows. The member users
// themselves are never written.
func (r *columnRepository) Create(column *models.Column) error {
	return r.db.Omit("Coordinator", "Writers.*", "Moderators.*").Create(column).Error
}

func (r *columnRepository) GetByID(id uint) (*models.Column, error) {
	var column models.Column
	err := r.db.Preload("Coordinator").
		Preload("Writers").
		Preload("Moderators").
		First(&column, id).Error
	return &column, err
}

func (r *columnRepository) GetList(params models.ColumnListParams) ([]models.Column, int64, error) {
	var columns []models.Column
	var total int64

	if err := r.db.Model(&models.Column{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := r.db.Preload("Coordinator").
		Order("columns.id").
		Offset(offset).
		Limit(params.Limit).
		Find(&columns).Error

	return columns, total, err
}

func (r *columnRepository) ListByWriter(userID uint) ([]models.Column, error) {
	var columns []models.Column
	err := r.db.Joins("JOIN column_writers ON column_writers.column_id = columns.id").
		Where("column_writers.user_id = ?", userID).
		Order("columns.id").
		Find(&columns).Error
	return columns, err
}

// Delete removes the column with everything it owns: posts, subscriptions and the
// writer/moderator memberships. Call it inside a transaction.
func (r *columnRepository) Delete(id uint) error {
	if err := r.db.Where("column_id = ?", id).Delete(&models.Subscription{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("column_id = ?", id).Delete(&models.Post{}).Error; err != nil {
		return err
	}
	if err := r.db.Exec("DELETE FROM column_writers WHERE column_id = ?", id).Error; err != nil {
		return err
	}
	if err := r.db.Exec("DELETE FROM column_moderators WHERE column_id = ?", id).Error; err != nil {
		return err
	}
	res := r.db.Delete(&models.Column{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
