package repositories

import (
	"columns-cms/models"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(subscription *models.Subscription) error
	Count(readerID, columnID uint) (int64, error)
	FirstOrCreate(readerID, columnID uint) (*models.Subscription, error)
	ListByReader(readerID uint) ([]models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(subscription *models.Subscription) error {
	return r.db.Omit("Reader", "Column").Create(subscription).Error
}

func (r *subscriptionRepository) Count(readerID, columnID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("reader_id = ? AND column_id = ?", readerID, columnID).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) FirstOrCreate(readerID, columnID uint) (*models.Subscription, error) {
	subscription := models.Subscription{ReaderID: readerID, ColumnID: columnID}
	err := r.db.Where("reader_id = ? AND column_id = ?", readerID, columnID).
		Order("id").
		FirstOrCreate(&subscription).Error
	return &subscription, err
}

func (r *subscriptionRepository) ListByReader(readerID uint) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	err := r.db.Preload("Column").
		Where("reader_id = ?", readerID).
		Order("id").
		Find(&subscriptions).Error
	return subscriptions, err
}
