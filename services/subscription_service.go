package services

import (
	"columns-cms/logger"
	"columns-cms/models"
	"columns-cms/repositories"

	"github.com/sirupsen/logrus"
)

// SubscriptionService is the subscription index. Duplicate (reader, column) pairs are
// allowed: Subscribe always inserts.
type SubscriptionService interface {
	Subscribe(readerID, columnID uint) (*models.Subscription, error)
	IsSubscribed(readerID, columnID uint) (bool, error)
	EnsureSubscribed(readerID, columnID uint) (*models.Subscription, error)
	GetSubscriptions(readerID uint) ([]models.Subscription, error)
}

type subscriptionService struct {
	columnRepo       repositories.ColumnRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewSubscriptionService(columnRepo repositories.ColumnRepository, subscriptionRepo repositories.SubscriptionRepository) SubscriptionService {
	return &subscriptionService{
		columnRepo:       columnRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func (s *subscriptionService) Subscribe(readerID, columnID uint) (*models.Subscription, error) {
	if _, err := s.columnRepo.GetByID(columnID); err != nil {
		return nil, lookupError(err, "column", columnID)
	}

	subscription := &models.Subscription{ReaderID: readerID, ColumnID: columnID}
	if err := s.subscriptionRepo.Create(subscription); err != nil {
		return nil, storageError(err, "create subscription")
	}

	logger.Log.WithFields(logrus.Fields{"reader_id": readerID, "column_id": columnID}).Info("subscribed")
	return subscription, nil
}

// IsSubscribed is a pure query.
func (s *subscriptionService) IsSubscribed(readerID, columnID uint) (bool, error) {
	count, err := s.subscriptionRepo.Count(readerID, columnID)
	if err != nil {
		return false, storageError(err, "count subscriptions")
	}
	return count > 0, nil
}

// EnsureSubscribed returns the reader's existing subscription to the column or creates one.
func (s *subscriptionService) EnsureSubscribed(readerID, columnID uint) (*models.Subscription, error) {
	if _, err := s.columnRepo.GetByID(columnID); err != nil {
		return nil, lookupError(err, "column", columnID)
	}

	subscription, err := s.subscriptionRepo.FirstOrCreate(readerID, columnID)
	if err != nil {
		return nil, storageError(err, "ensure subscription")
	}
	return subscription, nil
}

func (s *subscriptionService) GetSubscriptions(readerID uint) ([]models.Subscription, error) {
	subscriptions, err := s.subscriptionRepo.ListByReader(readerID)
	if err != nil {
		return nil, storageError(err, "list subscriptions")
	}
	return subscriptions, nil
}
