package services

import (
	"strings"

	"columns-cms/authz"
	"columns-cms/logger"
	"columns-cms/models"
	"columns-cms/repositories"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ColumnService is the column registry.
type ColumnService interface {
	CreateColumn(req models.CreateColumnRequest, coordinatorID uint) (*models.Column, error)
	GetColumns(params models.ColumnListParams) ([]models.Column, int64, error)
	GetColumn(id uint) (*models.Column, error)
	GetColumnDetail(id uint, userID uint) (*models.ColumnDetailResponse, error)
	GetWriterColumns(writerID uint) ([]models.Column, error)
	DeleteColumn(id uint, userID uint) error
}

type columnService struct {
	tx               repositories.Transactor
	userRepo         repositories.UserRepository
	columnRepo       repositories.ColumnRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewColumnService(
	tx repositories.Transactor,
	userRepo repositories.UserRepository,
	columnRepo repositories.ColumnRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) ColumnService {
	return &columnService{
		tx:               tx,
		userRepo:         userRepo,
		columnRepo:       columnRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// CreateColumn validates the writer and moderator selections against the users' current
// roles and inserts the column in the same transaction. The coordinator is always the
// caller.
func (s *columnService) CreateColumn(req models.CreateColumnRequest, coordinatorID uint) (*models.Column, error) {
	var column *models.Column

	err := s.tx.Transaction(func(tx *gorm.DB) error {
		users := s.userRepo.WithTx(tx)

		coordinator, err := users.GetByID(coordinatorID)
		if err != nil {
			return lookupError(err, "user", coordinatorID)
		}
		if err := authz.Authorize(coordinator, models.RoleCoordinator, nil).Err(); err != nil {
			return err
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			return models.ErrorValidation{Field: "name", Message: "please enter a name"}
		}
		if len(req.WriterIDs) == 0 {
			return models.ErrorValidation{Field: "writers", Message: "please select a writer"}
		}
		if len(req.ModeratorIDs) == 0 {
			return models.ErrorValidation{Field: "moderators", Message: "please select a moderator"}
		}

		writers, err := membersWithRole(users, req.WriterIDs, models.RoleWriter, "writers", "Not all selected user are writers")
		if err != nil {
			return err
		}
		moderators, err := membersWithRole(users, req.ModeratorIDs, models.RoleModerator, "moderators", "Not all selected user are moderators")
		if err != nil {
			return err
		}

		column = &models.Column{
			CoordinatorID: coordinator.ID,
			Name:          name,
			Writers:       writers,
			Moderators:    moderators,
		}
		if err := s.columnRepo.WithTx(tx).Create(column); err != nil {
			return storageError(err, "create column")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"column_id":      column.ID,
		"coordinator_id": coordinatorID,
		"writers":        len(column.Writers),
		"moderators":     len(column.Moderators),
	}).Info("column created")

	return s.GetColumn(column.ID)
}

// membersWithRole loads the selected users and checks that each one holds role.
func membersWithRole(users repositories.UserRepository, ids []uint, role models.UserRole, field, message string) ([]models.User, error) {
	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	members, err := users.GetByIDs(unique)
	if err != nil {
		return nil, storageError(err, "load "+field)
	}
	if len(members) != len(unique) {
		return nil, models.ErrorValidation{Field: field, Message: "Select a valid choice. One of the selected users does not exist."}
	}

	for _, member := range members {
		if member.Role() != role {
			return nil, models.ErrorValidation{Field: field, Message: message}
		}
	}
	return members, nil
}

func (s *columnService) GetColumns(params models.ColumnListParams) ([]models.Column, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	columns, total, err := s.columnRepo.GetList(params)
	if err != nil {
		return nil, 0, storageError(err, "list columns")
	}
	return columns, total, nil
}

func (s *columnService) GetColumn(id uint) (*models.Column, error) {
	column, err := s.columnRepo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, "column", id)
	}
	return column, nil
}

// GetColumnDetail reports whether userID follows the column. It never subscribes.
func (s *columnService) GetColumnDetail(id uint, userID uint) (*models.ColumnDetailResponse, error) {
	column, err := s.GetColumn(id)
	if err != nil {
		return nil, err
	}

	count, err := s.subscriptionRepo.Count(userID, id)
	if err != nil {
		return nil, storageError(err, "count subscriptions")
	}

	return &models.ColumnDetailResponse{
		Column:     *column,
		Subscribed: count > 0,
	}, nil
}

// GetWriterColumns returns the columns writerID may post to.
func (s *columnService) GetWriterColumns(writerID uint) ([]models.Column, error) {
	writer, err := s.userRepo.GetByID(writerID)
	if err != nil {
		return nil, lookupError(err, "user", writerID)
	}
	if err := authz.Authorize(writer, models.RoleWriter, nil).Err(); err != nil {
		return nil, err
	}

	columns, err := s.columnRepo.ListByWriter(writerID)
	if err != nil {
		return nil, storageError(err, "list writer columns")
	}
	return columns, nil
}

// DeleteColumn removes a column and everything it owns. Only its coordinator may do so.
func (s *columnService) DeleteColumn(id uint, userID uint) error {
	err := s.tx.Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.WithTx(tx).GetByID(userID)
		if err != nil {
			return lookupError(err, "user", userID)
		}

		columns := s.columnRepo.WithTx(tx)
		column, err := columns.GetByID(id)
		if err != nil {
			return lookupError(err, "column", id)
		}

		if err := authz.Authorize(user, models.RoleCoordinator, authz.ColumnTarget(column)).Err(); err != nil {
			return err
		}

		if err := columns.Delete(id); err != nil {
			return lookupError(err, "column", id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{"column_id": id, "coordinator_id": userID}).Info("column deleted")
	return nil
}
