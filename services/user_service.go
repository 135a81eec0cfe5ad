package services

import (
	"strings"

	"columns-cms/authz"
	"columns-cms/logger"
	"columns-cms/models"
	"columns-cms/repositories"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService is the identity and role store.
type UserService interface {
	CreateUser(email, username, password string) (*models.User, error)
	GetUser(id uint) (*models.User, error)
	GetRole(userID uint) (models.UserRole, error)
	SetRole(userID uint, role models.UserRole) (*models.User, error)
	AssignRole(actorID, userID uint, role models.UserRole) (*models.User, error)
	ListUsersByRole(actorID uint, role models.UserRole) ([]models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateUser stores a new user with a bcrypt password hash. The user starts as a Reader.
func (s *userService) CreateUser(email, username, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if email == "" {
		return nil, models.ErrorValidation{Field: "email", Message: "email is required"}
	}
	if username == "" {
		return nil, models.ErrorValidation{Field: "username", Message: "username is required"}
	}
	if password == "" {
		return nil, models.ErrorValidation{Field: "password", Message: "password is required"}
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, models.ErrorConflict{Field: "email", Message: "user with this email already exists"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageError(err, "check email")
	}

	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, models.ErrorConflict{Field: "username", Message: "user with this username already exists"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageError(err, "check username")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "user with this email or username already exists"}
		}
		return nil, storageError(err, "create user")
	}

	logger.Log.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("user created")
	return user, nil
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, "user", id)
	}
	return user, nil
}

func (s *userService) GetRole(userID uint) (models.UserRole, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return "", err
	}
	return user.Role(), nil
}

func (s *userService) SetRole(userID uint, role models.UserRole) (*models.User, error) {
	if !role.Valid() {
		return nil, models.ErrorValidation{Field: "role", Message: "select a valid role"}
	}
	if err := s.userRepo.UpdateRole(userID, role); err != nil {
		return nil, lookupError(err, "user", userID)
	}

	logger.Log.WithFields(logrus.Fields{"user_id": userID, "role": role}).Info("role updated")
	return s.GetUser(userID)
}

// AssignRole is SetRole on behalf of a coordinator.
func (s *userService) AssignRole(actorID, userID uint, role models.UserRole) (*models.User, error) {
	actor, err := s.GetUser(actorID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, models.RoleCoordinator, nil).Err(); err != nil {
		return nil, err
	}
	return s.SetRole(userID, role)
}

// ListUsersByRole returns the users a coordinator may pick as writers or moderators.
func (s *userService) ListUsersByRole(actorID uint, role models.UserRole) ([]models.User, error) {
	actor, err := s.GetUser(actorID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, models.RoleCoordinator, nil).Err(); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, models.ErrorValidation{Field: "role", Message: "select a valid role"}
	}

	users, err := s.userRepo.ListByRole(role)
	if err != nil {
		return nil, storageError(err, "list users")
	}
	return users, nil
}
