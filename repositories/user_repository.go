package repositories

import (
	"columns-cms/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByIDs(ids []uint) ([]models.User, error)
	ListByRole(role models.UserRole) ([]models.User, error)
	UpdateRole(userID uint, role models.UserRole) error
	CountProfiles(userID uint) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

// Create inserts the user; the Reader profile is written by models.User.AfterCreate in
// the same transaction.
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByIDs(ids []uint) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Preload("Profile").Where("id IN ?", ids).Order("id").Find(&users).Error
	return users, err
}

func (r *userRepository) ListByRole(role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Profile").
		Joins("JOIN user_profiles ON user_profiles.user_id = users.id").
		Where("user_profiles.role = ?", role).
		Order("users.username").
		Find(&users).Error
	return users, err
}

func (r *userRepository) UpdateRole(userID uint, role models.UserRole) error {
	res := r.db.Model(&models.UserProfile{}).Where("user_id = ?", userID).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) CountProfiles(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserProfile{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
