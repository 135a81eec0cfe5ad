package repositories

import (
	"columns-cms/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	MarkPublic(id uint) error
	ListByModerator(userID uint) ([]models.Post, error)
	ListPublicByColumn(columnID uint) ([]models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Omit("Column", "Writer").Create(post).Error
}

// GetByID loads the post with its writer and its column's moderator set.
func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Writer").
		Preload("Column.Moderators").
		First(&post, id).Error
	return &post, err
}

func (r *postRepository) MarkPublic(id uint) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).Update("public", true).Error
}

// ListByModerator returns the posts of every column listing userID as moderator.
func (r *postRepository) ListByModerator(userID uint) ([]models.Post, error) {
	var posts []models.Post
	columnIDs := r.db.Table("column_moderators").Select("column_id").Where("user_id = ?", userID)
	err := r.db.Preload("Writer").
		Preload("Column").
		Where("column_id IN (?)", columnIDs).
		Order("id").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListPublicByColumn(columnID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Writer").
		Where("column_id = ? AND public = ?", columnID, true).
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}
