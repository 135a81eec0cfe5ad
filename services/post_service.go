package services

import (
	"strings"

	"columns-cms/authz"
	"columns-cms/logger"
	"columns-cms/models"
	"columns-cms/repositories"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const msgSelectWritableColumn = "Please select a column you can write for"

// PostService is the post ledger.
type PostService interface {
	CreatePost(req models.CreatePostRequest, writerID uint) (*models.Post, error)
	GetPost(id uint) (*models.Post, error)
	MarkPublic(postID uint, moderatorID uint) (*models.Post, error)
	GetModeratorPosts(moderatorID uint) ([]models.Post, error)
	GetPublicPosts(columnID uint) ([]models.Post, error)
}

type postService struct {
	userRepo   repositories.UserRepository
	columnRepo repositories.ColumnRepository
	postRepo   repositories.PostRepository
}

func NewPostService(
	userRepo repositories.UserRepository,
	columnRepo repositories.ColumnRepository,
	postRepo repositories.PostRepository,
) PostService {
	return &postService{
		userRepo:   userRepo,
		columnRepo: columnRepo,
		postRepo:   postRepo,
	}
}

// CreatePost stores a draft written by the caller in a column the caller writes for.
func (s *postService) CreatePost(req models.CreatePostRequest, writerID uint) (*models.Post, error) {
	writer, err := s.userRepo.GetByID(writerID)
	if err != nil {
		return nil, lookupError(err, "user", writerID)
	}
	if err := authz.Authorize(writer, models.RoleWriter, nil).Err(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, models.ErrorValidation{Field: "title", Message: "please enter a title"}
	}
	if req.ColumnID == 0 {
		return nil, models.ErrorValidation{Field: "column", Message: "Please select a column"}
	}

	column, err := s.columnRepo.GetByID(req.ColumnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorValidation{Field: "column", Message: msgSelectWritableColumn}
		}
		return nil, storageError(err, "load column")
	}
	if !authz.Authorize(writer, models.RoleWriter, authz.ColumnTarget(column)).Allowed {
		return nil, models.ErrorValidation{Field: "column", Message: msgSelectWritableColumn}
	}

	post := &models.Post{
		ColumnID: column.ID,
		WriterID: writer.ID,
		Title:    title,
		Text:     req.Text,
		Public:   false,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, storageError(err, "create post")
	}

	logger.Log.WithFields(logrus.Fields{
		"post_id":   post.ID,
		"column_id": column.ID,
		"writer_id": writer.ID,
	}).Info("post created")

	return s.GetPost(post.ID)
}

func (s *postService) GetPost(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, "post", id)
	}
	return post, nil
}

// MarkPublic moves a post from draft to public. Repeating it is harmless.
func (s *postService) MarkPublic(postID uint, moderatorID uint) (*models.Post, error) {
	post, err := s.GetPost(postID)
	if err != nil {
		return nil, err
	}

	moderator, err := s.userRepo.GetByID(moderatorID)
	if err != nil {
		return nil, lookupError(err, "user", moderatorID)
	}

	if err := authz.Authorize(moderator, models.RoleModerator, authz.PostTarget(post)).Err(); err != nil {
		return nil, err
	}

	if err := s.postRepo.MarkPublic(post.ID); err != nil {
		return nil, storageError(err, "mark post public")
	}
	post.Public = true

	logger.Log.WithFields(logrus.Fields{"post_id": post.ID, "moderator_id": moderatorID}).Info("post marked public")
	return post, nil
}

// GetModeratorPosts returns the posts of every column the moderator moderates.
func (s *postService) GetModeratorPosts(moderatorID uint) ([]models.Post, error) {
	moderator, err := s.userRepo.GetByID(moderatorID)
	if err != nil {
		return nil, lookupError(err, "user", moderatorID)
	}
	if err := authz.Authorize(moderator, models.RoleModerator, nil).Err(); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByModerator(moderatorID)
	if err != nil {
		return nil, storageError(err, "list moderator posts")
	}
	return posts, nil
}

func (s *postService) GetPublicPosts(columnID uint) ([]models.Post, error) {
	if _, err := s.columnRepo.GetByID(columnID); err != nil {
		return nil, lookupError(err, "column", columnID)
	}

	posts, err := s.postRepo.ListPublicByColumn(columnID)
	if err != nil {
		return nil, storageError(err, "list public posts")
	}
	return posts, nil
}
