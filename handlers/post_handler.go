package handlers

import (
	"columns-cms/helper"
	"columns-cms/models"
	"columns-cms/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
	Helper      *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, h *helper.HTTPHelper) *PostHandler {
	return &PostHandler{postService: postService, Helper: h}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, _ := currentUserID(c)

	var req models.CreatePostRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	post, err := h.postService.CreatePost(req, userID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Post created successfully", post)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.GetPost(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	html, err := helper.RenderMarkdown(post.Text)
	if err != nil {
		h.Helper.SendDatabaseError(c, "failed to render post", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", models.PostDetailResponse{Post: *post, HTML: html})
}

func (h *PostHandler) GetModeratorPosts(c *gin.Context) {
	userID, _ := currentUserID(c)

	posts, err := h.postService.GetModeratorPosts(userID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", posts)
}

func (h *PostHandler) MarkPublic(c *gin.Context) {
	userID, _ := currentUserID(c)
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.MarkPublic(id, userID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Post is now public", post)
}

// GetPublicPosts is open to anonymous visitors.
func (h *PostHandler) GetPublicPosts(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	posts, err := h.postService.GetPublicPosts(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", posts)
}
