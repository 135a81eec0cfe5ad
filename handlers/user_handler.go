package handlers

import (
	"columns-cms/helper"
	"columns-cms/models"
	"columns-cms/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

// GetUsers lists users holding the requested role, for the column form.
func (h *UserHandler) GetUsers(c *gin.Context) {
	userID, _ := currentUserID(c)

	var params models.UserListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	users, err := h.userService.ListUsersByRole(userID, params.Role)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", users)
}

func (h *UserHandler) SetRole(c *gin.Context) {
	actorID, _ := currentUserID(c)
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.SetRoleRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	user, err := h.userService.AssignRole(actorID, id, req.Role)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Role updated", user)
}
