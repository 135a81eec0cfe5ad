package handlers

import (
	"columns-cms/helper"
	"columns-cms/models"
	"columns-cms/services"

	"github.com/gin-gonic/gin"
)

type ColumnHandler struct {
	columnService       services.ColumnService
	subscriptionService services.SubscriptionService
	Helper              *helper.HTTPHelper
}

func NewColumnHandler(columnService services.ColumnService, subscriptionService services.SubscriptionService, h *helper.HTTPHelper) *ColumnHandler {
	return &ColumnHandler{
		columnService:       columnService,
		subscriptionService: subscriptionService,
		Helper:              h,
	}
}

func (h *ColumnHandler) CreateColumn(c *gin.Context) {
	userID, _ := currentUserID(c)

	var req models.CreateColumnRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	column, err := h.columnService.CreateColumn(req, userID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Column created successfully", column)
}

// GetColumns is open to anonymous visitors.
func (h *ColumnHandler) GetColumns(c *gin.Context) {
	var params models.ColumnListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	// Set defaults
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 10
	}

	columns, total, err := h.columnService.GetColumns(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"columns":    columns,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *ColumnHandler) GetColumn(c *gin.Context) {
	userID, _ := currentUserID(c)
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	detail, err := h.columnService.GetColumnDetail(id, userID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", detail)
}

func (h *ColumnHandler) GetWriterColumns(c *gin.Context) {
	userID, _ := currentUserID(c)

	columns, err := h.columnService.GetWriterColumns(userID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", columns)
}

func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	userID, _ := currentUserID(c)
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.columnService.DeleteColumn(id, userID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Column deleted successfully", h.Helper.EmptyJsonMap())
}

// Subscribe always records a new subscription.
func (h *ColumnHandler) Subscribe(c *gin.Context) {
	userID, _ := currentUserID(c)
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	subscription, err := h.subscriptionService.Subscribe(userID, id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Subscribed", subscription)
}

// EnsureSubscription subscribes the caller unless a subscription already exists.
func (h *ColumnHandler) EnsureSubscription(c *gin.Context) {
	userID, _ := currentUserID(c)
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	subscription, err := h.subscriptionService.EnsureSubscribed(userID, id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Subscribed", subscription)
}

func (h *ColumnHandler) GetSubscriptions(c *gin.Context) {
	userID, _ := currentUserID(c)

	subscriptions, err := h.subscriptionService.GetSubscriptions(userID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", subscriptions)
}
