package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/akhilvb87/community-kitchen-app/internal/errors"
	"github.com/akhilvb87/community-kitchen-app/internal/models"
	"github.com/akhilvb87/community-kitchen-app/internal/services"
)

// OrderHandler coordinates order-intake and reporting HTTP handlers.
type OrderHandler struct {
	orderService  *services.OrderService
	reportService *services.ReportService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService, reportService *services.ReportService) *OrderHandler {
	return &OrderHandler{
		orderService:  orderService,
		reportService: reportService,
	}
}

// List returns all orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List()
	if err != nil {
		respondOrderError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// Upsert stores a user's quantities for a menu, replacing any prior order for
// the same (user, menu) pair.
func (h *OrderHandler) Upsert(c *gin.Context) {
	type UpsertRequest struct {
		UserID     int            `json:"user_id"`
		MenuID     int            `json:"menu_id"`
		Quantities map[string]any `json:"quantities"`
	}

	var req UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.Upsert(req.UserID, req.MenuID, req.Quantities)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateCell merges a single quantity into a user's order for one meal of one
// date, creating the order when it does not exist yet.
func (h *OrderHandler) UpdateCell(c *gin.Context) {
	type CellRequest struct {
		UserID    int             `json:"user_id"`
		Date      string          `json:"date"`
		MealType  models.MealType `json:"meal_type"`
		ItemIndex int             `json:"item_index"`
		Quantity  any             `json:"quantity"`
	}

	var req CellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.UserID == 0 || req.Date == "" || !models.ValidMealType(req.MealType) {
		apierrors.BadRequest(c, "Missing fields")
		return
	}

	order, err := h.orderService.UpdateCell(req.Date, req.UserID, req.MealType, req.ItemIndex, req.Quantity)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Stats returns the per-meal item-name totals for ?date=.
func (h *OrderHandler) Stats(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		apierrors.BadRequest(c, "Date required")
		return
	}

	stats, err := h.orderService.StatsByDate(date)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Details returns the menus and per-user orders for ?date=.
func (h *OrderHandler) Details(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		apierrors.BadRequest(c, "Date required")
		return
	}

	details, err := h.orderService.DetailsByDate(date)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// Matrix returns the consolidated quantity matrix for ?date= at ?width= (3 or
// 4 items per meal, defaulting to the coordinator view's 4).
func (h *OrderHandler) Matrix(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		apierrors.BadRequest(c, "Date required")
		return
	}

	width := services.MatrixWidthCoordinator
	if raw := c.Query("width"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			apierrors.BadRequest(c, services.ErrInvalidMatrixWidth.Error())
			return
		}
		width = parsed
	}

	matrix, err := h.reportService.ConsolidatedMatrix(date, width)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, matrix)
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingOrderFields),
		errors.Is(err, services.ErrInvalidItemIndex),
		errors.Is(err, services.ErrInvalidMatrixWidth):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrMenuNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
