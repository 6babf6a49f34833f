package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/akhilvb87/community-kitchen-app/internal/errors"
	"github.com/akhilvb87/community-kitchen-app/internal/models"
	"github.com/akhilvb87/community-kitchen-app/internal/services"
)

// MenuHandler coordinates menu-publication HTTP handlers.
type MenuHandler struct {
	menuService *services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(menuService *services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// ListByDate returns the menus published for ?date=YYYY-MM-DD.
func (h *MenuHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		apierrors.BadRequest(c, "Date required")
		return
	}

	menus, err := h.menuService.ListByDate(date)
	if err != nil {
		respondMenuError(c, err)
		return
	}
	if menus == nil {
		menus = []models.Menu{}
	}
	c.JSON(http.StatusOK, menus)
}

// Publish upserts the menu for a (date, meal_type) pair. Items may be plain
// strings or {name, enabled} objects.
func (h *MenuHandler) Publish(c *gin.Context) {
	type PublishRequest struct {
		Date     string          `json:"date"`
		MealType models.MealType `json:"meal_type"`
		Items    []any           `json:"items"`
	}

	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	menu, err := h.menuService.Publish(req.Date, req.MealType, req.Items)
	if err != nil {
		respondMenuError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// UpdateItems replaces the item list of an existing menu.
func (h *MenuHandler) UpdateItems(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	type UpdateRequest struct {
		Items []any `json:"items"`
	}
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid items data")
		return
	}

	menu, err := h.menuService.UpdateItems(id, req.Items)
	if err != nil {
		respondMenuError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

func respondMenuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingMenuFields),
		errors.Is(err, services.ErrInvalidMealType),
		errors.Is(err, services.ErrInvalidItemCount),
		errors.Is(err, services.ErrInvalidItems):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrMenuNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
