package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/akhilvb87/community-kitchen-app/internal/errors"
	"github.com/akhilvb87/community-kitchen-app/internal/models"
	"github.com/akhilvb87/community-kitchen-app/internal/services"
)

// ExpenseHandler coordinates expense HTTP handlers.
type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List returns all expenses.
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenseService.List()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	c.JSON(http.StatusOK, expenses)
}

// Create records a new expense.
func (h *ExpenseHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		Date        string  `json:"date"`
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.expenseService.Create(req.Date, req.Description, req.Amount)
	if err != nil {
		respondExpenseError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Delete removes an expense by id.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.expenseService.Delete(id); err != nil {
		respondExpenseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

func respondExpenseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingExpenseFields),
		errors.Is(err, services.ErrInvalidAmount):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrExpenseNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
