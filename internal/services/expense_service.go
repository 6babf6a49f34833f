package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akhilvb87/community-kitchen-app/internal/models"
	"github.com/akhilvb87/community-kitchen-app/internal/repository"
)

var (
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrMissingExpenseFields = errors.New("date and description are required")
	ErrInvalidAmount        = errors.New("amount must be positive")
)

// ExpenseService manages kitchen expense entries.
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// List returns all expenses.
func (s *ExpenseService) List() ([]models.Expense, error) {
	return s.expenseRepo.List()
}

// Create records a new expense.
func (s *ExpenseService) Create(date, description string, amount float64) (*models.Expense, error) {
	if strings.TrimSpace(date) == "" || strings.TrimSpace(description) == "" {
		return nil, ErrMissingExpenseFields
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	expense := &models.Expense{
		Date:        date,
		Description: description,
		Amount:      amount,
	}
	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return expense, nil
}

// Delete removes an expense by ID.
func (s *ExpenseService) Delete(id int) error {
	if err := s.expenseRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
