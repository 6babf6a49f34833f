package repository

import (
	"github.com/akhilvb87/community-kitchen-app/internal/models"
	"github.com/akhilvb87/community-kitchen-app/internal/store"
)

// StoreExpenseRepository is a document-store implementation of ExpenseRepository
type StoreExpenseRepository struct {
	store store.Store
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(s store.Store) ExpenseRepository {
	return &StoreExpenseRepository{store: s}
}

// List retrieves all expenses
func (r *StoreExpenseRepository) List() ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.store.View(func(d *store.Document) error {
		expenses = append(expenses, d.Expenses...)
		return nil
	})
	return expenses, err
}

// Create creates a new expense and assigns its ID
func (r *StoreExpenseRepository) Create(expense *models.Expense) error {
	return r.store.Update(func(d *store.Document) error {
		expense.ID = d.NextExpenseID()
		d.Expenses = append(d.Expenses, *expense)
		return nil
	})
}

// Delete removes an expense by ID
func (r *StoreExpenseRepository) Delete(id int) error {
	return r.store.Update(func(d *store.Document) error {
		for i := range d.Expenses {
			if d.Expenses[i].ID == id {
				d.Expenses = append(d.Expenses[:i], d.Expenses[i+1:]...)
				return nil
			}
		}
		return ErrRecordNotFound
	})
}
