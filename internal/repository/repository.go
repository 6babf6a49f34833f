package repository

import (
	"github.com/akhilvb87/community-kitchen-app/internal/models"
)

// UserRepository defines the interface for user directory data access
type UserRepository interface {
	// List retrieves all users
	List() ([]models.User, error)

	// FindByID finds a user by ID
	FindByID(id int) (*models.User, error)

	// FindByPhone finds the user owning the given phone, if any
	FindByPhone(phone string) (*models.User, error)

	// Create creates a new user, assigning its ID
	Create(user *models.User) error

	// Update replaces the stored user with the same ID
	Update(user *models.User) error

	// Delete removes a user by ID
	Delete(id int) error
}

// MenuRepository defines the interface for menu data access
type MenuRepository interface {
	// ListByDate retrieves all menus published for a date
	ListByDate(date string) ([]models.Menu, error)

	// FindByID finds a menu by ID
	FindByID(id int) (*models.Menu, error)

	// FindByDateAndMeal finds the menu for a (date, meal_type) pair, if any
	FindByDateAndMeal(date string, mealType models.MealType) (*models.Menu, error)

	// Create creates a new menu, assigning its ID
	Create(menu *models.Menu) error

	// Update replaces the stored menu with the same ID
	Update(menu *models.Menu) error
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// List retrieves all orders
	List() ([]models.Order, error)

	// FindByUserAndMenu finds the order for a (user_id, menu_id) pair, if any
	FindByUserAndMenu(userID, menuID int) (*models.Order, error)

	// ListByMenuIDs retrieves all orders referencing one of the given menus,
	// in stored order
	ListByMenuIDs(menuIDs []int) ([]models.Order, error)

	// Upsert creates the order or replaces the existing (user_id, menu_id) one
	Upsert(order *models.Order) error
}

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	// List retrieves all expenses
	List() ([]models.Expense, error)

	// Create creates a new expense, assigning its ID
	Create(expense *models.Expense) error

	// Delete removes an expense by ID
	Delete(id int) error
}
