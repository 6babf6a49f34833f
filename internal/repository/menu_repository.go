package repository

import (
	"github.com/akhilvb87/community-kitchen-app/internal/models"
	"github.com/akhilvb87/community-kitchen-app/internal/store"
)

// StoreMenuRepository is a document-store implementation of MenuRepository
type StoreMenuRepository struct {
	store store.Store
}

// NewMenuRepository creates a new MenuRepository
func NewMenuRepository(s store.Store) MenuRepository {
	return &StoreMenuRepository{store: s}
}

// ListByDate retrieves all menus published for a date
func (r *StoreMenuRepository) ListByDate(date string) ([]models.Menu, error) {
	var menus []models.Menu
	err := r.store.View(func(d *store.Document) error {
		for _, m := range d.Menus {
			if m.Date == date {
				menus = append(menus, m)
			}
		}
		return nil
	})
	return menus, err
}

// FindByID finds a menu by ID
func (r *StoreMenuRepository) FindByID(id int) (*models.Menu, error) {
	var menu *models.Menu
	err := r.store.View(func(d *store.Document) error {
		for i := range d.Menus {
			if d.Menus[i].ID == id {
				m := d.Menus[i]
				menu = &m
				return nil
			}
		}
		return ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return menu, nil
}

// FindByDateAndMeal finds the menu for a (date, meal_type) pair
func (r *StoreMenuRepository) FindByDateAndMeal(date string, mealType models.MealType) (*models.Menu, error) {
	var menu *models.Menu
	err := r.store.View(func(d *store.Document) error {
		for i := range d.Menus {
			if d.Menus[i].Date == date && d.Menus[i].MealType == mealType {
				m := d.Menus[i]
				menu = &m
				return nil
			}
		}
		return ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return menu, nil
}

// Create creates a new menu and assigns its ID
func (r *StoreMenuRepository) Create(menu *models.Menu) error {
	return r.store.Update(func(d *store.Document) error {
		menu.ID = d.NextMenuID()
		d.Menus = append(d.Menus, *menu)
		return nil
	})
}

// Update replaces the stored menu with the same ID
func (r *StoreMenuRepository) Update(menu *models.Menu) error {
	return r.store.Update(func(d *store.Document) error {
		for i := range d.Menus {
			if d.Menus[i].ID == menu.ID {
				d.Menus[i] = *menu
				return nil
			}
		}
		return ErrRecordNotFound
	})
}
