package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akhilvb87/community-kitchen-app/internal/constants"
	"github.com/akhilvb87/community-kitchen-app/internal/models"
	"github.com/akhilvb87/community-kitchen-app/internal/repository"
)

var (
	ErrMenuNotFound      = errors.New("menu not found")
	ErrMissingMenuFields = errors.New("missing fields")
	ErrInvalidMealType   = errors.New("invalid meal type")
	ErrInvalidItemCount  = errors.New("menu must have 3 or 4 items")
	ErrInvalidItems      = errors.New("invalid items data")
)

// MenuService validates and upserts daily menus.
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new MenuService.
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// ListByDate returns all menus published for a date.
func (s *MenuService) ListByDate(date string) ([]models.Menu, error) {
	return s.menuRepo.ListByDate(date)
}

// Get retrieves a menu by ID.
func (s *MenuService) Get(id int) (*models.Menu, error) {
	menu, err := s.menuRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to find menu: %w", err)
	}
	return menu, nil
}

// FindByDateAndMeal resolves the menu for a (date, meal_type) pair.
func (s *MenuService) FindByDateAndMeal(date string, mealType models.MealType) (*models.Menu, error) {
	menu, err := s.menuRepo.FindByDateAndMeal(date, mealType)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to find menu: %w", err)
	}
	return menu, nil
}

// Publish upserts the menu for (date, meal_type). A republish replaces the
// items wholesale and keeps the existing identifier.
func (s *MenuService) Publish(date string, mealType models.MealType, rawItems []any) (*models.Menu, error) {
	if strings.TrimSpace(date) == "" || mealType == "" || rawItems == nil {
		return nil, ErrMissingMenuFields
	}
	if !models.ValidMealType(mealType) {
		return nil, ErrInvalidMealType
	}

	items, err := normalizeItems(rawItems)
	if err != nil {
		return nil, err
	}

	existing, err := s.menuRepo.FindByDateAndMeal(date, mealType)
	if err == nil {
		existing.Items = items
		if err := s.menuRepo.Update(existing); err != nil {
			return nil, fmt.Errorf("failed to update menu: %w", err)
		}
		return existing, nil
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up menu: %w", err)
	}

	menu := &models.Menu{
		Date:     date,
		MealType: mealType,
		Items:    items,
	}
	if err := s.menuRepo.Create(menu); err != nil {
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}
	return menu, nil
}

// UpdateItems replaces the items of an existing menu by ID.
func (s *MenuService) UpdateItems(id int, rawItems []any) (*models.Menu, error) {
	if rawItems == nil {
		return nil, ErrInvalidItems
	}
	items, err := normalizeItems(rawItems)
	if err != nil {
		return nil, err
	}

	menu, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	menu.Items = items
	if err := s.menuRepo.Update(menu); err != nil {
		return nil, fmt.Errorf("failed to update menu: %w", err)
	}
	return menu, nil
}

// normalizeItems accepts the wire shapes the clients send: plain strings
// become enabled items, objects keep their name and enabled flag (enabled
// defaults to true when absent). Count outside [3, 4] is rejected.
func normalizeItems(rawItems []any) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0, len(rawItems))
	for _, raw := range rawItems {
		switch v := raw.(type) {
		case string:
			items = append(items, models.MenuItem{Name: v, Enabled: true})
		case map[string]any:
			item := models.MenuItem{Enabled: true}
			if name, ok := v["name"].(string); ok {
				item.Name = name
			}
			if enabled, ok := v["enabled"].(bool); ok {
				item.Enabled = enabled
			}
			items = append(items, item)
		default:
			return nil, ErrInvalidItems
		}
	}

	if len(items) < constants.MinMenuItems || len(items) > constants.MaxMenuItems {
		return nil, ErrInvalidItemCount
	}
	return items, nil
}
