package services

import (
	"errors"
	"fmt"

	"github.com/akhilvb87/community-kitchen-app/internal/dto"
	"github.com/akhilvb87/community-kitchen-app/internal/models"
	"github.com/akhilvb87/community-kitchen-app/internal/repository"
	"github.com/akhilvb87/community-kitchen-app/internal/utils"
)

var (
	ErrMissingOrderFields = errors.New("missing fields")
	ErrInvalidItemIndex   = errors.New("invalid item index")
)

// OrderService handles order intake: whole-order upserts, single-cell updates
// and the per-date stats and details read models.
type OrderService struct {
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuRepository
	userRepo  repository.UserRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repository.OrderRepository, menuRepo repository.MenuRepository, userRepo repository.UserRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		userRepo:  userRepo,
	}
}

// List returns all orders.
func (s *OrderService) List() ([]models.Order, error) {
	return s.orderRepo.List()
}

// Upsert stores one user's quantities for one menu, keyed by (user, menu).
// Resubmission replaces the quantities wholesale. Values are coerced to
// non-negative integers; quantities at disabled indices are accepted and
// simply ignored by aggregation.
func (s *OrderService) Upsert(userID, menuID int, quantities map[string]any) (*models.Order, error) {
	if userID == 0 || menuID == 0 || quantities == nil {
		return nil, ErrMissingOrderFields
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if _, err := s.menuRepo.FindByID(menuID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to find menu: %w", err)
	}

	order := &models.Order{
		UserID:     userID,
		MenuID:     menuID,
		Quantities: utils.NormalizeQuantities(quantities),
		Status:     models.OrderStatusOrdered,
	}
	if err := s.orderRepo.Upsert(order); err != nil {
		return nil, fmt.Errorf("failed to upsert order: %w", err)
	}
	return order, nil
}

// UpdateCell merges one quantity into the user's order for (date, meal_type),
// creating the order when absent and preserving all other indices. The update
// is idempotent: repeating it converges to the same stored state. A missing
// menu is surfaced as ErrMenuNotFound rather than silently ignored.
func (s *OrderService) UpdateCell(date string, userID int, mealType models.MealType, itemIndex int, quantity any) (*models.Order, error) {
	if itemIndex < 0 {
		return nil, ErrInvalidItemIndex
	}

	menu, err := s.menuRepo.FindByDateAndMeal(date, mealType)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to find menu: %w", err)
	}

	qty := utils.ParseQuantity(quantity)

	existing, err := s.orderRepo.FindByUserAndMenu(userID, menu.ID)
	quantities := map[string]any{}
	if err == nil {
		for k, v := range existing.Quantities {
			quantities[k] = v
		}
	} else if !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	quantities[utils.IndexKey(itemIndex)] = qty

	order := &models.Order{
		UserID:     userID,
		MenuID:     menu.ID,
		Quantities: quantities,
		Status:     models.OrderStatusOrdered,
	}
	if err := s.orderRepo.Upsert(order); err != nil {
		return nil, fmt.Errorf("failed to upsert order: %w", err)
	}
	return order, nil
}

// StatsByDate sums ordered quantities per item name for each meal slot of the
// date. Index-keyed quantities join through the menu item at that index;
// legacy name-keyed quantities are matched by name directly.
func (s *OrderService) StatsByDate(date string) (*dto.DateStats, error) {
	menus, err := s.menuRepo.ListByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	stats := &dto.DateStats{
		Breakfast: dto.MealStats{},
		Lunch:     dto.MealStats{},
		Dinner:    dto.MealStats{},
	}

	for _, menu := range menus {
		orders, err := s.orderRepo.ListByMenuIDs([]int{menu.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to list orders: %w", err)
		}

		counts := dto.MealStats{}
		for _, item := range menu.Items {
			counts[item.Name] = 0
		}

		for _, order := range orders {
			for key, raw := range order.Quantities {
				qty := utils.ParseQuantity(raw)
				if idx, ok := utils.ParseIndexKey(key); ok && idx < len(menu.Items) {
					name := menu.Items[idx].Name
					if _, known := counts[name]; known {
						counts[name] += qty
					}
				} else if _, known := counts[key]; known {
					// Legacy orders keyed quantities by item name.
					counts[key] += qty
				}
			}
		}

		switch menu.MealType {
		case models.MealBreakfast:
			stats.Breakfast = counts
		case models.MealLunch:
			stats.Lunch = counts
		case models.MealDinner:
			stats.Dinner = counts
		}
	}

	return stats, nil
}

// DetailsByDate returns the date's menus plus every user's per-meal orders,
// grouped by user in order of first appearance.
func (s *OrderService) DetailsByDate(date string) (*dto.OrderDetails, error) {
	menus, err := s.menuRepo.ListByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	menuMap := make(map[int]dto.MenuInfo, len(menus))
	menuIDs := make([]int, 0, len(menus))
	for _, m := range menus {
		items := m.Items
		if items == nil {
			items = []models.MenuItem{}
		}
		menuMap[m.ID] = dto.MenuInfo{MealType: m.MealType, Items: items}
		menuIDs = append(menuIDs, m.ID)
	}

	orders, err := s.orderRepo.ListByMenuIDs(menuIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	userByID := make(map[int]models.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	byUser := make(map[int]*dto.UserOrders)
	ordered := []*dto.UserOrders{}
	for _, order := range orders {
		entry, ok := byUser[order.UserID]
		if !ok {
			name := fmt.Sprintf("User %d", order.UserID)
			if u, found := userByID[order.UserID]; found && u.DisplayName() != "" {
				name = u.DisplayName()
			}
			entry = &dto.UserOrders{
				UserID:   order.UserID,
				UserName: name,
				Orders:   map[models.MealType]*dto.MealOrder{},
			}
			byUser[order.UserID] = entry
			ordered = append(ordered, entry)
		}

		info := menuMap[order.MenuID]
		quantities := order.Quantities
		if quantities == nil {
			quantities = map[string]any{}
		}
		entry.Orders[info.MealType] = &dto.MealOrder{
			Quantities: quantities,
			Items:      info.Items,
		}
	}

	return &dto.OrderDetails{
		Menus:      menuMap,
		UserOrders: ordered,
	}, nil
}
