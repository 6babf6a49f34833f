package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akhilvb87/community-kitchen-app/internal/dto"
	"github.com/akhilvb87/community-kitchen-app/internal/models"
	"github.com/akhilvb87/community-kitchen-app/internal/repository"
)

// Matrix widths of the two consuming views: the coordinator table shows up to
// four items per meal, the super-admin table up to three.
const (
	MatrixWidthCoordinator = 4
	MatrixWidthSuperAdmin  = 3
)

var ErrInvalidMatrixWidth = errors.New("width must be 3 or 4")

// ReportService is the order aggregation engine: it turns one date's menus
// and orders into the consolidated users × enabled-items quantity matrix.
type ReportService struct {
	menuRepo  repository.MenuRepository
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

// NewReportService creates a new ReportService.
func NewReportService(menuRepo repository.MenuRepository, orderRepo repository.OrderRepository, userRepo repository.UserRepository) *ReportService {
	return &ReportService{
		menuRepo:  menuRepo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

// ConsolidatedMatrix builds the per-date matrix at the given width.
//
// Each meal slot's items are truncated to width and padded with blank enabled
// items, then filtered to enabled ones. A column keeps the item's original
// positional index: that index, not the filtered position, is the join key
// into stored quantities. Rows cover only users with at least one order on
// the date; a user without an order for some meal contributes 0 to every
// column of that meal. Totals are summed per column across all rows.
func (s *ReportService) ConsolidatedMatrix(date string, width int) (*dto.ConsolidatedMatrix, error) {
	if width != MatrixWidthCoordinator && width != MatrixWidthSuperAdmin {
		return nil, ErrInvalidMatrixWidth
	}

	menus, err := s.menuRepo.ListByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	// Bucket the date's menus into the three fixed slots, normalized to width.
	slotItems := map[models.MealType][]models.MenuItem{}
	slotMenuID := map[models.MealType]int{}
	menuIDs := make([]int, 0, len(menus))
	for _, m := range menus {
		if !models.ValidMealType(m.MealType) {
			continue
		}
		items := m.Items
		if len(items) > width {
			items = items[:width]
		}
		padded := make([]models.MenuItem, len(items), width)
		copy(padded, items)
		for len(padded) < width {
			padded = append(padded, models.MenuItem{Name: "", Enabled: true})
		}
		slotItems[m.MealType] = padded
		slotMenuID[m.MealType] = m.ID
		menuIDs = append(menuIDs, m.ID)
	}

	matrix := &dto.ConsolidatedMatrix{
		Date:    date,
		Columns: []dto.MatrixColumn{},
		Groups:  []dto.MatrixGroup{},
		Rows:    []dto.MatrixRow{},
		Totals:  []int{},
	}

	for _, meal := range models.MealSlots {
		span := 0
		for i, item := range slotItems[meal] {
			if !item.Enabled {
				continue
			}
			matrix.Columns = append(matrix.Columns, dto.MatrixColumn{
				Meal:      meal,
				ItemIndex: i,
				Label:     columnLabel(meal, i, item.Name),
			})
			span++
		}
		if span > 0 {
			matrix.Groups = append(matrix.Groups, dto.MatrixGroup{Meal: meal, Span: span})
		}
	}

	if len(matrix.Columns) == 0 {
		// No menus for this date: zero columns and zero rows. The caller
		// renders an explicit "no orders yet" state.
		return matrix, nil
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

	// Group the date's orders by user, then by meal through the per-slot menu
	// id. At most one order exists per (user, meal) since menus are unique per
	// (date, meal_type). Row order follows first appearance in the order list.
	menuMeal := map[int]models.MealType{}
	for meal, id := range slotMenuID {
		menuMeal[id] = meal
	}

	type userEntry struct {
		row   int
		meals map[models.MealType]*models.Order
	}
	byUser := map[int]*userEntry{}
	rowUsers := []int{}
	for i := range orders {
		o := &orders[i]
		entry, ok := byUser[o.UserID]
		if !ok {
			entry = &userEntry{meals: map[models.MealType]*models.Order{}}
			byUser[o.UserID] = entry
			rowUsers = append(rowUsers, o.UserID)
		}
		entry.meals[menuMeal[o.MenuID]] = o
	}

	matrix.Totals = make([]int, len(matrix.Columns))
	for _, userID := range rowUsers {
		entry := byUser[userID]

		name := fmt.Sprintf("User %d", userID)
		if u, ok := userByID[userID]; ok && u.DisplayName() != "" {
			name = u.DisplayName()
		}

		cells := make([]int, len(matrix.Columns))
		for col, column := range matrix.Columns {
			order := entry.meals[column.Meal]
			if order == nil {
				continue
			}
			cells[col] = order.QuantityAt(column.ItemIndex)
			matrix.Totals[col] += cells[col]
		}

		matrix.Rows = append(matrix.Rows, dto.MatrixRow{
			UserID:   userID,
			UserName: name,
			Cells:    cells,
		})
	}

	return matrix, nil
}

// columnLabel returns the item name, or "{Meal} Item {n}" for unnamed items,
// n being the original 1-based position.
func columnLabel(meal models.MealType, index int, name string) string {
	if name != "" {
		return name
	}
	title := strings.ToUpper(string(meal)[:1]) + string(meal)[1:]
	return fmt.Sprintf("%s Item %d", title, index+1)
}
