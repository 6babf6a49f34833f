package dto

import (
	"github.com/akhilvb87/community-kitchen-app/internal/models"
)

// MatrixColumn is one visible column of the consolidated matrix. ItemIndex is
// the item's original position in the menu's items sequence, which is also the
// join key into stored order quantities.
type MatrixColumn struct {
	Meal      models.MealType `json:"meal"`
	ItemIndex int             `json:"item_index"`
	Label     string          `json:"label"`
}

// MatrixGroup describes how many columns a meal spans in the header row.
type MatrixGroup struct {
	Meal models.MealType `json:"meal"`
	Span int             `json:"span"`
}

// MatrixRow is one user's quantities in column order.
type MatrixRow struct {
	UserID   int    `json:"user_id"`
	UserName string `json:"user_name"`
	Cells    []int  `json:"cells"`
}

// ConsolidatedMatrix is the per-date users × enabled-items quantity table.
// Zero columns and zero rows mean no menus exist for the date; callers render
// an explicit "no orders yet" state instead of an empty table body.
type ConsolidatedMatrix struct {
	Date    string         `json:"date"`
	Columns []MatrixColumn `json:"columns"`
	Groups  []MatrixGroup  `json:"groups"`
	Rows    []MatrixRow    `json:"rows"`
	Totals  []int          `json:"totals"`
}

// MealStats maps item name to summed quantity for one meal slot.
type MealStats map[string]int

// DateStats is the per-meal stats response for one date.
type DateStats struct {
	Breakfast MealStats `json:"breakfast"`
	Lunch     MealStats `json:"lunch"`
	Dinner    MealStats `json:"dinner"`
}

// MenuInfo is the per-menu summary embedded in the details response.
type MenuInfo struct {
	MealType models.MealType   `json:"meal_type"`
	Items    []models.MenuItem `json:"items"`
}

// MealOrder is one user's order for one meal, with the menu items it indexes.
type MealOrder struct {
	Quantities map[string]any    `json:"quantities"`
	Items      []models.MenuItem `json:"items"`
}

// UserOrders groups a user's per-meal orders for one date.
type UserOrders struct {
	UserID   int                            `json:"userId"`
	UserName string                         `json:"userName"`
	Orders   map[models.MealType]*MealOrder `json:"orders"`
}

// OrderDetails is the detailed per-date response used by the dashboards.
type OrderDetails struct {
	Menus      map[int]MenuInfo `json:"menus"`
	UserOrders []*UserOrders    `json:"userOrders"`
}
