package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akhilvb87/community-kitchen-app/internal/models"
)

func TestUpsert_OnePerUserAndMenu(t *testing.T) {
	env := setupReportTestEnv(t)

	menu, err := env.menus.Publish("2024-01-10", models.MealLunch, []any{"Rice", "Dal", "Curd"})
	require.NoError(t, err)
	u := env.mustUser(t, "Orderer", "50")

	first, err := env.orders.Upsert(u.ID, menu.ID, map[string]any{"0": 1})
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusOrdered, first.Status)

	// Resubmission replaces quantities and keeps the identifier.
	second, err := env.orders.Upsert(u.ID, menu.ID, map[string]any{"1": 2})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 0, second.QuantityAt(0))
	require.Equal(t, 2, second.QuantityAt(1))

	orders, err := env.orders.List()
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestUpsert_UnknownReferences(t *testing.T) {
	env := setupReportTestEnv(t)

	menu, err := env.menus.Publish("2024-01-11", models.MealDinner, []any{"A", "B", "C"})
	require.NoError(t, err)
	u := env.mustUser(t, "Known", "51")

	_, err = env.orders.Upsert(42, menu.ID, map[string]any{"0": 1})
	require.ErrorIs(t, err, ErrUserNotFound)
	_, err = env.orders.Upsert(u.ID, 42, map[string]any{"0": 1})
	require.ErrorIs(t, err, ErrMenuNotFound)
	_, err = env.orders.Upsert(u.ID, menu.ID, nil)
	require.ErrorIs(t, err, ErrMissingOrderFields)
}

func TestUpdateCell_Idempotent(t *testing.T) {
	env := setupReportTestEnv(t)

	menu, err := env.menus.Publish("2024-01-12", models.MealBreakfast, []any{"Idli", "Dosa", "Vada"})
	require.NoError(t, err)
	u := env.mustUser(t, "Repeat", "52")

	_, err = env.orders.UpdateCell("2024-01-12", u.ID, models.MealBreakfast, 1, 3)
	require.NoError(t, err)
	order, err := env.orders.UpdateCell("2024-01-12", u.ID, models.MealBreakfast, 1, 3)
	require.NoError(t, err)

	// Converges to 3 at the cell, not 6, and no duplicate order appears.
	require.Equal(t, 3, order.QuantityAt(1))
	orders, err := env.orders.List()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, menu.ID, orders[0].MenuID)

	matrix, err := env.reports.ConsolidatedMatrix("2024-01-12", MatrixWidthSuperAdmin)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 0}, matrix.Totals)
}

func TestUpdateCell_PreservesOtherIndices(t *testing.T) {
	env := setupReportTestEnv(t)

	menu, err := env.menus.Publish("2024-01-13", models.MealLunch, []any{"Rice", "Dal", "Curd"})
	require.NoError(t, err)
	u := env.mustUser(t, "Partial", "53")

	_, err = env.orders.Upsert(u.ID, menu.ID, map[string]any{"0": 2, "2": 5})
	require.NoError(t, err)

	order, err := env.orders.UpdateCell("2024-01-13", u.ID, models.MealLunch, 1, "4")
	require.NoError(t, err)
	require.Equal(t, 2, order.QuantityAt(0))
	require.Equal(t, 4, order.QuantityAt(1))
	require.Equal(t, 5, order.QuantityAt(2))
}

func TestUpdateCell_MissingMenuSurfacesError(t *testing.T) {
	env := setupReportTestEnv(t)

	u := env.mustUser(t, "Early", "54")
	_, err := env.orders.UpdateCell("2024-01-14", u.ID, models.MealDinner, 0, 1)
	require.ErrorIs(t, err, ErrMenuNotFound)
}

func TestUpdateCell_CoercesQuantity(t *testing.T) {
	env := setupReportTestEnv(t)

	_, err := env.menus.Publish("2024-01-15", models.MealDinner, []any{"A", "B", "C"})
	require.NoError(t, err)
	u := env.mustUser(t, "Typo", "55")

	order, err := env.orders.UpdateCell("2024-01-15", u.ID, models.MealDinner, 0, "oops")
	require.NoError(t, err)
	require.Equal(t, 0, order.QuantityAt(0))

	order, err = env.orders.UpdateCell("2024-01-15", u.ID, models.MealDinner, 0, -2)
	require.NoError(t, err)
	require.Equal(t, 0, order.QuantityAt(0))
}

func TestStatsByDate_SumsPerItemName(t *testing.T) {
	env := setupReportTestEnv(t)

	menu, err := env.menus.Publish("2024-01-16", models.MealBreakfast, []any{"Idli", "Dosa", "Vada"})
	require.NoError(t, err)
	u1 := env.mustUser(t, "S1", "56")
	u2 := env.mustUser(t, "S2", "57")

	_, err = env.orders.Upsert(u1.ID, menu.ID, map[string]any{"0": 2, "1": 1})
	require.NoError(t, err)
	_, err = env.orders.Upsert(u2.ID, menu.ID, map[string]any{"0": 3})
	require.NoError(t, err)

	stats, err := env.orders.StatsByDate("2024-01-16")
	require.NoError(t, err)
	require.Equal(t, 5, stats.Breakfast["Idli"])
	require.Equal(t, 1, stats.Breakfast["Dosa"])
	require.Equal(t, 0, stats.Breakfast["Vada"])
	require.Empty(t, stats.Lunch)
	require.Empty(t, stats.Dinner)
}

func TestStatsByDate_HonorsLegacyNameKeys(t *testing.T) {
	env := setupReportTestEnv(t)

	menu, err := env.menus.Publish("2024-01-18", models.MealBreakfast, []any{"Idli", "Dosa", "Vada"})
	require.NoError(t, err)
	u := env.mustUser(t, "Old Client", "59")

	// Old documents keyed quantities by item name instead of index; both key
	// styles may appear in one order.
	_, err = env.orders.Upsert(u.ID, menu.ID, map[string]any{"Idli": 2, "1": 1})
	require.NoError(t, err)

	stats, err := env.orders.StatsByDate("2024-01-18")
	require.NoError(t, err)
	require.Equal(t, 2, stats.Breakfast["Idli"])
	require.Equal(t, 1, stats.Breakfast["Dosa"])
	require.Equal(t, 0, stats.Breakfast["Vada"])

	// A name key that matches no menu item is ignored rather than summed.
	_, err = env.orders.Upsert(u.ID, menu.ID, map[string]any{"Poori": 5})
	require.NoError(t, err)
	stats, err = env.orders.StatsByDate("2024-01-18")
	require.NoError(t, err)
	require.Equal(t, 0, stats.Breakfast["Idli"])
	require.NotContains(t, stats.Breakfast, "Poori")
}

func TestDetailsByDate_GroupsByUser(t *testing.T) {
	env := setupReportTestEnv(t)

	breakfast, err := env.menus.Publish("2024-01-17", models.MealBreakfast, []any{"Idli", "Dosa", "Vada"})
	require.NoError(t, err)
	lunch, err := env.menus.Publish("2024-01-17", models.MealLunch, []any{"Rice", "Dal", "Curd"})
	require.NoError(t, err)

	u := env.mustUser(t, "Both Meals", "58")
	_, err = env.orders.Upsert(u.ID, breakfast.ID, map[string]any{"0": 1})
	require.NoError(t, err)
	_, err = env.orders.Upsert(u.ID, lunch.ID, map[string]any{"2": 2})
	require.NoError(t, err)

	details, err := env.orders.DetailsByDate("2024-01-17")
	require.NoError(t, err)

	require.Len(t, details.Menus, 2)
	require.Equal(t, models.MealBreakfast, details.Menus[breakfast.ID].MealType)

	require.Len(t, details.UserOrders, 1)
	entry := details.UserOrders[0]
	require.Equal(t, u.ID, entry.UserID)
	require.Equal(t, "Both Meals", entry.UserName)
	require.Contains(t, entry.Orders, models.MealBreakfast)
	require.Contains(t, entry.Orders, models.MealLunch)
	require.Len(t, entry.Orders[models.MealLunch].Items, 3)
}
