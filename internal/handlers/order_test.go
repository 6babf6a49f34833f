package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/akhilvb87/community-kitchen-app/internal/dto"
	"github.com/akhilvb87/community-kitchen-app/internal/logger"
	"github.com/akhilvb87/community-kitchen-app/internal/models"
	"github.com/akhilvb87/community-kitchen-app/internal/repository"
	"github.com/akhilvb87/community-kitchen-app/internal/services"
	"github.com/akhilvb87/community-kitchen-app/internal/store"
)

type orderTestEnv struct {
	router       *gin.Engine
	userService  *services.UserService
	menuService  *services.MenuService
	orderService *services.OrderService
}

func setupOrderTestEnv(t *testing.T) orderTestEnv {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "kitchen.json"), logger.Nop())
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(s)
	menuRepo := repository.NewMenuRepository(s)
	orderRepo := repository.NewOrderRepository(s)

	userService := services.NewUserService(userRepo)
	menuService := services.NewMenuService(menuRepo)
	orderService := services.NewOrderService(orderRepo, menuRepo, userRepo)
	reportService := services.NewReportService(menuRepo, orderRepo, userRepo)
	handler := NewOrderHandler(orderService, reportService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/orders", handler.List)
	r.POST("/api/orders", handler.Upsert)
	r.POST("/api/orders/cell", handler.UpdateCell)
	r.GET("/api/orders/stats", handler.Stats)
	r.GET("/api/orders/details", handler.Details)
	r.GET("/api/orders/matrix", handler.Matrix)

	return orderTestEnv{
		router:       r,
		userService:  userService,
		menuService:  menuService,
		orderService: orderService,
	}
}

func (env orderTestEnv) seedMenuAndUsers(t *testing.T) (*models.Menu, *models.User, *models.User) {
	t.Helper()

	menu, err := env.menuService.Publish("2024-01-01", models.MealBreakfast, []any{
		map[string]any{"name": "Idli", "enabled": true},
		map[string]any{"name": "Dosa", "enabled": true},
		map[string]any{"name": "Nil", "enabled": false},
		map[string]any{"name": "Nil", "enabled": false},
	})
	require.NoError(t, err)

	userA, err := env.userService.Create(services.CreateInput{Name: "A", Phone: "100"})
	require.NoError(t, err)
	userB, err := env.userService.Create(services.CreateInput{Name: "B", Phone: "200"})
	require.NoError(t, err)
	return menu, userA, userB
}

func TestOrderHandler_UpsertAndList(t *testing.T) {
	env := setupOrderTestEnv(t)
	menu, userA, _ := env.seedMenuAndUsers(t)

	w := doJSON(t, env.router, http.MethodPost, "/api/orders", map[string]any{
		"user_id":    userA.ID,
		"menu_id":    menu.ID,
		"quantities": map[string]any{"0": 2, "1": 1},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Equal(t, "ordered", order.Status)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	lw := httptest.NewRecorder()
	env.router.ServeHTTP(lw, req)
	require.Equal(t, http.StatusOK, lw.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(lw.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
}

func TestOrderHandler_UpsertMissingFields(t *testing.T) {
	env := setupOrderTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/api/orders", map[string]any{"user_id": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_CellUpdateIdempotent(t *testing.T) {
	env := setupOrderTestEnv(t)
	_, userA, _ := env.seedMenuAndUsers(t)

	payload := map[string]any{
		"user_id":    userA.ID,
		"date":       "2024-01-01",
		"meal_type":  "breakfast",
		"item_index": 0,
		"quantity":   3,
	}
	require.Equal(t, http.StatusOK, doJSON(t, env.router, http.MethodPost, "/api/orders/cell", payload).Code)
	require.Equal(t, http.StatusOK, doJSON(t, env.router, http.MethodPost, "/api/orders/cell", payload).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/matrix?date=2024-01-01", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var matrix dto.ConsolidatedMatrix
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matrix))
	require.Equal(t, []int{3, 0}, matrix.Totals)
}

func TestOrderHandler_CellUpdateMissingMenu(t *testing.T) {
	env := setupOrderTestEnv(t)
	_, userA, _ := env.seedMenuAndUsers(t)

	w := doJSON(t, env.router, http.MethodPost, "/api/orders/cell", map[string]any{
		"user_id":    userA.ID,
		"date":       "2024-01-01",
		"meal_type":  "dinner",
		"item_index": 0,
		"quantity":   1,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_MatrixScenario(t *testing.T) {
	env := setupOrderTestEnv(t)
	menu, userA, userB := env.seedMenuAndUsers(t)

	_, err := env.orderService.Upsert(userA.ID, menu.ID, map[string]any{"0": 2, "1": 1})
	require.NoError(t, err)
	_, err = env.orderService.Upsert(userB.ID, menu.ID, map[string]any{"0": 0, "1": 3})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/matrix?date=2024-01-01&width=4", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var matrix dto.ConsolidatedMatrix
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matrix))

	require.Len(t, matrix.Columns, 2)
	require.Equal(t, "Idli", matrix.Columns[0].Label)
	require.Equal(t, "Dosa", matrix.Columns[1].Label)
	require.Equal(t, []int{2, 1}, matrix.Rows[0].Cells)
	require.Equal(t, []int{0, 3}, matrix.Rows[1].Cells)
	require.Equal(t, []int{2, 4}, matrix.Totals)
	require.Equal(t, []dto.MatrixGroup{{Meal: models.MealBreakfast, Span: 2}}, matrix.Groups)
}

func TestOrderHandler_MatrixRejectsBadWidth(t *testing.T) {
	env := setupOrderTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/matrix?date=2024-01-01&width=5", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_StatsAndDetails(t *testing.T) {
	env := setupOrderTestEnv(t)
	menu, userA, _ := env.seedMenuAndUsers(t)

	_, err := env.orderService.Upsert(userA.ID, menu.ID, map[string]any{"0": 2, "1": 1})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/stats?date=2024-01-01", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stats dto.DateStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Equal(t, 2, stats.Breakfast["Idli"])
	require.Equal(t, 1, stats.Breakfast["Dosa"])

	req = httptest.NewRequest(http.MethodGet, "/api/orders/details?date=2024-01-01", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var details dto.OrderDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	require.Len(t, details.UserOrders, 1)
	require.Equal(t, "A", details.UserOrders[0].UserName)

	// Date is mandatory on both read models.
	req = httptest.NewRequest(http.MethodGet, "/api/orders/stats", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
