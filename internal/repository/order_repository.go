package repository

import (
	"github.com/akhilvb87/community-kitchen-app/internal/models"
	"github.com/akhilvb87/community-kitchen-app/internal/store"
)

// StoreOrderRepository is a document-store implementation of OrderRepository
type StoreOrderRepository struct {
	store store.Store
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(s store.Store) OrderRepository {
	return &StoreOrderRepository{store: s}
}

// List retrieves all orders
func (r *StoreOrderRepository) List() ([]models.Order, error) {
	var orders []models.Order
	err := r.store.View(func(d *store.Document) error {
		orders = append(orders, d.Orders...)
		return nil
	})
	return orders, err
}

// FindByUserAndMenu finds the order for a (user_id, menu_id) pair
func (r *StoreOrderRepository) FindByUserAndMenu(userID, menuID int) (*models.Order, error) {
	var order *models.Order
	err := r.store.View(func(d *store.Document) error {
		for i := range d.Orders {
			if d.Orders[i].UserID == userID && d.Orders[i].MenuID == menuID {
				o := d.Orders[i]
				order = &o
				return nil
			}
		}
		return ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListByMenuIDs retrieves all orders referencing one of the given menus
func (r *StoreOrderRepository) ListByMenuIDs(menuIDs []int) ([]models.Order, error) {
	ids := make(map[int]bool, len(menuIDs))
	for _, id := range menuIDs {
		ids[id] = true
	}

	var orders []models.Order
	err := r.store.View(func(d *store.Document) error {
		for _, o := range d.Orders {
			if ids[o.MenuID] {
				orders = append(orders, o)
			}
		}
		return nil
	})
	return orders, err
}

// Upsert creates the order or replaces the existing (user_id, menu_id) one,
// in one locked read-modify-write so concurrent submissions cannot duplicate.
func (r *StoreOrderRepository) Upsert(order *models.Order) error {
	return r.store.Update(func(d *store.Document) error {
		for i := range d.Orders {
			if d.Orders[i].UserID == order.UserID && d.Orders[i].MenuID == order.MenuID {
				order.ID = d.Orders[i].ID
				d.Orders[i] = *order
				return nil
			}
		}
		order.ID = d.NextOrderID()
		d.Orders = append(d.Orders, *order)
		return nil
	})
}
