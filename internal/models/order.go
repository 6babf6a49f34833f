package models

import "github.com/akhilvb87/community-kitchen-app/internal/utils"

const OrderStatusOrdered = "ordered"

// Order holds one user's quantities for one menu. At most one order exists per
// (user_id, menu_id) pair; resubmission replaces Quantities.
//
// Quantities is keyed by the item's positional index in the menu's items
// sequence, encoded as a string ("0".."3"). Old documents may carry item names
// as keys and stringified numbers as values, so values stay loosely typed and
// readers go through QuantityAt.
type Order struct {
	ID         int            `json:"id"`
	UserID     int            `json:"user_id"`
	MenuID     int            `json:"menu_id"`
	Quantities map[string]any `json:"quantities"`
	Status     string         `json:"status"`
}

// QuantityAt returns the stored quantity at the given item index, degrading to
// 0 when the entry is absent, negative, or not parseable as an integer.
func (o *Order) QuantityAt(index int) int {
	if o.Quantities == nil {
		return 0
	}
	return utils.ParseQuantity(o.Quantities[utils.IndexKey(index)])
}
