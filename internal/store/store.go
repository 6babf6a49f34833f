package store

import (
	"github.com/akhilvb87/community-kitchen-app/internal/models"
)

// Document is the whole persisted state: four record collections, each a list
// of uniquely identified records. Every request works on a full snapshot.
type Document struct {
	Users    []models.User    `json:"users"`
	Menus    []models.Menu    `json:"menus"`
	Orders   []models.Order   `json:"orders"`
	Expenses []models.Expense `json:"expenses"`
}

// NewDocument returns an empty document with all collections initialized, the
// shape a fresh data file is seeded with.
func NewDocument() *Document {
	return &Document{
		Users:    []models.User{},
		Menus:    []models.Menu{},
		Orders:   []models.Order{},
		Expenses: []models.Expense{},
	}
}

// Store is the Record Store contract: callers read or mutate a document
// snapshot inside fn. Update persists the mutated document before returning;
// both calls serialize against each other.
type Store interface {
	View(fn func(d *Document) error) error
	Update(fn func(d *Document) error) error
}

// NextUserID returns the next user identifier (max existing + 1, from 1).
func (d *Document) NextUserID() int {
	max := 0
	for _, u := range d.Users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// NextMenuID returns the next menu identifier.
func (d *Document) NextMenuID() int {
	max := 0
	for _, m := range d.Menus {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

// NextOrderID returns the next order identifier.
func (d *Document) NextOrderID() int {
	max := 0
	for _, o := range d.Orders {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}

// NextExpenseID returns the next expense identifier.
func (d *Document) NextExpenseID() int {
	max := 0
	for _, e := range d.Expenses {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}
