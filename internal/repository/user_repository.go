package repository

import (
	"errors"

	"github.com/akhilvb87/community-kitchen-app/internal/models"
	"github.com/akhilvb87/community-kitchen-app/internal/store"
)

// ErrRecordNotFound is returned by Find* methods when no record matches.
var ErrRecordNotFound = errors.New("record not found")

// StoreUserRepository is a document-store implementation of UserRepository
type StoreUserRepository struct {
	store store.Store
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(s store.Store) UserRepository {
	return &StoreUserRepository{store: s}
}

// List retrieves all users
func (r *StoreUserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.store.View(func(d *store.Document) error {
		users = append(users, d.Users...)
		return nil
	})
	return users, err
}

// FindByID finds a user by ID
func (r *StoreUserRepository) FindByID(id int) (*models.User, error) {
	var user *models.User
	err := r.store.View(func(d *store.Document) error {
		for i := range d.Users {
			if d.Users[i].ID == id {
				u := d.Users[i]
				user = &u
				return nil
			}
		}
		return ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByPhone finds the user owning the given phone
func (r *StoreUserRepository) FindByPhone(phone string) (*models.User, error) {
	var user *models.User
	err := r.store.View(func(d *store.Document) error {
		for i := range d.Users {
			if d.Users[i].HasPhone(phone) {
				u := d.Users[i]
				user = &u
				return nil
			}
		}
		return ErrRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create creates a new user and assigns its ID
func (r *StoreUserRepository) Create(user *models.User) error {
	return r.store.Update(func(d *store.Document) error {
		user.ID = d.NextUserID()
		d.Users = append(d.Users, *user)
		return nil
	})
}

// Update replaces the stored user with the same ID
func (r *StoreUserRepository) Update(user *models.User) error {
	return r.store.Update(func(d *store.Document) error {
		for i := range d.Users {
			if d.Users[i].ID == user.ID {
				d.Users[i] = *user
				return nil
			}
		}
		return ErrRecordNotFound
	})
}

// Delete removes a user by ID
func (r *StoreUserRepository) Delete(id int) error {
	return r.store.Update(func(d *store.Document) error {
		for i := range d.Users {
			if d.Users[i].ID == id {
				d.Users = append(d.Users[:i], d.Users[i+1:]...)
				return nil
			}
		}
		return ErrRecordNotFound
	})
}
