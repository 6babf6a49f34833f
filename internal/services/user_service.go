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
	ErrUserNotFound      = errors.New("user not found")
	ErrNameRequired      = errors.New("Name required for new user")
	ErrPhoneRequired     = errors.New("phone number required")
	ErrPhoneInUse        = errors.New("phone number already in use")
	ErrTooManyPhones     = errors.New("maximum 3 phone numbers allowed")
	ErrLastPhone         = errors.New("cannot remove last phone number")
	ErrInvalidRole       = errors.New("invalid role")
	ErrSuperAdminDelete  = errors.New("cannot delete super admin")
	ErrNameAndPhoneEmpty = errors.New("name and phone are required")
)

// UserService handles the user directory: identity, phone login keys and
// role transitions.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns all users.
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.List()
}

// Get retrieves a user by ID.
func (s *UserService) Get(id int) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateInput represents the required information to create a user directly.
type CreateInput struct {
	Name  string
	Phone string
	Role  models.Role
}

// Create adds a user with one phone. The role defaults to member; an explicit
// role must be canonical.
func (s *UserService) Create(input CreateInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || phone == "" {
		return nil, ErrNameAndPhoneEmpty
	}

	role := input.Role
	if role == "" {
		role = models.RoleMember
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	if err := s.ensurePhoneFree(phone, 0); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:   name,
		Phones: []string{phone},
		Role:   role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// LoginOrRegister returns the user owning phone, or registers a new member
// when the phone is unknown. Registration without a name fails with
// ErrNameRequired so the caller can re-prompt.
func (s *UserService) LoginOrRegister(phone, name string) (*models.User, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	user, err := s.userRepo.FindByPhone(phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up phone: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	user = &models.User{
		Name:   name,
		Phones: []string{phone},
		Role:   models.RoleMember,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// AddPhone appends an alternate login phone to the user.
func (s *UserService) AddPhone(id int, phone string) (*models.User, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if len(user.Phones) >= constants.MaxPhonesPerUser {
		return nil, ErrTooManyPhones
	}
	if err := s.ensurePhoneFree(phone, 0); err != nil {
		return nil, err
	}

	user.Phones = append(user.Phones, phone)
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// RemovePhone drops one of the user's phones. Removing the last remaining
// phone is refused so every user keeps at least one login key.
func (s *UserService) RemovePhone(id int, phone string) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if len(user.Phones) <= 1 {
		return nil, ErrLastPhone
	}

	phones := make([]string, 0, len(user.Phones))
	for _, p := range user.Phones {
		if p != phone {
			phones = append(phones, p)
		}
	}
	user.Phones = phones

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// ChangeRole sets the user's role to one of the canonical roles.
func (s *UserService) ChangeRole(id int, role models.Role) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete removes a user. Super admins cannot be deleted. Orders referencing
// the deleted user are left in place.
func (s *UserService) Delete(id int) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}

	if user.Role == models.RoleSuperAdmin {
		return ErrSuperAdminDelete
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ensurePhoneFree fails with ErrPhoneInUse when any user other than excludeID
// already owns phone.
func (s *UserService) ensurePhoneFree(phone string, excludeID int) error {
	owner, err := s.userRepo.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up phone: %w", err)
	}
	if owner.ID != excludeID {
		return ErrPhoneInUse
	}
	return nil
}
