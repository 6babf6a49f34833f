package models

type Role string

const (
	RoleMember      Role = "member"
	RoleCoordinator Role = "coordinator"
	RoleSuperAdmin  Role = "super_admin"
)

// ValidRole reports whether role is one of the three canonical roles.
// Legacy aliases ("admin", "user") are migrated at store load and must
// never reach validation.
func ValidRole(role Role) bool {
	switch role {
	case RoleMember, RoleCoordinator, RoleSuperAdmin:
		return true
	}
	return false
}

type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// Phones are alternate login keys; 1 to 3 entries, unique across all users.
	Phones []string `json:"phones"`
	// Phone is the legacy scalar field from old documents. The store folds it
	// into Phones on load and clears it.
	Phone string `json:"phone,omitempty"`
	Role  Role   `json:"role"`
}

// HasPhone reports whether phone is one of the user's login keys.
func (u *User) HasPhone(phone string) bool {
	for _, p := range u.Phones {
		if p == phone {
			return true
		}
	}
	return false
}

// DisplayName returns the name shown in reports, falling back to the first
// phone when the name is empty.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if len(u.Phones) > 0 {
		return u.Phones[0]
	}
	return ""
}
