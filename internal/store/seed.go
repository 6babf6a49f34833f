package store

import (
	"github.com/akhilvb87/community-kitchen-app/internal/logger"
	"github.com/akhilvb87/community-kitchen-app/internal/models"
)

const (
	superAdminPhone  = "112233"
	coordinatorPhone = "1122cc"
	testMemberPhone  = "999"
)

// Seed creates the default accounts when missing: the super admin, a
// coordinator and a test member. A user already holding the super-admin phone
// is promoted to super_admin instead of duplicated.
func Seed(s Store, log logger.Logger) error {
	return s.Update(func(d *Document) error {
		if u := findByPhone(d, superAdminPhone); u != nil {
			if u.Role != models.RoleSuperAdmin {
				u.Role = models.RoleSuperAdmin
				log.Info("promoted existing user to super admin", "user_id", u.ID)
			}
		} else {
			d.Users = append(d.Users, models.User{
				ID:     d.NextUserID(),
				Name:   "Super Admin",
				Phones: []string{superAdminPhone},
				Role:   models.RoleSuperAdmin,
			})
			log.Info("created default super admin", "phone", superAdminPhone)
		}

		if findByPhone(d, coordinatorPhone) == nil {
			d.Users = append(d.Users, models.User{
				ID:     d.NextUserID(),
				Name:   "Coordinator",
				Phones: []string{coordinatorPhone},
				Role:   models.RoleCoordinator,
			})
			log.Info("created default coordinator", "phone", coordinatorPhone)
		}

		if findByPhone(d, testMemberPhone) == nil {
			d.Users = append(d.Users, models.User{
				ID:     d.NextUserID(),
				Name:   "Test User",
				Phones: []string{testMemberPhone},
				Role:   models.RoleMember,
			})
			log.Info("created default test user", "phone", testMemberPhone)
		}

		return nil
	})
}

func findByPhone(d *Document, phone string) *models.User {
	for i := range d.Users {
		if d.Users[i].HasPhone(phone) {
			return &d.Users[i]
		}
	}
	return nil
}
