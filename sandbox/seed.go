package sandbox

import (
	"github.com/pkg/errors"

	"github.com/medhistory/medhistory/core/user"
)

// Seed fills the store with one demo account per role so a fresh sandbox is
// usable immediately. Credentials are printable on purpose.
func Seed(store *Store) error {
	demo := []user.NewUser{
		{Name: "Admin Demo", Email: "admin@medhistory.local", Role: user.RoleAdmin, Password: "S@ndb0x-Adm1n"},
		{Name: "Dra. Gregoria Casas", Email: "doctor@medhistory.local", Role: user.RoleDoctor, Password: "S@ndb0x-D0ct0r"},
		{Name: "Estudiante Demo", Email: "student@medhistory.local", Role: user.RoleStudent, Password: "S@ndb0x-Stud3nt"},
	}
	for _, nu := range demo {
		if _, err := store.CreateUser(nu); err != nil {
			return errors.Wrapf(err, "seeding %s", nu.Email)
		}
	}
	return nil
}
