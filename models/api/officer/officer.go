package officerapimodels

import (
	"ppid-backend/models"
	apimodels "ppid-backend/models/api"

	"github.com/pkg/errors"
)

type OfficerView struct {
	ID       string          `json:"id"`
	Nama     string          `json:"nama"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
	RoleName string          `json:"role_name"`
	IsActive bool            `json:"is_active"`
}

type OfficerCreateData struct {
	Nama     string          `json:"nama"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

func (r OfficerCreateData) Validate() error {
	if r.Nama == "" {
		return errors.New("nama tidak diisi")
	}
	if r.Email == "" {
		return errors.New("email tidak diisi")
	}
	if len(r.Password) < 8 {
		return errors.New("password minimal 8 karakter")
	}
	if !r.Role.IsValidOfficerRole() {
		return errors.New("role petugas tidak dikenal")
	}
	return nil
}

type OfficerFilter struct {
	apimodels.Pagination
	Role   models.UserRole `json:"role"`
	Search string          `json:"search"`
}
