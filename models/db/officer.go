package dbmodels

import (
	"ppid-backend/models"
	officerapimodels "ppid-backend/models/api/officer"
	"time"
)

type Officer struct {
	BaseModel
	Nama      string `gorm:"type:varchar(255)"`
	Email     string `gorm:"type:varchar(255);uniqueIndex"`
	Password  string `gorm:"type:varchar(128)"`
	Role      models.UserRole `gorm:"type:varchar(50)"`
	IsActive  bool
	LastLogin time.Time
}

func (o Officer) ToModel() officerapimodels.OfficerView {
	return officerapimodels.OfficerView{
		ID:       o.ID,
		Nama:     o.Nama,
		Email:    o.Email,
		Role:     o.Role,
		RoleName: o.Role.ToHuman(),
		IsActive: o.IsActive,
	}
}
