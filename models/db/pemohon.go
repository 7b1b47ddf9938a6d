package dbmodels

import (
	"ppid-backend/models"
	pemohonapimodels "ppid-backend/models/api/pemohon"
)

type Pemohon struct {
	BaseModel
	Nama     string `gorm:"type:varchar(255)"`
	Email    string `gorm:"type:varchar(255);uniqueIndex"`
	Nik      string `gorm:"type:varchar(16);index"`
	Telepon  string `gorm:"type:varchar(15)"`
	Alamat   string
	Password string `gorm:"type:varchar(128)"`
	Approved bool
	Verified bool
}

func (p Pemohon) ToModel() pemohonapimodels.PemohonView {
	return pemohonapimodels.PemohonView{
		ID:       p.ID,
		Nama:     p.Nama,
		Email:    p.Email,
		Nik:      p.Nik,
		Telepon:  p.Telepon,
		Alamat:   p.Alamat,
		Approved: p.Approved,
		Verified: p.Verified,
	}
}

func (p Pemohon) Role() models.UserRole {
	return models.RolePemohon
}
