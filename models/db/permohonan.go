package dbmodels

import (
	"ppid-backend/models"

	"github.com/pkg/errors"
)

type Permohonan struct {
	BaseModel
	NomorRegistrasi   string                  `gorm:"type:varchar(40);uniqueIndex"`
	PemohonID         string                  `gorm:"type:varchar(36);index"`
	Pemohon           *Pemohon                `gorm:"foreignKey:PemohonID"`
	Rincian           string                  // rincian informasi yang diminta
	Tujuan            string                  // tujuan penggunaan informasi
	CaraMemperoleh    string                  `gorm:"type:varchar(100)"` // cara memperoleh salinan informasi
	Status            models.PermohonanStatus `gorm:"type:varchar(30);index"`
	AssignedOfficerID *string                 `gorm:"type:varchar(36);index"`
	AssignedOfficer   *Officer                `gorm:"foreignKey:AssignedOfficerID"`
}

// CheckTransition memvalidasi transisi status beserta syarat petugas
// yang ditunjuk. Invariant: Diteruskan/Diproses wajib memiliki petugas,
// Diajukan wajib tanpa petugas.
func (p Permohonan) CheckTransition(newStatus models.PermohonanStatus, assigneeID *string) error {
	if !newStatus.IsValid() {
		return errors.Wrapf(models.ErrInvalidTransition, "status tidak dikenal: %v", newStatus)
	}
	if !p.Status.IsAllowChange(newStatus) {
		return errors.Wrapf(models.ErrInvalidTransition, "dari %v ke %v", p.Status, newStatus)
	}
	if newStatus.NeedAssignee() && assigneeID == nil {
		return errors.Wrapf(models.ErrInvalidTransition, "status %v membutuhkan petugas yang ditunjuk", newStatus)
	}
	return nil
}

func (p Permohonan) CurrentAssignee() *string {
	return p.AssignedOfficerID
}

type PermohonanFilter struct {
	PemohonID         string
	AssignedOfficerID string
	Status            models.PermohonanStatus
	Search            string
}
