package dbmodels

import (
	"ppid-backend/models"

	"github.com/pkg/errors"
)

// Keberatan hanya menyimpan referensi ke permohonan; identitas pemohon
// diturunkan lewat join saat dibaca, tidak disimpan ganda.
type Keberatan struct {
	BaseModel
	PermohonanID      string      `gorm:"type:varchar(36);index"`
	Permohonan        *Permohonan `gorm:"foreignKey:PermohonanID"`
	Alasan            string      // alasan pengajuan keberatan
	Status            models.KeberatanStatus `gorm:"type:varchar(30);index"`
	AssignedOfficerID *string     `gorm:"type:varchar(36);index"`
	AssignedOfficer   *Officer    `gorm:"foreignKey:AssignedOfficerID"`
}

func (k Keberatan) CheckTransition(newStatus models.KeberatanStatus, assigneeID *string) error {
	if !newStatus.IsValid() {
		return errors.Wrapf(models.ErrInvalidTransition, "status tidak dikenal: %v", newStatus)
	}
	if !k.Status.IsAllowChange(newStatus) {
		return errors.Wrapf(models.ErrInvalidTransition, "dari %v ke %v", k.Status, newStatus)
	}
	if newStatus.NeedAssignee() && assigneeID == nil {
		return errors.Wrapf(models.ErrInvalidTransition, "status %v membutuhkan petugas yang ditunjuk", newStatus)
	}
	return nil
}

// KeberatanExt membawa data pemohon hasil join untuk tampilan.
type KeberatanExt struct {
	Keberatan
	PemohonID   string
	PemohonNama string
}

type KeberatanFilter struct {
	PermohonanID      string
	PemohonID         string
	AssignedOfficerID string
	Status            models.KeberatanStatus
}
