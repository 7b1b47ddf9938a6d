package keberatanapimodels

import (
	"time"

	"ppid-backend/models"
	apimodels "ppid-backend/models/api"
	dbmodels "ppid-backend/models/db"

	"github.com/pkg/errors"
)

type KeberatanCreateData struct {
	PermohonanID string `json:"permohonan_id"`
	Alasan       string `json:"alasan"`
}

func (r KeberatanCreateData) Validate() error {
	if r.PermohonanID == "" {
		return errors.New("permohonan tidak dipilih")
	}
	if r.Alasan == "" {
		return errors.New("alasan keberatan tidak diisi")
	}
	return nil
}

type KeberatanView struct {
	ID              string                 `json:"id"`
	CreationDate    time.Time              `json:"creation_date"`
	Status          models.KeberatanStatus `json:"status"`
	StatusName      string                 `json:"status_name"`
	Alasan          string                 `json:"alasan"`
	PermohonanID    string                 `json:"permohonan_id"`
	PemohonID       string                 `json:"pemohon_id"`
	PemohonNama     string                 `json:"pemohon_nama"`
	AssignedOfficer *AssigneeView          `json:"assigned_officer,omitempty"`
}

type AssigneeView struct {
	ID       string `json:"id"`
	Nama     string `json:"nama"`
	RoleName string `json:"role_name"`
}

func KeberatanConvert(rec dbmodels.KeberatanExt) KeberatanView {
	view := KeberatanView{
		ID:           rec.ID,
		CreationDate: rec.CreatedAt,
		Status:       rec.Status,
		StatusName:   rec.Status.ToHuman(),
		Alasan:       rec.Alasan,
		PermohonanID: rec.PermohonanID,
		PemohonID:    rec.PemohonID,
		PemohonNama:  rec.PemohonNama,
	}
	if rec.AssignedOfficer != nil {
		view.AssignedOfficer = &AssigneeView{
			ID:       rec.AssignedOfficer.ID,
			Nama:     rec.AssignedOfficer.Nama,
			RoleName: rec.AssignedOfficer.Role.ToHuman(),
		}
	}
	return view
}

type CloseData struct {
	Note string `json:"note"`
}

type KeberatanListFilter struct {
	apimodels.Pagination
	Status models.KeberatanStatus `json:"status"`
}
