package permohonanapimodels

import (
	"time"

	"ppid-backend/models"
	apimodels "ppid-backend/models/api"
	dbmodels "ppid-backend/models/db"

	"github.com/pkg/errors"
)

type PermohonanCreateData struct {
	Rincian        string `json:"rincian"`
	Tujuan         string `json:"tujuan"`
	CaraMemperoleh string `json:"cara_memperoleh"`
}

func (r PermohonanCreateData) Validate() error {
	if r.Rincian == "" {
		return errors.New("rincian informasi tidak diisi")
	}
	if r.Tujuan == "" {
		return errors.New("tujuan penggunaan informasi tidak diisi")
	}
	return nil
}

type PermohonanView struct {
	ID              string                  `json:"id"`
	NomorRegistrasi string                  `json:"nomor_registrasi"`
	CreationDate    time.Time               `json:"creation_date"`
	Status          models.PermohonanStatus `json:"status"`
	StatusName      string                  `json:"status_name"`
	Rincian         string                  `json:"rincian"`
	Tujuan          string                  `json:"tujuan"`
	CaraMemperoleh  string                  `json:"cara_memperoleh"`
	PemohonID       string                  `json:"pemohon_id"`
	PemohonNama     string                  `json:"pemohon_nama"`
	AssignedOfficer *AssigneeView           `json:"assigned_officer,omitempty"`
}

type AssigneeView struct {
	ID       string `json:"id"`
	Nama     string `json:"nama"`
	RoleName string `json:"role_name"`
}

func PermohonanConvert(rec dbmodels.Permohonan) PermohonanView {
	view := PermohonanView{
		ID:              rec.ID,
		NomorRegistrasi: rec.NomorRegistrasi,
		CreationDate:    rec.CreatedAt,
		Status:          rec.Status,
		StatusName:      rec.Status.ToHuman(),
		Rincian:         rec.Rincian,
		Tujuan:          rec.Tujuan,
		CaraMemperoleh:  rec.CaraMemperoleh,
		PemohonID:       rec.PemohonID,
	}
	if rec.Pemohon != nil {
		view.PemohonNama = rec.Pemohon.Nama
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

type PermohonanListFilter struct {
	apimodels.Pagination
	Status models.PermohonanStatus `json:"status"`
	Search string                  `json:"search"`
}

type AssignData struct {
	OfficerID string `json:"officer_id"`
}

func (r AssignData) Validate() error {
	if r.OfficerID == "" {
		return errors.New("petugas tidak dipilih")
	}
	return nil
}

type CloseData struct {
	Note string `json:"note"`
}

type EligibilityView struct {
	Eligible    bool `json:"eligible"`
	WorkingDays int  `json:"working_days"`
}
