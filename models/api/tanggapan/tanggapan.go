package tanggapanapimodels

import (
	"time"

	"ppid-backend/models"
	dbmodels "ppid-backend/models/db"

	"github.com/pkg/errors"
)

type NewTanggapanData struct {
	Isi         string   `json:"isi"`
	Attachments []string `json:"attachments"` // id berkas hasil unggah
}

func (r NewTanggapanData) Validate() error {
	if r.Isi == "" {
		return errors.New("isi tanggapan tidak diisi")
	}
	return nil
}

type TanggapanView struct {
	ID           string          `json:"id"`
	CreationDate time.Time       `json:"creation_date"`
	AuthorRole   models.UserRole `json:"author_role"`
	AuthorName   string          `json:"author_name"`
	Isi          string          `json:"isi"`
	Attachments  []string        `json:"attachments,omitempty"`
}

func TanggapanConvert(rec dbmodels.Tanggapan) TanggapanView {
	return TanggapanView{
		ID:           rec.ID,
		CreationDate: rec.CreatedAt,
		AuthorRole:   rec.AuthorRole,
		AuthorName:   rec.AuthorName,
		Isi:          rec.Isi,
		Attachments:  rec.Attachments,
	}
}
