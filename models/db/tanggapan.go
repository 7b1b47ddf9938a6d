package dbmodels

import (
	"ppid-backend/models"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// Tanggapan bersifat append-only: sekali dibuat tidak pernah diubah,
// hanya ditambahkan. Tepat satu dari PermohonanID/KeberatanID terisi.
type Tanggapan struct {
	BaseModel
	PermohonanID *string         `gorm:"type:varchar(36);index"`
	KeberatanID  *string         `gorm:"type:varchar(36);index"`
	AuthorRole   models.UserRole `gorm:"type:varchar(50)"`
	AuthorName   string          `gorm:"type:varchar(255)"`
	Isi          string
	Attachments  pq.StringArray `gorm:"type:text[]"` // id berkas di object storage
}

func (t Tanggapan) Validate() error {
	if (t.PermohonanID == nil) == (t.KeberatanID == nil) {
		return errors.New("tanggapan harus terkait tepat satu permohonan atau keberatan")
	}
	if t.Isi == "" {
		return errors.New("isi tanggapan tidak boleh kosong")
	}
	return nil
}
