package tanggapanstore

import (
	dbmodels "ppid-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Tanggapan) (id string, err error)
	ListByPermohonan(permohonanID string) (list []dbmodels.Tanggapan, err error)
	ListByKeberatan(keberatanID string) (list []dbmodels.Tanggapan, err error)
	GetLast(permohonanID, keberatanID *string) (rec *dbmodels.Tanggapan, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Tanggapan) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByPermohonan(permohonanID string) (list []dbmodels.Tanggapan, err error) {
	list = []dbmodels.Tanggapan{}
	err = i.db.
		Model(dbmodels.Tanggapan{}).
		Where("permohonan_id = ?", permohonanID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByKeberatan(keberatanID string) (list []dbmodels.Tanggapan, err error) {
	list = []dbmodels.Tanggapan{}
	err = i.db.
		Model(dbmodels.Tanggapan{}).
		Where("keberatan_id = ?", keberatanID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetLast(permohonanID, keberatanID *string) (*dbmodels.Tanggapan, error) {
	rec := dbmodels.Tanggapan{}
	tx := i.db.
		Model(dbmodels.Tanggapan{})
	if permohonanID != nil {
		tx.Where("permohonan_id = ?", *permohonanID)
	}
	if keberatanID != nil {
		tx.Where("keberatan_id = ?", *keberatanID)
	}
	err := tx.Order("created_at desc").First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
