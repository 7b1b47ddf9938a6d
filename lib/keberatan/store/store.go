package keberatanstore

import (
	"ppid-backend/models"
	keberatanapimodels "ppid-backend/models/api/keberatan"
	dbmodels "ppid-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Keberatan) (id string, err error)
	// GetByID memuat identitas pemohon lewat join ke permohonan; keberatan
	// tidak menyimpan referensi pemohon sendiri.
	GetByID(id string) (rec *dbmodels.KeberatanExt, err error)
	Update(id string, updMap map[string]interface{}) error
	UpdateWithStatusCheck(id string, expectedStatus models.KeberatanStatus, updMap map[string]interface{}) (rowsAffected int64, err error)
	ExistByPermohonanID(permohonanID string) (bool, error)
	List(filter dbmodels.KeberatanFilter, page keberatanapimodels.KeberatanListFilter) (list []dbmodels.KeberatanExt, err error)
	ListCount(filter dbmodels.KeberatanFilter, page keberatanapimodels.KeberatanListFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Keberatan) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.KeberatanExt, error) {
	rec := dbmodels.KeberatanExt{}
	err := i.db.
		Select("keberatans.*, p.pemohon_id, pm.nama as pemohon_nama").
		Model(&dbmodels.Keberatan{}).
		Joins("left join permohonans as p on keberatans.permohonan_id = p.id").
		Joins("left join pemohons as pm on p.pemohon_id = pm.id").
		Where("keberatans.id = ?", id).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Keberatan{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.Wrap(models.ErrNotFound, "keberatan")
	}
	return nil
}

func (i impl) UpdateWithStatusCheck(id string, expectedStatus models.KeberatanStatus, updMap map[string]interface{}) (int64, error) {
	tx := i.db.
		Model(&dbmodels.Keberatan{}).
		Where("id = ?", id).
		Where("status = ?", expectedStatus).
		Updates(updMap)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) ExistByPermohonanID(permohonanID string) (bool, error) {
	var exists bool
	err := i.db.Model(&dbmodels.Keberatan{}).
		Select("count(*) > 0").
		Where("permohonan_id = ?", permohonanID).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) List(filter dbmodels.KeberatanFilter, page keberatanapimodels.KeberatanListFilter) (list []dbmodels.KeberatanExt, err error) {
	list = []dbmodels.KeberatanExt{}
	tx := i.db.
		Select("keberatans.*, p.pemohon_id, pm.nama as pemohon_nama").
		Model(&dbmodels.Keberatan{}).
		Joins("left join permohonans as p on keberatans.permohonan_id = p.id").
		Joins("left join pemohons as pm on p.pemohon_id = pm.id")
	i.addFilter(tx, filter)
	pageNum, limit := page.GetPage()
	tx.Limit(limit).Offset((pageNum - 1) * limit)
	err = tx.Order("keberatans.created_at desc").Preload(clause.Associations).Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter dbmodels.KeberatanFilter, page keberatanapimodels.KeberatanListFilter) (count int64, err error) {
	tx := i.db.
		Model(&dbmodels.Keberatan{}).
		Joins("left join permohonans as p on keberatans.permohonan_id = p.id")
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.KeberatanFilter) {
	if filter.PermohonanID != "" {
		tx.Where("keberatans.permohonan_id = ?", filter.PermohonanID)
	}
	if filter.PemohonID != "" {
		tx.Where("p.pemohon_id = ?", filter.PemohonID)
	}
	if filter.AssignedOfficerID != "" {
		tx.Where("keberatans.assigned_officer_id = ?", filter.AssignedOfficerID)
	}
	if filter.Status != "" {
		tx.Where("keberatans.status = ?", filter.Status)
	}
}
