package permohonanstore

import (
	"time"

	"ppid-backend/models"
	permohonanapimodels "ppid-backend/models/api/permohonan"
	dbmodels "ppid-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"strings"
)

type Provider interface {
	Create(rec dbmodels.Permohonan) (id string, err error)
	GetByID(id string) (rec *dbmodels.Permohonan, err error)
	Update(id string, updMap map[string]interface{}) error
	// UpdateWithStatusCheck menulis updMap hanya bila status saat ini masih
	// expectedStatus; mengembalikan jumlah baris yang berubah sehingga
	// pemanggil dapat membedakan kalah balapan dari data hilang.
	UpdateWithStatusCheck(id string, expectedStatus models.PermohonanStatus, updMap map[string]interface{}) (rowsAffected int64, err error)
	List(filter dbmodels.PermohonanFilter, page permohonanapimodels.PermohonanListFilter) (list []dbmodels.Permohonan, err error)
	ListCount(filter dbmodels.PermohonanFilter, page permohonanapimodels.PermohonanListFilter) (count int64, err error)
	ListOverdue(createdBefore time.Time) (list []dbmodels.Permohonan, err error)
	ListAll() (list []dbmodels.Permohonan, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Permohonan) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Permohonan, error) {
	rec := dbmodels.Permohonan{}
	err := i.db.
		Model(&dbmodels.Permohonan{}).
		Where("id = ?", id).
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
		Model(&dbmodels.Permohonan{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.Wrap(models.ErrNotFound, "permohonan")
	}
	return nil
}

func (i impl) UpdateWithStatusCheck(id string, expectedStatus models.PermohonanStatus, updMap map[string]interface{}) (int64, error) {
	tx := i.db.
		Model(&dbmodels.Permohonan{}).
		Where("id = ?", id).
		Where("status = ?", expectedStatus).
		Updates(updMap)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) List(filter dbmodels.PermohonanFilter, page permohonanapimodels.PermohonanListFilter) (list []dbmodels.Permohonan, err error) {
	list = []dbmodels.Permohonan{}
	tx := i.db.
		Model(dbmodels.Permohonan{})
	i.addFilter(tx, filter)
	pageNum, limit := page.GetPage()
	tx.Limit(limit).Offset((pageNum - 1) * limit)
	err = tx.Order("created_at desc").Preload(clause.Associations).Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter dbmodels.PermohonanFilter, page permohonanapimodels.PermohonanListFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.Permohonan{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListOverdue: permohonan yang belum ditanggapi dan dibuat sebelum batas.
func (i impl) ListOverdue(createdBefore time.Time) (list []dbmodels.Permohonan, err error) {
	list = []dbmodels.Permohonan{}
	err = i.db.
		Model(dbmodels.Permohonan{}).
		Where("status in ?", []models.PermohonanStatus{models.PermohonanStatusDiajukan, models.PermohonanStatusDiteruskan}).
		Where("created_at < ?", createdBefore).
		Preload("AssignedOfficer").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAll() (list []dbmodels.Permohonan, err error) {
	list = []dbmodels.Permohonan{}
	err = i.db.
		Model(dbmodels.Permohonan{}).
		Order("created_at").
		Preload(clause.Associations).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.PermohonanFilter) {
	if filter.PemohonID != "" {
		tx.Where("pemohon_id = ?", filter.PemohonID)
	}
	if filter.AssignedOfficerID != "" {
		tx.Where("assigned_officer_id = ?", filter.AssignedOfficerID)
	}
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(rincian) like ? or LOWER(tujuan) like ?", searchValue, searchValue)
	}
}
