package pemohonstore

import (
	dbmodels "ppid-backend/models/db"
	pemohonapimodels "ppid-backend/models/api/pemohon"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"strings"
)

type Provider interface {
	Create(rec dbmodels.Pemohon) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Pemohon, err error)
	GetByEmail(email string) (rec *dbmodels.Pemohon, err error)
	ExistByEmail(email string) (bool, error)
	List(filter pemohonapimodels.PemohonFilter) (list []dbmodels.Pemohon, err error)
	ListCount(filter pemohonapimodels.PemohonFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Pemohon) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Pemohon{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("akun pemohon tidak ditemukan")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Pemohon, error) {
	rec := dbmodels.Pemohon{}
	err := i.db.
		Model(&dbmodels.Pemohon{}).
		Where("id = ?", id).
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

func (i impl) GetByEmail(email string) (*dbmodels.Pemohon, error) {
	rec := dbmodels.Pemohon{}
	err := i.db.
		Model(&dbmodels.Pemohon{}).
		Where("email = ?", strings.ToLower(email)).
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

func (i impl) ExistByEmail(email string) (bool, error) {
	var exists bool
	err := i.db.Model(&dbmodels.Pemohon{}).
		Select("count(*) > 0").
		Where("email = ?", strings.ToLower(email)).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) List(filter pemohonapimodels.PemohonFilter) (list []dbmodels.Pemohon, err error) {
	list = []dbmodels.Pemohon{}
	tx := i.db.
		Model(dbmodels.Pemohon{})
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	tx.Limit(limit).Offset((page - 1) * limit)
	err = tx.Order("created_at").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter pemohonapimodels.PemohonFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.Pemohon{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) addFilter(tx *gorm.DB, filter pemohonapimodels.PemohonFilter) {
	if filter.ApprovedOnly {
		tx.Where("approved = true")
	}
	if filter.PendingOnly {
		tx.Where("approved = false")
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(nama) like ? or LOWER(email) like ? or nik like ?", searchValue, searchValue, searchValue)
	}
}
