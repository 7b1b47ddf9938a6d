package officer

import (
	"strings"

	"ppid-backend/db"
	officerstore "ppid-backend/lib/officer/store"
	authutils "ppid-backend/lib/utils/auth-utils"
	"ppid-backend/models"
	officerapimodels "ppid-backend/models/api/officer"
	dbmodels "ppid-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(actorRole models.UserRole, data officerapimodels.OfficerCreateData) (id string, err error)
	GetByID(id string) (*officerapimodels.OfficerView, error)
	List(filter officerapimodels.OfficerFilter) (list []officerapimodels.OfficerView, rowCount int64, err error)
	ListAssignable(filter officerapimodels.OfficerFilter) (list []officerapimodels.OfficerView, rowCount int64, err error)
	SetActive(actorRole models.UserRole, id string, isActive bool) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: officerstore.NewInstance(db.DB),
	}
}

type impl struct {
	store officerstore.Provider
}

func (i impl) Create(actorRole models.UserRole, data officerapimodels.OfficerCreateData) (id string, err error) {
	logger := log.WithField("email", data.Email)
	if !actorRole.CanManageOfficers() {
		return "", errors.Wrapf(models.ErrInvalidAssignee, "role %v tidak berwenang mengelola akun petugas", actorRole)
	}
	exist, err := i.store.ExistByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("gagal memeriksa akun petugas yang sudah ada")
		return "", err
	}
	if exist {
		return "", errors.New("akun petugas dengan email ini sudah ada")
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Officer{
		Nama:     data.Nama,
		Email:    strings.ToLower(data.Email),
		Password: hash,
		Role:     data.Role,
		IsActive: true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("gagal membuat akun petugas")
		return "", err
	}
	logger.WithField("officer_id", id).Info("akun petugas dibuat")
	return id, nil
}

func (i impl) GetByID(id string) (*officerapimodels.OfficerView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "akun petugas")
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) List(filter officerapimodels.OfficerFilter) (list []officerapimodels.OfficerView, rowCount int64, err error) {
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]officerapimodels.OfficerView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

// ListAssignable hanya mengembalikan petugas yang boleh ditunjuk
// sebagai penanggung jawab permohonan/keberatan.
func (i impl) ListAssignable(filter officerapimodels.OfficerFilter) (list []officerapimodels.OfficerView, rowCount int64, err error) {
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]officerapimodels.OfficerView, 0, len(recs))
	for _, rec := range recs {
		if rec.Role.CanBeAssignee() && rec.IsActive {
			list = append(list, rec.ToModel())
		}
	}
	return list, int64(len(list)), nil
}

func (i impl) SetActive(actorRole models.UserRole, id string, isActive bool) error {
	if !actorRole.CanManageOfficers() {
		return errors.Wrapf(models.ErrInvalidAssignee, "role %v tidak berwenang mengelola akun petugas", actorRole)
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "akun petugas")
	}
	err = i.store.Update(id, map[string]interface{}{"is_active": isActive})
	if err != nil {
		return err
	}
	log.
		WithField("officer_id", id).
		WithField("is_active", isActive).
		Info("status aktif akun petugas diubah")
	return nil
}
