package pemohon

import (
	"ppid-backend/db"
	"ppid-backend/lib/mailer"
	pemohonstore "ppid-backend/lib/pemohon/store"
	"ppid-backend/models"
	pemohonapimodels "ppid-backend/models/api/pemohon"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetByID(id string) (*pemohonapimodels.PemohonView, error)
	List(filter pemohonapimodels.PemohonFilter) (list []pemohonapimodels.PemohonView, rowCount int64, err error)
	Approve(actorRole models.UserRole, id string) error
	Reject(actorRole models.UserRole, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: pemohonstore.NewInstance(db.DB),
	}
}

type impl struct {
	store pemohonstore.Provider
}

func (i impl) GetByID(id string) (*pemohonapimodels.PemohonView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "akun pemohon")
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) List(filter pemohonapimodels.PemohonFilter) (list []pemohonapimodels.PemohonView, rowCount int64, err error) {
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]pemohonapimodels.PemohonView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

// Approve menyetujui akun pemohon sehingga dapat mengajukan permohonan.
func (i impl) Approve(actorRole models.UserRole, id string) error {
	if !actorRole.CanApprovePemohon() {
		return errors.Wrapf(models.ErrInvalidAssignee, "role %v tidak berwenang menyetujui akun", actorRole)
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "akun pemohon")
	}
	err = i.store.Update(id, map[string]interface{}{"approved": true})
	if err != nil {
		return err
	}
	log.WithField("pemohon_id", id).Info("akun pemohon disetujui")
	if mailer.Instance != nil {
		err = mailer.Instance.SendStatusChanged(rec.Email, rec.Nama, "akun", "Disetujui")
		if err != nil {
			log.WithError(err).Warn("gagal mengirim email persetujuan akun")
		}
	}
	return nil
}

func (i impl) Reject(actorRole models.UserRole, id string) error {
	if !actorRole.CanApprovePemohon() {
		return errors.Wrapf(models.ErrInvalidAssignee, "role %v tidak berwenang menolak akun", actorRole)
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "akun pemohon")
	}
	err = i.store.Update(id, map[string]interface{}{"approved": false})
	if err != nil {
		return err
	}
	log.WithField("pemohon_id", id).Info("persetujuan akun pemohon dicabut")
	return nil
}
