package keberatan

import (
	"time"

	"ppid-backend/db"
	"ppid-backend/lib/eligibility"
	keberatanstore "ppid-backend/lib/keberatan/store"
	"ppid-backend/lib/mailer"
	pemohonstore "ppid-backend/lib/pemohon/store"
	permohonanstore "ppid-backend/lib/permohonan/store"
	tanggapanstore "ppid-backend/lib/tanggapan/store"
	"ppid-backend/models"
	keberatanapimodels "ppid-backend/models/api/keberatan"
	dbmodels "ppid-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(pemohonID string, data keberatanapimodels.KeberatanCreateData) (id string, err error)
	GetByID(actorID string, actorRole models.UserRole, id string) (*keberatanapimodels.KeberatanView, error)
	List(actorID string, actorRole models.UserRole, filter keberatanapimodels.KeberatanListFilter) (list []keberatanapimodels.KeberatanView, rowCount int64, err error)
	Close(actorID string, actorRole models.UserRole, id string, newStatus models.KeberatanStatus, note string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:           keberatanstore.NewInstance(db.DB),
		permohonanStore: permohonanstore.NewInstance(db.DB),
		pemohonStore:    pemohonstore.NewInstance(db.DB),
	}
}

type impl struct {
	store           keberatanstore.Provider
	permohonanStore permohonanstore.Provider
	pemohonStore    pemohonstore.Provider
}

// Create mengajukan keberatan atas permohonan milik pemohon. Syarat:
// jendela tanggapan menurut undang-undang sudah terlampaui dan belum
// ada keberatan lain untuk permohonan yang sama.
func (i impl) Create(pemohonID string, data keberatanapimodels.KeberatanCreateData) (id string, err error) {
	logger := log.
		WithField("pemohon_id", pemohonID).
		WithField("permohonan_id", data.PermohonanID)
	permohonan, err := i.permohonanStore.GetByID(data.PermohonanID)
	if err != nil {
		return "", err
	}
	if permohonan == nil || permohonan.PemohonID != pemohonID {
		return "", errors.Wrap(models.ErrNotFound, "permohonan")
	}
	result, err := eligibility.Instance.CanFileObjection(permohonan.CreatedAt, time.Now())
	if err != nil {
		return "", err
	}
	if !result.Eligible {
		return "", errors.Errorf("keberatan belum dapat diajukan, baru %d hari kerja berlalu", result.WorkingDays)
	}
	exist, err := i.store.ExistByPermohonanID(data.PermohonanID)
	if err != nil {
		return "", err
	}
	if exist {
		return "", errors.New("keberatan untuk permohonan ini sudah diajukan")
	}
	rec := dbmodels.Keberatan{
		PermohonanID: data.PermohonanID,
		Alasan:       data.Alasan,
		Status:       models.KeberatanStatusDiajukan,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("gagal menyimpan keberatan")
		return "", err
	}
	logger.WithField("keberatan_id", id).Info("keberatan diajukan")
	return id, nil
}

func (i impl) GetByID(actorID string, actorRole models.UserRole, id string) (*keberatanapimodels.KeberatanView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "keberatan")
	}
	if err = checkViewScope(actorID, actorRole, rec); err != nil {
		return nil, err
	}
	view := keberatanapimodels.KeberatanConvert(*rec)
	return &view, nil
}

func (i impl) List(actorID string, actorRole models.UserRole, filter keberatanapimodels.KeberatanListFilter) (list []keberatanapimodels.KeberatanView, rowCount int64, err error) {
	dbFilter := dbmodels.KeberatanFilter{
		Status: filter.Status,
	}
	switch {
	case actorRole == models.RolePemohon:
		dbFilter.PemohonID = actorID
	case actorRole == models.RolePpidPelaksana:
		dbFilter.AssignedOfficerID = actorID
	}
	recs, err := i.store.List(dbFilter, filter)
	if err != nil {
		return nil, 0, err
	}
	rowCount, err = i.store.ListCount(dbFilter, filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]keberatanapimodels.KeberatanView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, keberatanapimodels.KeberatanConvert(rec))
	}
	return list, rowCount, nil
}

// Close menutup keberatan (Selesai/Ditolak) dan mencatat pengumuman
// sistem di utas tanggapan dalam satu transaksi.
func (i impl) Close(actorID string, actorRole models.UserRole, id string, newStatus models.KeberatanStatus, note string) error {
	logger := log.
		WithField("keberatan_id", id).
		WithField("status_baru", newStatus)
	if !newStatus.IsTerminal() {
		return errors.Wrapf(models.ErrInvalidTransition, "status %v bukan status penutup", newStatus)
	}
	if !actorRole.CanClose() {
		return errors.Wrapf(models.ErrInvalidAssignee, "role %v tidak berwenang menutup", actorRole)
	}
	notify := notifyData{}
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := keberatanstore.NewInstance(tx)
		rec, err := store.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "keberatan")
		}
		if actorRole == models.RolePpidPelaksana {
			if rec.AssignedOfficerID == nil || *rec.AssignedOfficerID != actorID {
				return errors.Wrap(models.ErrInvalidAssignee, "keberatan tidak ditugaskan pada petugas ini")
			}
		}
		if err = rec.CheckTransition(newStatus, rec.AssignedOfficerID); err != nil {
			return err
		}
		updMap := map[string]interface{}{
			"status": newStatus,
		}
		rowsAffected, err := store.UpdateWithStatusCheck(id, rec.Status, updMap)
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return resolveZeroRows(store, id)
		}
		announcement := dbmodels.Tanggapan{
			KeberatanID: &id,
			AuthorRole:  actorRole,
			AuthorName:  models.SystemUser,
			Isi:         closeAnnouncement(newStatus, note),
		}
		_, err = tanggapanstore.NewInstance(tx).Create(announcement)
		if err != nil {
			return err
		}
		pemohon, pErr := i.pemohonStore.GetByID(rec.PemohonID)
		if pErr == nil && pemohon != nil {
			notify = notifyData{
				email:     pemohon.Email,
				name:      pemohon.Nama,
				newStatus: newStatus.ToHuman(),
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("keberatan ditutup")
	sendStatusNotify(notify)
	return nil
}

func checkViewScope(actorID string, actorRole models.UserRole, rec *dbmodels.KeberatanExt) error {
	switch actorRole {
	case models.RolePemohon:
		if rec.PemohonID != actorID {
			return errors.Wrap(models.ErrNotFound, "keberatan")
		}
	case models.RolePpidPelaksana:
		if rec.AssignedOfficerID == nil || *rec.AssignedOfficerID != actorID {
			return errors.Wrap(models.ErrNotFound, "keberatan")
		}
	}
	return nil
}

func resolveZeroRows(store keberatanstore.Provider, id string) error {
	rec, err := store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "keberatan")
	}
	return errors.Wrap(models.ErrConcurrentModification, "status berubah oleh proses lain")
}

func closeAnnouncement(newStatus models.KeberatanStatus, note string) string {
	msg := "Keberatan ditutup dengan status: " + newStatus.ToHuman()
	if note != "" {
		msg += ". " + note
	}
	return msg
}

type notifyData struct {
	email     string
	name      string
	newStatus string
}

func sendStatusNotify(notify notifyData) {
	if notify.email == "" || mailer.Instance == nil {
		return
	}
	err := mailer.Instance.SendStatusChanged(notify.email, notify.name, "keberatan", notify.newStatus)
	if err != nil {
		log.WithError(err).Warn("gagal mengirim email perubahan status")
	}
}
