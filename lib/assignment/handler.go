package assignment

import (
	"ppid-backend/db"
	keberatanstore "ppid-backend/lib/keberatan/store"
	"ppid-backend/lib/mailer"
	officerstore "ppid-backend/lib/officer/store"
	pemohonstore "ppid-backend/lib/pemohon/store"
	permohonanstore "ppid-backend/lib/permohonan/store"
	"ppid-backend/models"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Resolver penugasan: satu pintu untuk menunjuk petugas pada
// permohonan maupun keberatan.
type Provider interface {
	Assign(actorRole models.UserRole, entityType models.EntityType, entityID, officerID string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		officerStore: officerstore.NewInstance(db.DB),
		pemohonStore: pemohonstore.NewInstance(db.DB),
	}
}

type impl struct {
	officerStore officerstore.Provider
	pemohonStore pemohonstore.Provider
}

// Assign menunjuk petugas. Pada entitas berstatus Diajukan status ikut
// berpindah ke Diteruskan dalam satu pembaruan; pada entitas aktif lain
// hanya petugasnya yang berganti. Entitas terminal tidak dapat ditunjuk.
func (i impl) Assign(actorRole models.UserRole, entityType models.EntityType, entityID, officerID string) error {
	logger := log.
		WithField("entity_type", entityType).
		WithField("entity_id", entityID).
		WithField("officer_id", officerID)
	if !actorRole.CanAssign() {
		return errors.Wrapf(models.ErrInvalidAssignee, "role %v tidak berwenang meneruskan", actorRole)
	}
	officer, err := i.officerStore.GetByID(officerID)
	if err != nil {
		return err
	}
	if officer == nil {
		return errors.Wrap(models.ErrNotFound, "petugas")
	}
	if !officer.Role.CanBeAssignee() {
		return errors.Wrapf(models.ErrInvalidAssignee, "role %v tidak dapat ditunjuk sebagai petugas", officer.Role)
	}
	if !officer.IsActive {
		return errors.Wrap(models.ErrInvalidAssignee, "akun petugas tidak aktif")
	}

	notify := notifyData{}
	switch entityType {
	case models.EntityPermohonan:
		err = db.DB.Transaction(func(tx *gorm.DB) error {
			return i.assignPermohonan(tx, entityID, officerID, &notify)
		})
	case models.EntityKeberatan:
		err = db.DB.Transaction(func(tx *gorm.DB) error {
			return i.assignKeberatan(tx, entityID, officerID, &notify)
		})
	default:
		return errors.Errorf("jenis entitas tidak dikenal: %v", entityType)
	}
	if err != nil {
		return err
	}
	logger.Info("petugas ditunjuk")
	i.sendNotify(notify)
	return nil
}

type notifyData struct {
	email       string
	name        string
	entityLabel string
	newStatus   string
}

func (i impl) assignPermohonan(tx *gorm.DB, entityID, officerID string, notify *notifyData) error {
	store := permohonanstore.NewInstance(tx)
	rec, err := store.GetByID(entityID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "permohonan")
	}
	if rec.Status.IsTerminal() {
		return errors.Wrapf(models.ErrInvalidTransition, "permohonan sudah berstatus terminal %v", rec.Status)
	}
	updMap := map[string]interface{}{
		"assigned_officer_id": officerID,
	}
	if rec.Status == models.PermohonanStatusDiajukan {
		if err = rec.CheckTransition(models.PermohonanStatusDiteruskan, &officerID); err != nil {
			return err
		}
		updMap["status"] = models.PermohonanStatusDiteruskan
		if rec.Pemohon != nil {
			*notify = notifyData{
				email:       rec.Pemohon.Email,
				name:        rec.Pemohon.Nama,
				entityLabel: "permohonan informasi",
				newStatus:   models.PermohonanStatusDiteruskan.ToHuman(),
			}
		}
	}
	rowsAffected, err := store.UpdateWithStatusCheck(entityID, rec.Status, updMap)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return i.resolveZeroRows(tx, models.EntityPermohonan, entityID)
	}
	return nil
}

func (i impl) assignKeberatan(tx *gorm.DB, entityID, officerID string, notify *notifyData) error {
	store := keberatanstore.NewInstance(tx)
	rec, err := store.GetByID(entityID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "keberatan")
	}
	if rec.Status.IsTerminal() {
		return errors.Wrapf(models.ErrInvalidTransition, "keberatan sudah berstatus terminal %v", rec.Status)
	}
	updMap := map[string]interface{}{
		"assigned_officer_id": officerID,
	}
	if rec.Status == models.KeberatanStatusDiajukan {
		if err = rec.CheckTransition(models.KeberatanStatusDiteruskan, &officerID); err != nil {
			return err
		}
		updMap["status"] = models.KeberatanStatusDiteruskan
		pemohon, pErr := i.pemohonStore.GetByID(rec.PemohonID)
		if pErr == nil && pemohon != nil {
			*notify = notifyData{
				email:       pemohon.Email,
				name:        pemohon.Nama,
				entityLabel: "keberatan",
				newStatus:   models.KeberatanStatusDiteruskan.ToHuman(),
			}
		}
	}
	rowsAffected, err := store.UpdateWithStatusCheck(entityID, rec.Status, updMap)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return i.resolveZeroRows(tx, models.EntityKeberatan, entityID)
	}
	return nil
}

// resolveZeroRows membedakan kalah balapan dari data yang hilang ketika
// pembaruan berpagar status tidak mengubah baris apa pun.
func (i impl) resolveZeroRows(tx *gorm.DB, entityType models.EntityType, entityID string) error {
	switch entityType {
	case models.EntityPermohonan:
		rec, err := permohonanstore.NewInstance(tx).GetByID(entityID)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "permohonan")
		}
	case models.EntityKeberatan:
		rec, err := keberatanstore.NewInstance(tx).GetByID(entityID)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "keberatan")
		}
	}
	return errors.Wrap(models.ErrConcurrentModification, "status berubah oleh proses lain")
}

func (i impl) sendNotify(notify notifyData) {
	if notify.email == "" || mailer.Instance == nil {
		return
	}
	err := mailer.Instance.SendStatusChanged(notify.email, notify.name, notify.entityLabel, notify.newStatus)
	if err != nil {
		log.WithError(err).Warn("gagal mengirim email notifikasi penunjukan")
	}
}
