package tanggapan

import (
	"fmt"
	"time"

	"ppid-backend/db"
	keberatanstore "ppid-backend/lib/keberatan/store"
	"ppid-backend/lib/mailer"
	"ppid-backend/lib/notification"
	pemohonstore "ppid-backend/lib/pemohon/store"
	permohonanstore "ppid-backend/lib/permohonan/store"
	tanggapanstore "ppid-backend/lib/tanggapan/store"
	connectionhub "ppid-backend/lib/ws/hub/connection-hub"
	"ppid-backend/models"
	tanggapanapimodels "ppid-backend/models/api/tanggapan"
	dbmodels "ppid-backend/models/db"
	wsmodels "ppid-backend/models/ws"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	AppendToPermohonan(actorID string, actorRole models.UserRole, actorName, permohonanID string, data tanggapanapimodels.NewTanggapanData) (id string, err error)
	AppendToKeberatan(actorID string, actorRole models.UserRole, actorName, keberatanID string, data tanggapanapimodels.NewTanggapanData) (id string, err error)
	ListByPermohonan(actorID string, actorRole models.UserRole, permohonanID string) (list []tanggapanapimodels.TanggapanView, err error)
	ListByKeberatan(actorID string, actorRole models.UserRole, keberatanID string) (list []tanggapanapimodels.TanggapanView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:           tanggapanstore.NewInstance(db.DB),
		permohonanStore: permohonanstore.NewInstance(db.DB),
		keberatanStore:  keberatanstore.NewInstance(db.DB),
		pemohonStore:    pemohonstore.NewInstance(db.DB),
	}
}

type impl struct {
	store           tanggapanstore.Provider
	permohonanStore permohonanstore.Provider
	keberatanStore  keberatanstore.Provider
	pemohonStore    pemohonstore.Provider
}

func (i impl) AppendToPermohonan(actorID string, actorRole models.UserRole, actorName, permohonanID string, data tanggapanapimodels.NewTanggapanData) (id string, err error) {
	rec, err := i.permohonanStore.GetByID(permohonanID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.Wrap(models.ErrNotFound, "permohonan")
	}
	if err = checkAppendScope(actorID, actorRole, rec.PemohonID, rec.AssignedOfficerID); err != nil {
		return "", err
	}
	tanggapan := dbmodels.Tanggapan{
		PermohonanID: &permohonanID,
		AuthorRole:   actorRole,
		AuthorName:   actorName,
		Isi:          data.Isi,
		Attachments:  data.Attachments,
	}
	if err = tanggapan.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Create(tanggapan)
	if err != nil {
		return "", err
	}
	log.
		WithField("permohonan_id", permohonanID).
		WithField("tanggapan_id", id).
		Info("tanggapan ditambahkan")
	i.notifyPermohonan(actorRole, rec)
	return id, nil
}

// AppendToKeberatan menambahkan tanggapan. Tanggapan pertama petugas
// pada keberatan berstatus Diajukan/Diteruskan sekaligus memindahkan
// status ke Ditanggapi, atomik dalam satu transaksi.
func (i impl) AppendToKeberatan(actorID string, actorRole models.UserRole, actorName, keberatanID string, data tanggapanapimodels.NewTanggapanData) (id string, err error) {
	rec, err := i.keberatanStore.GetByID(keberatanID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.Wrap(models.ErrNotFound, "keberatan")
	}
	if err = checkAppendScope(actorID, actorRole, rec.PemohonID, rec.AssignedOfficerID); err != nil {
		return "", err
	}
	tanggapan := dbmodels.Tanggapan{
		KeberatanID: &keberatanID,
		AuthorRole:  actorRole,
		AuthorName:  actorName,
		Isi:         data.Isi,
		Attachments: data.Attachments,
	}
	if err = tanggapan.Validate(); err != nil {
		return "", err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		id, err = tanggapanstore.NewInstance(tx).Create(tanggapan)
		if err != nil {
			return err
		}
		if actorRole.IsOfficer() && rec.Status.NeedResponseTransition() {
			store := keberatanstore.NewInstance(tx)
			updMap := map[string]interface{}{
				"status": models.KeberatanStatusDitanggapi,
			}
			rowsAffected, err := store.UpdateWithStatusCheck(keberatanID, rec.Status, updMap)
			if err != nil {
				return err
			}
			if rowsAffected == 0 {
				return errors.Wrap(models.ErrConcurrentModification, "status keberatan berubah oleh proses lain")
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("keberatan_id", keberatanID).
		WithField("tanggapan_id", id).
		Info("tanggapan ditambahkan")
	i.notifyKeberatan(actorRole, rec)
	return id, nil
}

func (i impl) ListByPermohonan(actorID string, actorRole models.UserRole, permohonanID string) (list []tanggapanapimodels.TanggapanView, err error) {
	rec, err := i.permohonanStore.GetByID(permohonanID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "permohonan")
	}
	if err = checkAppendScope(actorID, actorRole, rec.PemohonID, rec.AssignedOfficerID); err != nil {
		return nil, err
	}
	recs, err := i.store.ListByPermohonan(permohonanID)
	if err != nil {
		return nil, err
	}
	return convertList(recs), nil
}

func (i impl) ListByKeberatan(actorID string, actorRole models.UserRole, keberatanID string) (list []tanggapanapimodels.TanggapanView, err error) {
	rec, err := i.keberatanStore.GetByID(keberatanID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "keberatan")
	}
	if err = checkAppendScope(actorID, actorRole, rec.PemohonID, rec.AssignedOfficerID); err != nil {
		return nil, err
	}
	recs, err := i.store.ListByKeberatan(keberatanID)
	if err != nil {
		return nil, err
	}
	return convertList(recs), nil
}

// checkAppendScope: pemohon hanya pada entitas miliknya, pelaksana
// hanya pada entitas yang ditugaskan padanya.
func checkAppendScope(actorID string, actorRole models.UserRole, pemohonID string, assignedOfficerID *string) error {
	switch actorRole {
	case models.RolePemohon:
		if pemohonID != actorID {
			return errors.Wrap(models.ErrNotFound, "entitas")
		}
	case models.RolePpidPelaksana:
		if assignedOfficerID == nil || *assignedOfficerID != actorID {
			return errors.Wrap(models.ErrInvalidAssignee, "entitas tidak ditugaskan pada petugas ini")
		}
	}
	return nil
}

func convertList(recs []dbmodels.Tanggapan) []tanggapanapimodels.TanggapanView {
	list := make([]tanggapanapimodels.TanggapanView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, tanggapanapimodels.TanggapanConvert(rec))
	}
	return list
}

// notifyPermohonan mengirim sinyal ke lawan bicara: pemohon menulis ->
// push jumlah belum dibaca ke petugas; petugas menulis -> email dan
// push ke pemohon.
func (i impl) notifyPermohonan(actorRole models.UserRole, rec *dbmodels.Permohonan) {
	if actorRole == models.RolePemohon {
		if rec.AssignedOfficerID != nil {
			i.pushUnreadCount(*rec.AssignedOfficerID)
		}
		return
	}
	i.pushNewResponse(rec.PemohonID)
	if rec.Pemohon != nil && mailer.Instance != nil {
		err := mailer.Instance.SendNewTanggapan(rec.Pemohon.Email, rec.Pemohon.Nama, "permohonan informasi")
		if err != nil {
			log.WithError(err).Warn("gagal mengirim email tanggapan baru")
		}
	}
}

func (i impl) notifyKeberatan(actorRole models.UserRole, rec *dbmodels.KeberatanExt) {
	if actorRole == models.RolePemohon {
		if rec.AssignedOfficerID != nil {
			i.pushUnreadCount(*rec.AssignedOfficerID)
		}
		return
	}
	i.pushNewResponse(rec.PemohonID)
	if mailer.Instance != nil {
		pemohon, err := i.pemohonStore.GetByID(rec.PemohonID)
		if err == nil && pemohon != nil {
			err = mailer.Instance.SendNewTanggapan(pemohon.Email, pemohon.Nama, "keberatan")
			if err != nil {
				log.WithError(err).Warn("gagal mengirim email tanggapan baru")
			}
		}
	}
}

func (i impl) pushUnreadCount(officerID string) {
	if connectionhub.Instance == nil || notification.Instance == nil {
		return
	}
	view, err := notification.Instance.UnreadCountFor(officerID)
	if err != nil {
		return
	}
	connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
		ToUserID: officerID,
		Time:     time.Now().Format("02.01.2006 15:04:05"),
		Code:     wsmodels.CodeUnreadCount,
		Msg:      fmt.Sprintf("%d", view.Total),
	})
}

func (i impl) pushNewResponse(pemohonID string) {
	if connectionhub.Instance == nil {
		return
	}
	connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
		ToUserID: pemohonID,
		Time:     time.Now().Format("02.01.2006 15:04:05"),
		Code:     wsmodels.CodeNewResponse,
		Msg:      "Ada tanggapan baru",
	})
}
