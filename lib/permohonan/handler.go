package permohonan

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"ppid-backend/db"
	"ppid-backend/lib/eligibility"
	pdfexport "ppid-backend/lib/export/pdf"
	xlsexport "ppid-backend/lib/export/xls"
	"ppid-backend/lib/mailer"
	pemohonstore "ppid-backend/lib/pemohon/store"
	permohonanstore "ppid-backend/lib/permohonan/store"
	tanggapanstore "ppid-backend/lib/tanggapan/store"
	"ppid-backend/models"
	permohonanapimodels "ppid-backend/models/api/permohonan"
	dbmodels "ppid-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(pemohonID string, data permohonanapimodels.PermohonanCreateData) (id string, err error)
	GetByID(actorID string, actorRole models.UserRole, id string) (*permohonanapimodels.PermohonanView, error)
	List(actorID string, actorRole models.UserRole, filter permohonanapimodels.PermohonanListFilter) (list []permohonanapimodels.PermohonanView, rowCount int64, err error)
	Process(actorID string, actorRole models.UserRole, id string) error
	Close(actorID string, actorRole models.UserRole, id string, newStatus models.PermohonanStatus, note string) error
	CheckEligibility(pemohonID, id string) (*permohonanapimodels.EligibilityView, error)
	GetTandaBukti(actorID string, actorRole models.UserRole, id string) (pdfFile []byte, err error)
	ExportRegister(actorRole models.UserRole) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:        permohonanstore.NewInstance(db.DB),
		pemohonStore: pemohonstore.NewInstance(db.DB),
	}
}

type impl struct {
	store        permohonanstore.Provider
	pemohonStore pemohonstore.Provider
}

func (i impl) Create(pemohonID string, data permohonanapimodels.PermohonanCreateData) (id string, err error) {
	logger := log.WithField("pemohon_id", pemohonID)
	pemohon, err := i.pemohonStore.GetByID(pemohonID)
	if err != nil {
		return "", err
	}
	if pemohon == nil {
		return "", errors.Wrap(models.ErrNotFound, "akun pemohon")
	}
	if !pemohon.Verified {
		return "", errors.New("email pemohon belum diverifikasi")
	}
	if !pemohon.Approved {
		return "", errors.New("akun pemohon belum disetujui")
	}
	rec := dbmodels.Permohonan{
		NomorRegistrasi: newNomorRegistrasi(),
		PemohonID:       pemohonID,
		Rincian:         data.Rincian,
		Tujuan:          data.Tujuan,
		CaraMemperoleh:  data.CaraMemperoleh,
		Status:          models.PermohonanStatusDiajukan,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("gagal menyimpan permohonan")
		return "", err
	}
	logger.WithField("permohonan_id", id).Info("permohonan diajukan")
	return id, nil
}

// nomor registrasi dicantumkan pada tanda bukti dan register
func newNomorRegistrasi() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("PPID-%s-%s", time.Now().Format("20060102"), suffix)
}

func (i impl) GetByID(actorID string, actorRole models.UserRole, id string) (*permohonanapimodels.PermohonanView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "permohonan")
	}
	if err = checkViewScope(actorID, actorRole, rec); err != nil {
		return nil, err
	}
	view := permohonanapimodels.PermohonanConvert(*rec)
	return &view, nil
}

func (i impl) List(actorID string, actorRole models.UserRole, filter permohonanapimodels.PermohonanListFilter) (list []permohonanapimodels.PermohonanView, rowCount int64, err error) {
	dbFilter := dbmodels.PermohonanFilter{
		Status: filter.Status,
		Search: filter.Search,
	}
	// pemohon hanya melihat miliknya; pelaksana hanya yang ditugaskan padanya
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
	list = make([]permohonanapimodels.PermohonanView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, permohonanapimodels.PermohonanConvert(rec))
	}
	return list, rowCount, nil
}

// Process memindahkan permohonan dari Diteruskan ke Diproses oleh
// petugas yang ditunjuk.
func (i impl) Process(actorID string, actorRole models.UserRole, id string) error {
	if !actorRole.CanProcess() {
		return errors.Wrapf(models.ErrInvalidAssignee, "role %v tidak berwenang memproses", actorRole)
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		store := permohonanstore.NewInstance(tx)
		rec, err := store.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "permohonan")
		}
		if rec.AssignedOfficerID == nil || *rec.AssignedOfficerID != actorID {
			if actorRole != models.RolePpidUtama {
				return errors.Wrap(models.ErrInvalidAssignee, "permohonan tidak ditugaskan pada petugas ini")
			}
		}
		if err = rec.CheckTransition(models.PermohonanStatusDiproses, rec.AssignedOfficerID); err != nil {
			return err
		}
		updMap := map[string]interface{}{
			"status": models.PermohonanStatusDiproses,
		}
		rowsAffected, err := store.UpdateWithStatusCheck(id, rec.Status, updMap)
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return resolveZeroRows(store, id)
		}
		return nil
	})
}

// Close menutup permohonan (Selesai/Ditolak) dan mencatat pengumuman
// sistem di utas tanggapan dalam satu transaksi.
func (i impl) Close(actorID string, actorRole models.UserRole, id string, newStatus models.PermohonanStatus, note string) error {
	logger := log.
		WithField("permohonan_id", id).
		WithField("status_baru", newStatus)
	if !newStatus.IsTerminal() {
		return errors.Wrapf(models.ErrInvalidTransition, "status %v bukan status penutup", newStatus)
	}
	if !actorRole.CanClose() {
		return errors.Wrapf(models.ErrInvalidAssignee, "role %v tidak berwenang menutup", actorRole)
	}
	notify := notifyData{}
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := permohonanstore.NewInstance(tx)
		rec, err := store.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "permohonan")
		}
		if actorRole == models.RolePpidPelaksana {
			if rec.AssignedOfficerID == nil || *rec.AssignedOfficerID != actorID {
				return errors.Wrap(models.ErrInvalidAssignee, "permohonan tidak ditugaskan pada petugas ini")
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
			PermohonanID: &id,
			AuthorRole:   actorRole,
			AuthorName:   models.SystemUser,
			Isi:          closeAnnouncement(newStatus, note),
		}
		_, err = tanggapanstore.NewInstance(tx).Create(announcement)
		if err != nil {
			return err
		}
		if rec.Pemohon != nil {
			notify = notifyData{
				email:     rec.Pemohon.Email,
				name:      rec.Pemohon.Nama,
				newStatus: newStatus.ToHuman(),
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("permohonan ditutup")
	sendStatusNotify(notify)
	return nil
}

func (i impl) CheckEligibility(pemohonID, id string) (*permohonanapimodels.EligibilityView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "permohonan")
	}
	if rec.PemohonID != pemohonID {
		return nil, errors.Wrap(models.ErrNotFound, "permohonan")
	}
	result, err := eligibility.Instance.CanFileObjection(rec.CreatedAt, time.Now())
	if err != nil {
		return nil, err
	}
	return &permohonanapimodels.EligibilityView{
		Eligible:    result.Eligible,
		WorkingDays: result.WorkingDays,
	}, nil
}

// GetTandaBukti membangkitkan tanda bukti penerimaan dalam pdf.
func (i impl) GetTandaBukti(actorID string, actorRole models.UserRole, id string) ([]byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "permohonan")
	}
	if err = checkViewScope(actorID, actorRole, rec); err != nil {
		return nil, err
	}
	return pdfexport.Instance.GenerateTandaBukti(*rec)
}

// ExportRegister menyusun register seluruh permohonan dalam xlsx.
func (i impl) ExportRegister(actorRole models.UserRole) (*bytes.Buffer, error) {
	if !actorRole.CanExport() {
		return nil, errors.Wrapf(models.ErrInvalidAssignee, "role %v tidak berwenang mengunduh register", actorRole)
	}
	list, err := i.store.ListAll()
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportPermohonanRegister(list)
}

func checkViewScope(actorID string, actorRole models.UserRole, rec *dbmodels.Permohonan) error {
	switch actorRole {
	case models.RolePemohon:
		if rec.PemohonID != actorID {
			return errors.Wrap(models.ErrNotFound, "permohonan")
		}
	case models.RolePpidPelaksana:
		if rec.AssignedOfficerID == nil || *rec.AssignedOfficerID != actorID {
			return errors.Wrap(models.ErrNotFound, "permohonan")
		}
	}
	return nil
}

func resolveZeroRows(store permohonanstore.Provider, id string) error {
	rec, err := store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "permohonan")
	}
	return errors.Wrap(models.ErrConcurrentModification, "status berubah oleh proses lain")
}

func closeAnnouncement(newStatus models.PermohonanStatus, note string) string {
	msg := "Permohonan ditutup dengan status: " + newStatus.ToHuman()
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
	err := mailer.Instance.SendStatusChanged(notify.email, notify.name, "permohonan informasi", notify.newStatus)
	if err != nil {
		log.WithError(err).Warn("gagal mengirim email perubahan status")
	}
}
