package overdueworker

import (
	"context"
	"time"

	"ppid-backend/config"
	"ppid-backend/db"
	"ppid-backend/lib/mailer"
	permohonanstore "ppid-backend/lib/permohonan/store"
	baseworker "ppid-backend/lib/utils/base-worker"
	"ppid-backend/lib/workcal"
)

// Pengingat permohonan yang melewati jendela tanggapan menurut
// undang-undang tanpa status terminal.
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:        *baseworker.NewInstance("OverdueWorker", 30*time.Second, handlePeriod),
		permohonanStore: permohonanstore.NewInstance(db.DB),
	}
	go i.BaseImpl.Run(ctx, func(ctx context.Context) {
		i.handle()
	})
}

const handlePeriod = 1 * time.Hour

type impl struct {
	baseworker.BaseImpl
	permohonanStore permohonanstore.Provider
}

func (i impl) handle() {
	logger := i.GetLogger()
	statutoryDays := config.Conf.Service.StatutoryDays
	// prasaring kasar: umur hari kerja tidak mungkin melampaui umur
	// hari kalender, jadi yang lebih muda dari batas kalender dilewati
	createdBefore := time.Now().AddDate(0, 0, -statutoryDays)
	list, err := i.permohonanStore.ListOverdue(createdBefore)
	if err != nil {
		logger.WithError(err).Error("gagal mengambil daftar permohonan yang menunggu")
		return
	}
	now := time.Now()
	for _, rec := range list {
		workingDays, err := workcal.Instance.WorkingDaysBetween(rec.CreatedAt, now)
		if err != nil {
			logger.WithError(err).WithField("permohonan_id", rec.ID).Error("gagal menghitung umur hari kerja")
			continue
		}
		if workingDays < statutoryDays {
			continue
		}
		logger.
			WithField("permohonan_id", rec.ID).
			WithField("hari_kerja", workingDays).
			Warn("permohonan melewati jendela tanggapan")
		if rec.AssignedOfficer != nil && mailer.Instance != nil {
			err = mailer.Instance.SendOverdueReminder(rec.AssignedOfficer.Email, "Permohonan "+rec.ID, workingDays)
			if err != nil {
				logger.WithError(err).Warn("gagal mengirim email pengingat")
			}
		}
	}
}
