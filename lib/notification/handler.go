package notification

import (
	"ppid-backend/db"
	notificationstore "ppid-backend/lib/notification/store"
	"ppid-backend/models"
	notificationapimodels "ppid-backend/models/api/notification"

	log "github.com/sirupsen/logrus"
)

// Penghitung notifikasi model "pembicara terakhir": entitas dihitung
// bila pemohon yang terakhir bicara. Tidak ada penanda baca tersimpan,
// jumlah selalu diturunkan ulang dari urutan tanggapan.
type Provider interface {
	UnreadCountFor(officerID string) (notificationapimodels.UnreadCountView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store notificationstore.Provider
}

func (i impl) UnreadCountFor(officerID string) (notificationapimodels.UnreadCountView, error) {
	logger := log.WithField("officer_id", officerID)
	permohonanThreads, err := i.store.PermohonanThreads(officerID)
	if err != nil {
		logger.WithError(err).Error("gagal mengambil status percakapan permohonan")
		return notificationapimodels.UnreadCountView{}, err
	}
	keberatanThreads, err := i.store.KeberatanThreads(officerID)
	if err != nil {
		logger.WithError(err).Error("gagal mengambil status percakapan keberatan")
		return notificationapimodels.UnreadCountView{}, err
	}
	view := notificationapimodels.UnreadCountView{
		Permohonan: CountActionable(permohonanThreads),
		Keberatan:  CountActionable(keberatanThreads),
	}
	view.Total = view.Permohonan + view.Keberatan
	return view, nil
}

// CountActionable menghitung entitas yang menunggu aksi petugas:
// tanggapan terakhir ditulis oleh pemohon.
func CountActionable(threads []notificationstore.ThreadState) int {
	count := 0
	for _, thread := range threads {
		if thread.LastAuthorRole == models.RolePemohon {
			count++
		}
	}
	return count
}
