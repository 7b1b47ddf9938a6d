package initializers

import (
	"context"

	filestorage "ppid-backend/lib/file-storage"
	s3client "ppid-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3() {
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Gagal menginisialisasi klien S3")
		return
	}

	err = client.MakeBucket(context.Background())
	if err != nil {
		log.WithError(err).Error("Gagal menyiapkan bucket lampiran")
		return
	}

	filestorage.NewInstance(client.GetClient())
	log.Info("Klien S3 berhasil diinisialisasi")
}
