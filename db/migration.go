package db

import (
	dbmodels "ppid-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Menjalankan migrasi")
	if err := DB.AutoMigrate(&dbmodels.Pemohon{}); err != nil {
		return errors.Wrap(err, "gagal membuat struktur Pemohon")
	}
	if err := DB.AutoMigrate(&dbmodels.Officer{}); err != nil {
		return errors.Wrap(err, "gagal membuat struktur Officer")
	}
	if err := DB.AutoMigrate(&dbmodels.Permohonan{}); err != nil {
		return errors.Wrap(err, "gagal membuat struktur Permohonan")
	}
	if err := DB.AutoMigrate(&dbmodels.Keberatan{}); err != nil {
		return errors.Wrap(err, "gagal membuat struktur Keberatan")
	}
	if err := DB.AutoMigrate(&dbmodels.Tanggapan{}); err != nil {
		return errors.Wrap(err, "gagal membuat struktur Tanggapan")
	}
	if err := DB.AutoMigrate(&dbmodels.EmailVerify{}); err != nil {
		return errors.Wrap(err, "gagal membuat struktur EmailVerify")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "gagal membuat struktur FileStorage")
	}
	log.Info("Migrasi berhasil")
	return nil
}
