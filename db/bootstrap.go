package db

import (
	"ppid-backend/models"
	dbmodels "ppid-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// InitBootstrap membuat akun Admin awal bila belum ada satu pun petugas.
func InitBootstrap(adminEmail, adminPassword string) error {
	if adminEmail == "" || adminPassword == "" {
		return nil
	}
	var count int64
	err := DB.Model(&dbmodels.Officer{}).Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "gagal memeriksa akun petugas")
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "gagal membuat hash password")
	}
	rec := dbmodels.Officer{
		Nama:     "Administrator",
		Email:    adminEmail,
		Password: string(hash),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	err = DB.Create(&rec).Error
	if err != nil {
		return errors.Wrap(err, "gagal membuat akun admin awal")
	}
	log.WithField("email", adminEmail).Info("Akun admin awal dibuat")
	return nil
}
