package emailverify

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"ppid-backend/config"
	"ppid-backend/db"
	emailverifystore "ppid-backend/lib/email-verify/store"
	pemohonstore "ppid-backend/lib/pemohon/store"
	"ppid-backend/lib/smtp"
	dbmodels "ppid-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const daysToExpires = 14
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

type Provider interface {
	SendVerifyCode(email string) error
	VerifyCode(code string) error
}

func NewInstance(emailFrom string) Provider {
	return &impl{
		verifyStore: emailverifystore.NewInstance(db.DB),
		emailFrom:   emailFrom,
	}
}

type impl struct {
	verifyStore emailverifystore.Provider
	emailFrom   string
}

func (i impl) SendVerifyCode(email string) error {
	exist, err := i.verifyStore.Exist(email)
	if err != nil {
		return err
	}
	if exist {
		return errors.New("kode verifikasi untuk email ini sudah dikirim")
	}
	verifyData := dbmodels.EmailVerify{
		Email:         email,
		Code:          i.generateCode(),
		DateGenerated: time.Now(),
		DateExpires:   time.Now().Add(time.Hour * 24 * daysToExpires),
	}
	err = i.verifyStore.Create(verifyData)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Tautan verifikasi email: %s/api/v1/auth/verify-email?code=%s", config.Conf.Smtp.DomainForVerifyLink, verifyData.Code)
	err = smtp.Instance.SendEMail(i.emailFrom, email, message, "Verifikasi Email")
	if err != nil {
		return err
	}
	return nil
}

func (i impl) VerifyCode(code string) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		verifyStore := emailverifystore.NewInstance(tx)
		pemohonStore := pemohonstore.NewInstance(tx)

		email, err := applyCode(code, verifyStore)
		if err != nil {
			return err
		}
		return updatePemohon(email, pemohonStore)
	})
	return err
}

func applyCode(code string, verifyStore emailverifystore.Provider) (email string, err error) {
	verifyData, err := verifyStore.GetByCode(code)
	if err != nil {
		return "", err
	}
	if verifyData == nil {
		return "", errors.New("kode tidak ditemukan")
	}
	if !verifyData.DateUsed.IsZero() {
		return "", errors.New("kode sudah digunakan")
	}
	if verifyData.DateExpires.Before(time.Now()) {
		return "", errors.New("kode sudah kedaluwarsa")
	}
	logger := log.WithField("email", verifyData.Email)

	updMap := map[string]interface{}{
		"date_used": time.Now(),
	}
	err = verifyStore.UpdateByCode(code, updMap)
	if err != nil {
		logger.WithError(err).Error("email tidak terverifikasi, gagal memperbarui tabel EmailVerify")
		return "", errors.New("gagal menerapkan kode")
	}
	return verifyData.Email, nil
}

func updatePemohon(email string, pemohonStore pemohonstore.Provider) error {
	logger := log.WithField("email", email)

	rec, err := pemohonStore.GetByEmail(email)
	if err != nil {
		logger.WithError(err).Error("email tidak terverifikasi, gagal mengambil data pemohon")
		return errors.New("gagal mengambil data pemohon")
	}
	if rec == nil {
		logger.Error("email tidak terverifikasi, pemohon tidak ditemukan")
		return errors.New("pemohon tidak ditemukan")
	}
	updMap := map[string]interface{}{
		"verified": true,
	}
	err = pemohonStore.Update(rec.ID, updMap)
	if err != nil {
		log.
			WithError(err).
			Error("gagal memperbarui status verifikasi pemohon")
		return err
	}
	return nil
}

func (i impl) generateCode() string {
	sb := strings.Builder{}
	sb.Grow(24)
	for i := 0; i < 24; i++ {
		idx := rand.Int63() % int64(len(letterBytes))
		sb.WriteByte(letterBytes[idx])
	}
	return sb.String()
}
