package auth

import (
	"strings"
	"time"

	"ppid-backend/config"
	"ppid-backend/db"
	emailverify "ppid-backend/lib/email-verify"
	officerstore "ppid-backend/lib/officer/store"
	pemohonstore "ppid-backend/lib/pemohon/store"
	"ppid-backend/lib/ratelimit"
	authutils "ppid-backend/lib/utils/auth-utils"
	"ppid-backend/models"
	authapimodels "ppid-backend/models/api/auth"
	dbmodels "ppid-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) error
	VerifyEmail(code string) error
	LoginPemohon(clientIP string, request authapimodels.LoginRequest) (*authapimodels.LoginResponse, error)
	LoginOfficer(clientIP string, request authapimodels.LoginRequest) (*authapimodels.LoginResponse, error)
	Refresh(refreshToken string) (*authapimodels.LoginResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		pemohonStore: pemohonstore.NewInstance(db.DB),
		officerStore: officerstore.NewInstance(db.DB),
		emailVerify:  emailverify.NewInstance(config.Conf.Smtp.EmailSendVerification),
	}
}

type impl struct {
	pemohonStore pemohonstore.Provider
	officerStore officerstore.Provider
	emailVerify  emailverify.Provider
}

// Register mendaftarkan akun pemohon baru. Akun menunggu verifikasi
// email dan persetujuan petugas sebelum dapat mengajukan permohonan.
func (i impl) Register(request authapimodels.RegisterRequest) error {
	logger := log.WithField("email", request.Email)
	exist, err := i.pemohonStore.ExistByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("gagal memeriksa akun pemohon yang sudah ada")
		return err
	}
	if exist {
		return errors.New("akun dengan email ini sudah terdaftar")
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return err
	}
	rec := dbmodels.Pemohon{
		Nama:     request.Nama,
		Email:    strings.ToLower(request.Email),
		Nik:      request.Nik,
		Telepon:  request.Telepon,
		Alamat:   request.Alamat,
		Password: hash,
	}
	_, err = i.pemohonStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("gagal membuat akun pemohon")
		return err
	}
	err = i.emailVerify.SendVerifyCode(rec.Email)
	if err != nil {
		logger.WithError(err).Warn("gagal mengirim kode verifikasi email")
	}
	logger.Info("akun pemohon terdaftar")
	return nil
}

func (i impl) VerifyEmail(code string) error {
	return i.emailVerify.VerifyCode(code)
}

func (i impl) LoginPemohon(clientIP string, request authapimodels.LoginRequest) (*authapimodels.LoginResponse, error) {
	logger := log.WithField("email", request.Email)
	if !ratelimit.Instance.Allow(clientIP) {
		return nil, errors.New("terlalu banyak percobaan login, coba lagi nanti")
	}
	rec, err := i.pemohonStore.GetByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("gagal mencari akun pemohon")
		return nil, err
	}
	if rec == nil || !authutils.CheckPassword(rec.Password, request.Password) {
		return nil, errors.New("email atau password salah")
	}
	if !rec.Verified {
		return nil, errors.New("email belum diverifikasi")
	}
	resp, err := buildTokens(rec.ID, rec.Nama, models.RolePemohon)
	if err != nil {
		return nil, err
	}
	ratelimit.Instance.Reset(clientIP)
	logger.Info("pemohon masuk")
	return resp, nil
}

func (i impl) LoginOfficer(clientIP string, request authapimodels.LoginRequest) (*authapimodels.LoginResponse, error) {
	logger := log.WithField("email", request.Email)
	if !ratelimit.Instance.Allow(clientIP) {
		return nil, errors.New("terlalu banyak percobaan login, coba lagi nanti")
	}
	rec, err := i.officerStore.GetByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("gagal mencari akun petugas")
		return nil, err
	}
	if rec == nil || !authutils.CheckPassword(rec.Password, request.Password) {
		return nil, errors.New("email atau password salah")
	}
	if !rec.IsActive {
		return nil, errors.New("akun petugas dinonaktifkan")
	}
	resp, err := buildTokens(rec.ID, rec.Nama, rec.Role)
	if err != nil {
		return nil, err
	}
	ratelimit.Instance.Reset(clientIP)
	err = i.officerStore.Update(rec.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.WithError(err).Warn("gagal mencatat waktu login")
	}
	logger.Info("petugas masuk")
	return resp, nil
}

// Refresh menerbitkan pasangan token baru dari refresh token yang masih
// berlaku. Akun dicek ulang agar token tidak hidup lebih lama dari akunnya.
func (i impl) Refresh(refreshToken string) (*authapimodels.LoginResponse, error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "refresh token tidak valid")
	}
	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil, errors.New("refresh token tidak valid")
	}
	officer, err := i.officerStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if officer != nil {
		if !officer.IsActive {
			return nil, errors.New("akun petugas dinonaktifkan")
		}
		return buildTokens(officer.ID, officer.Nama, officer.Role)
	}
	pemohon, err := i.pemohonStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if pemohon == nil {
		return nil, errors.New("akun tidak ditemukan")
	}
	return buildTokens(pemohon.ID, pemohon.Nama, models.RolePemohon)
}

func buildTokens(userID, name string, role models.UserRole) (*authapimodels.LoginResponse, error) {
	accessToken, err := authutils.GetToken(userID, name, role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return nil, err
	}
	return &authapimodels.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         string(role),
		Name:         name,
	}, nil
}
