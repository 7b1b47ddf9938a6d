package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"ppid" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec        int    `default:"3600" env:"JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"86400" env:"JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	Smtp struct {
		User                  string `default:"" env:"SMTP_USER"`
		Password              string `default:"" env:"SMTP_PASSWORD"`
		Host                  string `default:"" env:"SMTP_HOST"`
		Port                  string `default:"" env:"SMTP_PORT"`
		TLSEnabled            *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		EmailSendVerification string `default:"" env:"EMAIL_SEND_VERIFICATION"`
		DomainForVerifyLink   string `default:"http://localhost:8000" env:"DOMAIN_FOR_VERIFY_LINK"`
	}
	S3 struct {
		Endpoint   string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKey  string `default:"" env:"S3_ACCESS_KEY"`
		SecretKey  string `default:"" env:"S3_SECRET_KEY"`
		UseSSL     *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName string `default:"ppid-lampiran" env:"S3_BUCKET_NAME"`
	}
	Service struct {
		// jendela tanggapan menurut UU KIP: 17 hari kerja
		StatutoryDays int `default:"17" env:"SERVICE_STATUTORY_DAYS"`
		// daftar hari libur nasional, format 2006-01-02; diisi lewat config.yml
		Holidays []string `env:"SERVICE_HOLIDAYS"`
	}
	RateLimit struct {
		LoginAttempts  int `default:"5" env:"RATE_LIMIT_LOGIN_ATTEMPTS"`
		WindowInSec    int `default:"300" env:"RATE_LIMIT_WINDOW_IN_SEC"`
		CleanupInSec   int `default:"600" env:"RATE_LIMIT_CLEANUP_IN_SEC"`
	}
	Bootstrap struct {
		AdminEmail    string `default:"" env:"BOOTSTRAP_ADMIN_EMAIL"`
		AdminPassword string `default:"" env:"BOOTSTRAP_ADMIN_PASSWORD"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
