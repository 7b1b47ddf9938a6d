package initializers

import (
	"context"
	"time"

	"ppid-backend/config"
	"ppid-backend/fiberlog"
	"ppid-backend/lib/assignment"
	"ppid-backend/lib/auth"
	"ppid-backend/lib/eligibility"
	pdfexport "ppid-backend/lib/export/pdf"
	xlsexport "ppid-backend/lib/export/xls"
	"ppid-backend/lib/keberatan"
	"ppid-backend/lib/notification"
	"ppid-backend/lib/officer"
	overdueworker "ppid-backend/lib/overdue-worker"
	"ppid-backend/lib/pemohon"
	"ppid-backend/lib/permohonan"
	"ppid-backend/lib/ratelimit"
	"ppid-backend/lib/tanggapan"
	"ppid-backend/lib/workcal"
	connectionhub "ppid-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()

	connectionhub.Init()
	workcal.Init(config.Conf.Service.Holidays)
	eligibility.NewHandler(workcal.Instance, config.Conf.Service.StatutoryDays)
	ratelimit.Init(ctx, config.Conf.RateLimit.LoginAttempts,
		time.Duration(config.Conf.RateLimit.WindowInSec)*time.Second,
		time.Duration(config.Conf.RateLimit.CleanupInSec)*time.Second)

	auth.NewHandler()
	pemohon.NewHandler()
	officer.NewHandler()
	permohonan.NewHandler()
	keberatan.NewHandler()
	tanggapan.NewHandler()
	notification.NewHandler()
	assignment.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler()

	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	overdueworker.StartWorker(ctx)
}
