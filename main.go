package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"ppid-backend/config"
	apiv1 "ppid-backend/controllers/v1"
	"ppid-backend/fiberlog"
	"ppid-backend/initializers"
	"ppid-backend/lib/ws"
	"ppid-backend/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // batas unggahan lampiran 20MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitRegApiRouters(apiV1)
	apiv1.InitAuthApiRouters(apiV1)

	//layanan informasi, butuh otorisasi
	authorized := fiber.New()
	apiV1.Mount("/", authorized)
	authorized.Use(middleware.AuthorizationRequired())
	apiv1.InitPermohonanApiRouters(authorized)
	apiv1.InitKeberatanApiRouters(authorized)
	apiv1.InitPemohonApiRouters(authorized)
	apiv1.InitOfficerApiRouters(authorized)
	apiv1.InitNotificationApiRouters(authorized)
	apiv1.InitExportApiRouters(authorized)
	apiv1.InitFileApiRouters(authorized)

	//kanal notifikasi realtime
	wsApp := fiber.New()
	apiV1.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired())
	ws.InitWs(wsApp)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Mematikan layanan secara graceful...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Gagal mematikan layanan secara graceful")
		}
		time.Sleep(time.Second)
		log.Info("Layanan berhasil dimatikan")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("Server HTTP berhenti")
}
