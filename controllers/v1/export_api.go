package apiv1

import (
	"fmt"
	"time"

	"ppid-backend/controllers"
	permohonanhandler "ppid-backend/lib/permohonan"
	"ppid-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

type exportApiController struct {
	controllers.BaseAPIController
}

func InitExportApiRouters(app *fiber.App) {
	controller := exportApiController{}
	app.Route("export", func(router fiber.Router) {
		router.Use(middleware.OfficerRequired())
		router.Get("register", controller.register)
	})
}

// @Summary Register permohonan
// @Tags Ekspor
// @Description Unduh register permohonan informasi dalam xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/register [get]
func (c *exportApiController) register(ctx *fiber.Ctx) error {
	buf, err := permohonanhandler.Instance.ExportRegister(middleware.GetUserRole(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal menyusun berkas register")
	}
	fileName := fmt.Sprintf("register-permohonan-%s.xlsx", time.Now().Format("02-01-2006"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
