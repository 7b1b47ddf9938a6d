package apiv1

import (
	"ppid-backend/controllers"
	auth "ppid-backend/lib/auth"
	apimodels "ppid-backend/models/api"
	authapimodels "ppid-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type regApiController struct {
	controllers.BaseAPIController
}

func InitRegApiRouters(app *fiber.App) {
	controller := regApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Get("verify-email", controller.verifyEmail)
	})
}

// @Summary Pendaftaran akun pemohon
// @Tags Pendaftaran
// @Description Pendaftaran akun pemohon baru
// @Param	body				body		authapimodels.RegisterRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register [post]
func (c *regApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := auth.Instance.Register(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mendaftarkan akun")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Verifikasi email
// @Tags Pendaftaran
// @Description Verifikasi email lewat kode yang dikirim ke kotak masuk
// @Param   code	query	string	true	"kode verifikasi"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/verify-email [get]
func (c *regApiController) verifyEmail(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	if code == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("kode tidak diisi"))
	}
	err := auth.Instance.VerifyEmail(code)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal memverifikasi email")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
