package apiv1

import (
	"ppid-backend/controllers"
	pemohonhandler "ppid-backend/lib/pemohon"
	"ppid-backend/middleware"
	apimodels "ppid-backend/models/api"
	pemohonapimodels "ppid-backend/models/api/pemohon"

	"github.com/gofiber/fiber/v2"
)

type pemohonApiController struct {
	controllers.BaseAPIController
}

func InitPemohonApiRouters(app *fiber.App) {
	controller := pemohonApiController{}
	app.Route("pemohon", func(router fiber.Router) {
		router.Use(middleware.OfficerRequired())
		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("approve", controller.approve)
			idRoute.Put("reject", controller.reject)
		})
	})
}

// @Summary Daftar akun pemohon
// @Tags Akun pemohon
// @Description Daftar akun pemohon dengan filter persetujuan
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 pemohonapimodels.PemohonFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]pemohonapimodels.PemohonView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pemohon/list [post]
func (c *pemohonApiController) list(ctx *fiber.Ctx) error {
	var payload pemohonapimodels.PemohonFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := pemohonhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengambil daftar akun pemohon")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Detail akun pemohon
// @Tags Akun pemohon
// @Description Detail akun pemohon berdasarkan id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=pemohonapimodels.PemohonView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pemohon/{id} [get]
func (c *pemohonApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pemohonhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengambil akun pemohon")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Setujui akun pemohon
// @Tags Akun pemohon
// @Description Menyetujui akun pemohon sehingga dapat mengajukan permohonan
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pemohon/{id}/approve [put]
func (c *pemohonApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = pemohonhandler.Instance.Approve(middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal menyetujui akun pemohon")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Cabut persetujuan akun pemohon
// @Tags Akun pemohon
// @Description Mencabut persetujuan akun pemohon
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pemohon/{id}/reject [put]
func (c *pemohonApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = pemohonhandler.Instance.Reject(middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mencabut persetujuan akun pemohon")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
