package apiv1

import (
	"ppid-backend/controllers"
	officerhandler "ppid-backend/lib/officer"
	"ppid-backend/middleware"
	apimodels "ppid-backend/models/api"
	officerapimodels "ppid-backend/models/api/officer"

	"github.com/gofiber/fiber/v2"
)

type officerApiController struct {
	controllers.BaseAPIController
}

func InitOfficerApiRouters(app *fiber.App) {
	controller := officerApiController{}
	app.Route("petugas", func(router fiber.Router) {
		router.Use(middleware.OfficerRequired())
		router.Post("list", controller.list)
		router.Post("assignable", controller.assignable)
		router.Use(middleware.AdminRequired()).Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("activate", controller.activate)
			idRoute.Put("deactivate", controller.deactivate)
		})
	})
}

// @Summary Buat akun petugas
// @Tags Akun petugas
// @Description Membuat akun petugas PPID baru
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 officerapimodels.OfficerCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/petugas [post]
func (c *officerApiController) create(ctx *fiber.Ctx) error {
	var payload officerapimodels.OfficerCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := officerhandler.Instance.Create(middleware.GetUserRole(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal membuat akun petugas")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Daftar akun petugas
// @Tags Akun petugas
// @Description Daftar akun petugas PPID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 officerapimodels.OfficerFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]officerapimodels.OfficerView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/petugas/list [post]
func (c *officerApiController) list(ctx *fiber.Ctx) error {
	var payload officerapimodels.OfficerFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := officerhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengambil daftar akun petugas")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Daftar petugas yang dapat ditunjuk
// @Tags Akun petugas
// @Description Daftar petugas aktif yang boleh menjadi penanggung jawab
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 officerapimodels.OfficerFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]officerapimodels.OfficerView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/petugas/assignable [post]
func (c *officerApiController) assignable(ctx *fiber.Ctx) error {
	var payload officerapimodels.OfficerFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := officerhandler.Instance.ListAssignable(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengambil daftar petugas")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Detail akun petugas
// @Tags Akun petugas
// @Description Detail akun petugas berdasarkan id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=officerapimodels.OfficerView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/petugas/{id} [get]
func (c *officerApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := officerhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengambil akun petugas")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Aktifkan akun petugas
// @Tags Akun petugas
// @Description Mengaktifkan akun petugas
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/petugas/{id}/activate [put]
func (c *officerApiController) activate(ctx *fiber.Ctx) error {
	return c.setActive(ctx, true, "Gagal mengaktifkan akun petugas")
}

// @Summary Nonaktifkan akun petugas
// @Tags Akun petugas
// @Description Menonaktifkan akun petugas
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/petugas/{id}/deactivate [put]
func (c *officerApiController) deactivate(ctx *fiber.Ctx) error {
	return c.setActive(ctx, false, "Gagal menonaktifkan akun petugas")
}

func (c *officerApiController) setActive(ctx *fiber.Ctx, isActive bool, errMsg string) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = officerhandler.Instance.SetActive(middleware.GetUserRole(ctx), id, isActive)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, errMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
