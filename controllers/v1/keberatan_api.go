package apiv1

import (
	"ppid-backend/controllers"
	"ppid-backend/lib/assignment"
	keberatanhandler "ppid-backend/lib/keberatan"
	tanggapanhandler "ppid-backend/lib/tanggapan"
	"ppid-backend/middleware"
	"ppid-backend/models"
	apimodels "ppid-backend/models/api"
	keberatanapimodels "ppid-backend/models/api/keberatan"
	permohonanapimodels "ppid-backend/models/api/permohonan"
	tanggapanapimodels "ppid-backend/models/api/tanggapan"

	"github.com/gofiber/fiber/v2"
)

type keberatanApiController struct {
	controllers.BaseAPIController
}

func InitKeberatanApiRouters(app *fiber.App) {
	controller := keberatanApiController{}
	app.Route("keberatan", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Use(middleware.PemohonRequired()).Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("assign", controller.assign)
			idRoute.Put("finish", controller.finish)
			idRoute.Put("reject", controller.reject)
			idRoute.Get("tanggapan", controller.listTanggapan)
			idRoute.Post("tanggapan", controller.addTanggapan)
		})
	})
}

// @Summary Pengajuan keberatan
// @Tags Keberatan
// @Description Pengajuan keberatan atas permohonan yang melewati jendela tanggapan
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 keberatanapimodels.KeberatanCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/keberatan [post]
func (c *keberatanApiController) create(ctx *fiber.Ctx) error {
	var payload keberatanapimodels.KeberatanCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := keberatanhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengajukan keberatan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Daftar keberatan
// @Tags Keberatan
// @Description Daftar keberatan sesuai cakupan role
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 keberatanapimodels.KeberatanListFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]keberatanapimodels.KeberatanView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/keberatan/list [post]
func (c *keberatanApiController) list(ctx *fiber.Ctx) error {
	var payload keberatanapimodels.KeberatanListFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := keberatanhandler.Instance.List(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengambil daftar keberatan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Detail keberatan
// @Tags Keberatan
// @Description Detail keberatan berdasarkan id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=keberatanapimodels.KeberatanView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/keberatan/{id} [get]
func (c *keberatanApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := keberatanhandler.Instance.GetByID(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengambil keberatan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Penunjukan petugas
// @Tags Keberatan
// @Description Meneruskan keberatan ke petugas PPID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 permohonanapimodels.AssignData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/keberatan/{id}/assign [put]
func (c *keberatanApiController) assign(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload permohonanapimodels.AssignData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = assignment.Instance.Assign(middleware.GetUserRole(ctx), models.EntityKeberatan, id, payload.OfficerID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal menunjuk petugas")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Selesaikan keberatan
// @Tags Keberatan
// @Description Menutup keberatan dengan status Selesai
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 keberatanapimodels.CloseData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/keberatan/{id}/finish [put]
func (c *keberatanApiController) finish(ctx *fiber.Ctx) error {
	return c.close(ctx, models.KeberatanStatusSelesai, "Gagal menyelesaikan keberatan")
}

// @Summary Tolak keberatan
// @Tags Keberatan
// @Description Menutup keberatan dengan status Ditolak
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 keberatanapimodels.CloseData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/keberatan/{id}/reject [put]
func (c *keberatanApiController) reject(ctx *fiber.Ctx) error {
	return c.close(ctx, models.KeberatanStatusDitolak, "Gagal menolak keberatan")
}

func (c *keberatanApiController) close(ctx *fiber.Ctx, newStatus models.KeberatanStatus, errMsg string) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload keberatanapimodels.CloseData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = keberatanhandler.Instance.Close(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id, newStatus, payload.Note)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, errMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Utas tanggapan
// @Tags Keberatan
// @Description Daftar tanggapan pada keberatan
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]tanggapanapimodels.TanggapanView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/keberatan/{id}/tanggapan [get]
func (c *keberatanApiController) listTanggapan(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := tanggapanhandler.Instance.ListByKeberatan(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengambil utas tanggapan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Tambah tanggapan
// @Tags Keberatan
// @Description Menambahkan tanggapan pada utas keberatan
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 tanggapanapimodels.NewTanggapanData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/keberatan/{id}/tanggapan [post]
func (c *keberatanApiController) addTanggapan(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload tanggapanapimodels.NewTanggapanData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tanggapanID, err := tanggapanhandler.Instance.AppendToKeberatan(
		middleware.GetUserID(ctx), middleware.GetUserRole(ctx), middleware.GetUserName(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal menambahkan tanggapan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tanggapanID))
}
