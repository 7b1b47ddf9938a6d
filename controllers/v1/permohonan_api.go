package apiv1

import (
	"fmt"

	"ppid-backend/controllers"
	"ppid-backend/lib/assignment"
	permohonanhandler "ppid-backend/lib/permohonan"
	tanggapanhandler "ppid-backend/lib/tanggapan"
	"ppid-backend/middleware"
	"ppid-backend/models"
	apimodels "ppid-backend/models/api"
	permohonanapimodels "ppid-backend/models/api/permohonan"
	tanggapanapimodels "ppid-backend/models/api/tanggapan"

	"github.com/gofiber/fiber/v2"
)

type permohonanApiController struct {
	controllers.BaseAPIController
}

func InitPermohonanApiRouters(app *fiber.App) {
	controller := permohonanApiController{}
	app.Route("permohonan", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Use(middleware.PemohonRequired()).Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("eligibility", controller.eligibility)
			idRoute.Get("tanda-bukti", controller.tandaBukti)
			idRoute.Put("assign", controller.assign)
			idRoute.Put("process", controller.process)
			idRoute.Put("finish", controller.finish)
			idRoute.Put("reject", controller.reject)
			idRoute.Get("tanggapan", controller.listTanggapan)
			idRoute.Post("tanggapan", controller.addTanggapan)
		})
	})
}

// @Summary Pengajuan permohonan
// @Tags Permohonan informasi
// @Description Pengajuan permohonan informasi oleh pemohon
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 permohonanapimodels.PermohonanCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/permohonan [post]
func (c *permohonanApiController) create(ctx *fiber.Ctx) error {
	var payload permohonanapimodels.PermohonanCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	pemohonID := middleware.GetUserID(ctx)
	id, err := permohonanhandler.Instance.Create(pemohonID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengajukan permohonan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Daftar permohonan
// @Tags Permohonan informasi
// @Description Daftar permohonan sesuai cakupan role
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 permohonanapimodels.PermohonanListFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]permohonanapimodels.PermohonanView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/permohonan/list [post]
func (c *permohonanApiController) list(ctx *fiber.Ctx) error {
	var payload permohonanapimodels.PermohonanListFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := permohonanhandler.Instance.List(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengambil daftar permohonan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Detail permohonan
// @Tags Permohonan informasi
// @Description Detail permohonan berdasarkan id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=permohonanapimodels.PermohonanView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/permohonan/{id} [get]
func (c *permohonanApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := permohonanhandler.Instance.GetByID(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengambil permohonan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Cek kelayakan keberatan
// @Tags Permohonan informasi
// @Description Cek apakah jendela tanggapan sudah terlampaui sehingga keberatan dapat diajukan
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=permohonanapimodels.EligibilityView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/permohonan/{id}/eligibility [get]
func (c *permohonanApiController) eligibility(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := permohonanhandler.Instance.CheckEligibility(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal memeriksa kelayakan keberatan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Tanda bukti permohonan
// @Tags Permohonan informasi
// @Description Unduh tanda bukti penerimaan permohonan dalam pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/permohonan/{id}/tanda-bukti [get]
func (c *permohonanApiController) tandaBukti(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, err := permohonanhandler.Instance.GetTandaBukti(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal membangkitkan tanda bukti")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="tanda-bukti-%s.pdf"`, id))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Penunjukan petugas
// @Tags Permohonan informasi
// @Description Meneruskan permohonan ke petugas PPID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 permohonanapimodels.AssignData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/permohonan/{id}/assign [put]
func (c *permohonanApiController) assign(ctx *fiber.Ctx) error {
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
	err = assignment.Instance.Assign(middleware.GetUserRole(ctx), models.EntityPermohonan, id, payload.OfficerID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal menunjuk petugas")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Mulai proses
// @Tags Permohonan informasi
// @Description Memindahkan permohonan ke status Diproses
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/permohonan/{id}/process [put]
func (c *permohonanApiController) process(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = permohonanhandler.Instance.Process(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal memproses permohonan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Selesaikan permohonan
// @Tags Permohonan informasi
// @Description Menutup permohonan dengan status Selesai
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 permohonanapimodels.CloseData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/permohonan/{id}/finish [put]
func (c *permohonanApiController) finish(ctx *fiber.Ctx) error {
	return c.close(ctx, models.PermohonanStatusSelesai, "Gagal menyelesaikan permohonan")
}

// @Summary Tolak permohonan
// @Tags Permohonan informasi
// @Description Menutup permohonan dengan status Ditolak
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 permohonanapimodels.CloseData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/permohonan/{id}/reject [put]
func (c *permohonanApiController) reject(ctx *fiber.Ctx) error {
	return c.close(ctx, models.PermohonanStatusDitolak, "Gagal menolak permohonan")
}

func (c *permohonanApiController) close(ctx *fiber.Ctx, newStatus models.PermohonanStatus, errMsg string) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload permohonanapimodels.CloseData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = permohonanhandler.Instance.Close(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id, newStatus, payload.Note)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, errMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Utas tanggapan
// @Tags Permohonan informasi
// @Description Daftar tanggapan pada permohonan
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]tanggapanapimodels.TanggapanView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/permohonan/{id}/tanggapan [get]
func (c *permohonanApiController) listTanggapan(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := tanggapanhandler.Instance.ListByPermohonan(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengambil utas tanggapan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Tambah tanggapan
// @Tags Permohonan informasi
// @Description Menambahkan tanggapan pada utas permohonan
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 tanggapanapimodels.NewTanggapanData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/permohonan/{id}/tanggapan [post]
func (c *permohonanApiController) addTanggapan(ctx *fiber.Ctx) error {
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
	tanggapanID, err := tanggapanhandler.Instance.AppendToPermohonan(
		middleware.GetUserID(ctx), middleware.GetUserRole(ctx), middleware.GetUserName(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal menambahkan tanggapan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tanggapanID))
}
