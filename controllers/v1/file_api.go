package apiv1

import (
	"bytes"
	"fmt"

	"ppid-backend/controllers"
	filestorage "ppid-backend/lib/file-storage"
	"ppid-backend/middleware"
	apimodels "ppid-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

const maxLampiranSize = 10 * 1024 * 1024

type fileApiController struct {
	controllers.BaseAPIController
}

func InitFileApiRouters(app *fiber.App) {
	controller := fileApiController{}
	app.Route("file", func(router fiber.Router) {
		router.Post("", middleware.WithBodyLimit(maxLampiranSize), controller.upload)
		router.Get(":id", controller.download)
	})
}

// @Summary Unggah lampiran
// @Tags Berkas
// @Description Unggah lampiran untuk dilampirkan pada tanggapan
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file	formData	file	true	"berkas lampiran"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/file [post]
func (c *fileApiController) upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("berkas tidak ditemukan pada permintaan"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal membuka berkas")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	id, err := filestorage.Instance.UploadLampiran(ctx.Context(), middleware.GetUserID(ctx), fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengunggah lampiran")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Unduh lampiran
// @Tags Berkas
// @Description Unduh lampiran berdasarkan id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/file/{id} [get]
func (c *fileApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, body, err := filestorage.Instance.GetFile(ctx.Context(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal mengunduh lampiran")
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("berkas tidak ditemukan"))
	}
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, rec.Name))
	return ctx.Status(fiber.StatusOK).SendStream(bytes.NewReader(body))
}
