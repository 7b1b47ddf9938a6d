package apiv1

import (
	"ppid-backend/controllers"
	"ppid-backend/lib/notification"
	"ppid-backend/middleware"
	apimodels "ppid-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notification", func(router fiber.Router) {
		router.Use(middleware.OfficerRequired())
		router.Get("unread-count", controller.unreadCount)
	})
}

// @Summary Jumlah belum dibaca
// @Tags Notifikasi
// @Description Jumlah entitas yang menunggu aksi petugas (pemohon bicara terakhir)
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=notificationapimodels.UnreadCountView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/unread-count [get]
func (c *notificationApiController) unreadCount(ctx *fiber.Ctx) error {
	resp, err := notification.Instance.UnreadCountFor(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Gagal menghitung notifikasi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
