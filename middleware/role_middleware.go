package middleware

import (
	authutils "ppid-backend/lib/utils/auth-utils"
	"ppid-backend/models"
	apimodels "ppid-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		return name.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

// OfficerRequired membatasi akses untuk akun petugas PPID.
func OfficerRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsOfficer() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operasi tidak tersedia"))
		}
		return ctx.Next()
	}
}

// PemohonRequired membatasi akses untuk akun pemohon.
func PemohonRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.RolePemohon {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operasi tidak tersedia"))
		}
		return ctx.Next()
	}
}

// AdminRequired membatasi akses untuk pengelola akun petugas.
func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).CanManageOfficers() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operasi tidak tersedia"))
		}
		return ctx.Next()
	}
}
