package router

import (
	"github.com/labstack/echo/v4"

	"greencampus/internal/adapter/api/handler"
	"greencampus/internal/adapter/api/middleware"
)

func SetupTriageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	triageHandler := handler.GetTriageHandler()

	admin := e.Group("/v1/admin/reports")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", triageHandler.ListReports)
	admin.POST("/:reportId/transition", triageHandler.Transition)
}
