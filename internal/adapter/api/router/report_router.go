package router

import (
	"github.com/labstack/echo/v4"

	"greencampus/internal/adapter/api/handler"
	"greencampus/internal/adapter/api/middleware"
)

func SetupReportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reportHandler := handler.GetReportHandler()

	reports := e.Group("/v1/reports")
	reports.Use(authMiddleware.Authenticate)

	reports.POST("", reportHandler.SubmitReport)
	reports.GET("/me", reportHandler.MyReports)

	profile := e.Group("/v1/profile")
	profile.Use(authMiddleware.Authenticate)

	profile.GET("", reportHandler.ProfileView)
}
