package router

import (
	"github.com/labstack/echo/v4"

	"greencampus/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupReportRouter(e, authMiddleware)
	SetupTriageRouter(e, authMiddleware, adminMiddleware)
	SetupLeaderboardRouter(e)
	SetupHealthRouter(e)
}
