package router

import (
	"github.com/labstack/echo/v4"

	"greencampus/internal/adapter/api/handler"
)

func SetupLeaderboardRouter(e *echo.Echo) {
	leaderboardHandler := handler.GetLeaderboardHandler()

	e.GET("/v1/leaderboard", leaderboardHandler.TopContributors)
}
