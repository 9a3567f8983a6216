package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"greencampus/internal/usecase"
	"greencampus/pkg/errors"
	"greencampus/pkg/response"
)

type LeaderboardHandler struct {
	leaderboardUseCase *usecase.LeaderboardUseCase
}

func NewLeaderboardHandler(leaderboardUseCase *usecase.LeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUseCase: leaderboardUseCase,
	}
}

func (h *LeaderboardHandler) TopContributors(c echo.Context) error {
	limit := 50
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			return response.Error(c, errors.BadRequest("Invalid limit value", err))
		}
		limit = parsed
	}

	entries, err := h.leaderboardUseCase.TopContributors(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, entries, len(entries))
}
