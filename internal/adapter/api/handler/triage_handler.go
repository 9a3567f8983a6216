package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"greencampus/internal/domain/entity"
	"greencampus/internal/usecase"
	"greencampus/pkg/errors"
	"greencampus/pkg/response"
)

type TriageHandler struct {
	triageUseCase *usecase.TriageUseCase
}

func NewTriageHandler(triageUseCase *usecase.TriageUseCase) *TriageHandler {
	return &TriageHandler{
		triageUseCase: triageUseCase,
	}
}

type transitionRequest struct {
	Action string `json:"action" validate:"required,oneof=start complete reject"`
}

func (h *TriageHandler) Transition(c echo.Context) error {
	reportID := c.Param("reportId")
	if reportID == "" {
		return response.Error(c, errors.BadRequest("Report ID is required", nil))
	}

	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminID := c.Get("uid").(string)

	report, err := h.triageUseCase.Transition(
		c.Request().Context(),
		adminID,
		reportID,
		entity.TriageAction(req.Action),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}

func (h *TriageHandler) ListReports(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		status = string(entity.StatusPending)
	}

	limit := 50
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			return response.Error(c, errors.BadRequest("Invalid limit value", err))
		}
		limit = parsed
	}

	adminID := c.Get("uid").(string)

	reports, err := h.triageUseCase.ListByStatus(
		c.Request().Context(),
		adminID,
		entity.ReportStatus(status),
		limit,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, reports, len(reports))
}
