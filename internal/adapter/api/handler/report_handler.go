package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"greencampus/internal/usecase"
	"greencampus/pkg/errors"
	"greencampus/pkg/logger"
	"greencampus/pkg/response"
)

// maxImageSize bounds the multipart image part. Advisory only; the
// object store has no server-side ceiling of its own.
const maxImageSize = 5 * 1024 * 1024

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

func (h *ReportHandler) SubmitReport(c echo.Context) error {
	userID := c.Get("uid").(string)

	location := c.FormValue("location")
	if location == "" {
		return response.Error(c, errors.BadRequest("Location is required", nil))
	}

	input := usecase.SubmitReportInput{
		Location: location,
	}

	file, err := c.FormFile("image")
	if err == nil && file != nil {
		if file.Size > maxImageSize {
			return response.Error(c, errors.BadRequest(
				fmt.Sprintf("Image exceeds maximum allowed size (%dMB)", maxImageSize/(1024*1024)), nil))
		}

		contentType := file.Header.Get("Content-Type")
		if !isAllowedImageType(contentType) {
			return response.Error(c, errors.BadRequest("Image type not supported", nil))
		}

		src, err := file.Open()
		if err != nil {
			logger.Error("Error opening uploaded image: %v", err)
			return response.Error(c, errors.Internal("Unable to read image", err))
		}
		defer src.Close()

		input.Image = src
		input.ContentType = contentType
	}

	report, err := h.reportUseCase.SubmitReport(c.Request().Context(), userID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, report)
}

func (h *ReportHandler) MyReports(c echo.Context) error {
	userID := c.Get("uid").(string)

	reports, err := h.reportUseCase.MyReports(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, reports, len(reports))
}

type profileViewResponse struct {
	Profile interface{} `json:"profile"`
	Reports interface{} `json:"reports"`
}

func (h *ReportHandler) ProfileView(c echo.Context) error {
	userID := c.Get("uid").(string)

	profile, reports, err := h.reportUseCase.ProfileView(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profileViewResponse{
		Profile: profile,
		Reports: reports,
	})
}

func isAllowedImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif":
		return true
	}
	return false
}
