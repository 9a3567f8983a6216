package usecase

import (
	"context"
	"io"
	"strings"

	"greencampus/internal/domain/entity"
	"greencampus/internal/domain/repository"
	"greencampus/pkg/errors"
	"greencampus/pkg/logger"
)

const userReportsLimit = 100

type ReportUseCase struct {
	reportRepo  repository.ReportRepository
	profileRepo repository.ProfileRepository
	uploader    ImageUploader
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	profileRepo repository.ProfileRepository,
	uploader ImageUploader,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:  reportRepo,
		profileRepo: profileRepo,
		uploader:    uploader,
	}
}

type SubmitReportInput struct {
	Location    string
	Image       io.Reader
	ContentType string
}

// SubmitReport uploads the image first so the record never points at an
// object that was not stored. An upload failure leaves no record behind; an
// insert failure after a successful upload orphans the object, which is
// accepted.
func (uc *ReportUseCase) SubmitReport(ctx context.Context, userID string, input SubmitReportInput) (*entity.Report, error) {
	if strings.TrimSpace(input.Location) == "" {
		return nil, errors.BadRequest("Location is required", nil)
	}

	imageURL := ""
	if input.Image != nil {
		url, err := uc.uploader.UploadImage(ctx, input.Image, input.ContentType)
		if err != nil {
			logger.Error("Image upload failed for user %s: %v", userID, err)
			return nil, errors.UploadFailed("Failed to upload image", err)
		}
		imageURL = url
	}

	report := &entity.Report{
		UserID:        userID,
		ImageURL:      imageURL,
		Location:      input.Location,
		Status:        entity.StatusPending,
		PointsAwarded: entity.SubmissionPoints,
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		if imageURL != "" {
			logger.Warn("Report insert failed after upload, orphaned object %s", imageURL)
		}
		return nil, err
	}

	return report, nil
}

func (uc *ReportUseCase) MyReports(ctx context.Context, userID string) ([]*entity.Report, error) {
	return uc.reportRepo.ListByUser(ctx, userID, userReportsLimit)
}

// ProfileView returns the caller's profile together with their report
// history, newest first.
func (uc *ReportUseCase) ProfileView(ctx context.Context, userID string) (*entity.Profile, []*entity.Report, error) {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	reports, err := uc.reportRepo.ListByUser(ctx, userID, userReportsLimit)
	if err != nil {
		return nil, nil, err
	}

	return profile, reports, nil
}
