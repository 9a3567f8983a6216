package usecase

import (
	"context"
	"fmt"
	"sync"

	"greencampus/internal/domain/entity"
	"greencampus/internal/domain/repository"
	"greencampus/pkg/errors"
	"greencampus/pkg/logger"
)

const defaultTriageListLimit = 50

type TriageUseCase struct {
	reportRepo  repository.ReportRepository
	profileRepo repository.ProfileRepository
	cache       LeaderboardCache

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewTriageUseCase(
	reportRepo repository.ReportRepository,
	profileRepo repository.ProfileRepository,
	cache LeaderboardCache,
) *TriageUseCase {
	return &TriageUseCase{
		reportRepo:  reportRepo,
		profileRepo: profileRepo,
		cache:       cache,
		inFlight:    make(map[string]bool),
	}
}

// acquire marks a report as having a transition in flight. A second caller
// gets false instead of racing the first write.
func (uc *TriageUseCase) acquire(reportID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.inFlight[reportID] {
		return false
	}
	uc.inFlight[reportID] = true
	return true
}

func (uc *TriageUseCase) release(reportID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, reportID)
}

// Transition moves a report along the triage graph on behalf of an admin.
// The admin capability is checked here, not only in routing, so the rule
// holds no matter how the operation is reached.
func (uc *TriageUseCase) Transition(ctx context.Context, adminID, reportID string, action entity.TriageAction) (*entity.Report, error) {
	admin, err := uc.profileRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, errors.Forbidden("Failed to verify admin capability", err)
	}
	if !admin.IsAdmin() {
		return nil, errors.Forbidden("Admin capability required", nil)
	}

	if !action.IsValid() {
		return nil, errors.BadRequest(fmt.Sprintf("Unknown triage action %q", action), nil)
	}

	if !uc.acquire(reportID) {
		return nil, errors.InvalidTransition("Another transition for this report is in flight", nil)
	}
	defer uc.release(reportID)

	report, err := uc.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	next, ok := report.Status.NextStatus(action)
	if !ok {
		return nil, errors.InvalidTransition(
			fmt.Sprintf("Action %q is not defined for status %q", action, report.Status), nil)
	}

	points := entity.SettlePoints(action, report.PointsAwarded)

	// Completion is the only transition that credits the profile counter.
	credit := 0
	if next == entity.StatusCompleted {
		credit = points
	}

	updated, err := uc.reportRepo.Transition(ctx, reportID, report.Status, next, points, credit)
	if err != nil {
		return nil, err
	}

	logger.Info("Report %s: %s -> %s by admin %s", reportID, report.Status, next, adminID)

	if credit != 0 && uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}

	return updated, nil
}

// ListByStatus is the triage view: all reports holding one status, newest
// first.
func (uc *TriageUseCase) ListByStatus(ctx context.Context, adminID string, status entity.ReportStatus, limit int) ([]*entity.Report, error) {
	admin, err := uc.profileRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, errors.Forbidden("Failed to verify admin capability", err)
	}
	if !admin.IsAdmin() {
		return nil, errors.Forbidden("Admin capability required", nil)
	}

	if !status.IsValid() {
		return nil, errors.BadRequest(fmt.Sprintf("Unknown report status %q", status), nil)
	}

	if limit <= 0 || limit > defaultTriageListLimit {
		limit = defaultTriageListLimit
	}

	return uc.reportRepo.ListByStatus(ctx, status, limit)
}
