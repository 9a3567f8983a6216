package repository

import (
	"context"

	"greencampus/internal/domain/entity"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	ListByStatus(ctx context.Context, status entity.ReportStatus, limit int) ([]*entity.Report, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Report, error)

	// Transition commits the status and points change, and credits
	// creditPoints to the owner's profile counter, as one atomic write.
	// It must fail without mutating anything if the stored status no
	// longer matches expectedStatus.
	Transition(ctx context.Context, reportID string, expectedStatus, newStatus entity.ReportStatus, pointsAwarded, creditPoints int) (*entity.Report, error)
}
