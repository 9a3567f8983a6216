package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"greencampus/internal/domain/entity"
	"greencampus/internal/domain/repository"
	"greencampus/pkg/errors"
)

type firestoreReportRepository struct {
	client *firestore.Client
}

func NewFirestoreReportRepository(client *firestore.Client) repository.ReportRepository {
	return &firestoreReportRepository{
		client: client,
	}
}

func (r *firestoreReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}

	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now

	_, err := r.client.Collection("reports").Doc(report.ID).Set(ctx, report)
	if err != nil {
		return errors.Internal("Failed to create report", err)
	}

	return nil
}

func (r *firestoreReportRepository) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	doc, err := r.client.Collection("reports").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Report", err)
		}
		return nil, errors.Internal("Failed to get report", err)
	}

	var report entity.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, errors.Internal("Failed to parse report data", err)
	}

	return &report, nil
}

func (r *firestoreReportRepository) ListByStatus(ctx context.Context, reportStatus entity.ReportStatus, limit int) ([]*entity.Report, error) {
	query := r.client.Collection("reports").
		Where("status", "==", string(reportStatus)).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)

	return r.listReports(ctx, query)
}

func (r *firestoreReportRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Report, error) {
	query := r.client.Collection("reports").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)

	return r.listReports(ctx, query)
}

func (r *firestoreReportRepository) listReports(ctx context.Context, query firestore.Query) ([]*entity.Report, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var reports []*entity.Report
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list reports", err)
		}

		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			return nil, errors.Internal("Failed to parse report data", err)
		}
		reports = append(reports, &report)
	}

	return reports, nil
}

// Transition runs the status change, the points settlement on the report,
// and the profile counter credit inside one Firestore transaction. The
// status precondition is re-checked against the stored document so a racing
// admin cannot move a report off a status it no longer holds.
func (r *firestoreReportRepository) Transition(ctx context.Context, reportID string, expectedStatus, newStatus entity.ReportStatus, pointsAwarded, creditPoints int) (*entity.Report, error) {
	var updated entity.Report

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		reportRef := r.client.Collection("reports").Doc(reportID)

		doc, err := tx.Get(reportRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Report", err)
			}
			return errors.Internal("Failed to get report", err)
		}

		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			return errors.Internal("Failed to parse report data", err)
		}

		if report.Status != expectedStatus {
			return errors.InvalidTransition("Report status changed since it was read", nil)
		}

		// Firestore requires all reads before any write in a transaction.
		var profileDoc *firestore.DocumentSnapshot
		profileRef := r.client.Collection("profiles").Doc(report.UserID)
		if creditPoints != 0 {
			profileDoc, err = tx.Get(profileRef)
			if err != nil {
				return errors.Internal("Failed to get submitter profile", err)
			}
		}

		now := time.Now()
		if err := tx.Update(reportRef, []firestore.Update{
			{Path: "status", Value: string(newStatus)},
			{Path: "pointsAwarded", Value: pointsAwarded},
			{Path: "updatedAt", Value: now},
		}); err != nil {
			return errors.Internal("Failed to update report", err)
		}

		if creditPoints != 0 {
			var profile entity.Profile
			if err := profileDoc.DataTo(&profile); err != nil {
				return errors.Internal("Failed to parse profile data", err)
			}
			if err := tx.Update(profileRef, []firestore.Update{
				{Path: "points", Value: profile.Points + creditPoints},
				{Path: "updatedAt", Value: now},
			}); err != nil {
				return errors.Internal("Failed to credit points", err)
			}
		}

		updated = report
		updated.Status = newStatus
		updated.PointsAwarded = pointsAwarded
		updated.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
