package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greencampus/internal/domain/entity"
	"greencampus/pkg/errors"
)

func TestSubmitReportDefaults(t *testing.T) {
	store := newMemStore()
	uc := NewReportUseCase(store, store.profiles, &fakeUploader{})

	report, err := uc.SubmitReport(context.Background(), "user-1", SubmitReportInput{
		Location: "Behind Library",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, report.Status)
	assert.Equal(t, entity.SubmissionPoints, report.PointsAwarded)
	assert.Equal(t, "", report.ImageURL)
	assert.Equal(t, "user-1", report.UserID)
	assert.False(t, report.CreatedAt.IsZero())
}

func TestSubmitReportWithImage(t *testing.T) {
	store := newMemStore()
	uploader := &fakeUploader{}
	uc := NewReportUseCase(store, store.profiles, uploader)

	report, err := uc.SubmitReport(context.Background(), "user-1", SubmitReportInput{
		Location:    "West parking lot",
		Image:       strings.NewReader("jpeg-bytes"),
		ContentType: "image/jpeg",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, uploader.uploads)
	assert.Contains(t, report.ImageURL, "https://storage.example.com/")
}

func TestSubmitReportUploadFailureWritesNoRecord(t *testing.T) {
	store := newMemStore()
	uc := NewReportUseCase(store, store.profiles, &fakeUploader{fail: true})

	_, err := uc.SubmitReport(context.Background(), "user-1", SubmitReportInput{
		Location:    "Cafeteria entrance",
		Image:       strings.NewReader("jpeg-bytes"),
		ContentType: "image/jpeg",
	})

	assert.True(t, errors.Is(err, "UPLOAD_FAILED"))
	assert.Empty(t, store.reports, "a failed upload must leave no record behind")
}

func TestSubmitReportRequiresLocation(t *testing.T) {
	store := newMemStore()
	uc := NewReportUseCase(store, store.profiles, &fakeUploader{})

	_, err := uc.SubmitReport(context.Background(), "user-1", SubmitReportInput{Location: "   "})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestProfileViewReturnsReportsNewestFirst(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.profiles.Create(context.Background(), &entity.Profile{
		UserID:   "user-1",
		Username: "reporter",
		Role:     entity.RoleUser,
		Points:   50,
	}))
	uc := NewReportUseCase(store, store.profiles, &fakeUploader{})

	old, err := uc.SubmitReport(context.Background(), "user-1", SubmitReportInput{Location: "first"})
	require.NoError(t, err)
	store.reports[old.ID].CreatedAt = time.Now().Add(-time.Hour)

	recent, err := uc.SubmitReport(context.Background(), "user-1", SubmitReportInput{Location: "second"})
	require.NoError(t, err)

	_, err = uc.SubmitReport(context.Background(), "someone-else", SubmitReportInput{Location: "third"})
	require.NoError(t, err)

	profile, reports, err := uc.ProfileView(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, 50, profile.Points)
	require.Len(t, reports, 2)
	assert.Equal(t, recent.ID, reports[0].ID)
	assert.Equal(t, old.ID, reports[1].ID)
}

func TestProfileViewUnknownUser(t *testing.T) {
	store := newMemStore()
	uc := NewReportUseCase(store, store.profiles, &fakeUploader{})

	_, _, err := uc.ProfileView(context.Background(), "nobody")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
