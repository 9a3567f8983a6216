package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"

	"greencampus/internal/domain/entity"
	"greencampus/pkg/errors"
)

// In-memory doubles for the repository and collaborator interfaces. They
// mirror the store semantics the Firestore adapters provide, including the
// status precondition on Transition.

type memReportRepo struct {
	reports map[string]*entity.Report
}

func newMemReportRepo() *memReportRepo {
	return &memReportRepo{reports: make(map[string]*entity.Report)}
}

func (r *memReportRepo) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now
	stored := *report
	r.reports[report.ID] = &stored
	return nil
}

func (r *memReportRepo) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	report, ok := r.reports[id]
	if !ok {
		return nil, errors.NotFound("Report", nil)
	}
	copied := *report
	return &copied, nil
}

func (r *memReportRepo) ListByStatus(ctx context.Context, status entity.ReportStatus, limit int) ([]*entity.Report, error) {
	var out []*entity.Report
	for _, report := range r.reports {
		if report.Status == status {
			copied := *report
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memReportRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Report, error) {
	var out []*entity.Report
	for _, report := range r.reports {
		if report.UserID == userID {
			copied := *report
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memProfileRepo struct {
	profiles map[string]*entity.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[string]*entity.Profile)}
}

func (r *memReportRepo) transition(profiles *memProfileRepo, reportID string, expectedStatus, newStatus entity.ReportStatus, pointsAwarded, creditPoints int) (*entity.Report, error) {
	report, ok := r.reports[reportID]
	if !ok {
		return nil, errors.NotFound("Report", nil)
	}
	if report.Status != expectedStatus {
		return nil, errors.InvalidTransition("Report status changed since it was read", nil)
	}
	report.Status = newStatus
	report.PointsAwarded = pointsAwarded
	report.UpdatedAt = time.Now()
	if creditPoints != 0 {
		profile, ok := profiles.profiles[report.UserID]
		if !ok {
			return nil, errors.Internal("Failed to get submitter profile", nil)
		}
		profile.Points += creditPoints
	}
	copied := *report
	return &copied, nil
}

// memStore binds the two repos so Transition can credit profiles the way the
// Firestore transaction does.
type memStore struct {
	*memReportRepo
	profiles *memProfileRepo
}

func newMemStore() *memStore {
	return &memStore{
		memReportRepo: newMemReportRepo(),
		profiles:      newMemProfileRepo(),
	}
}

func (s *memStore) Transition(ctx context.Context, reportID string, expectedStatus, newStatus entity.ReportStatus, pointsAwarded, creditPoints int) (*entity.Report, error) {
	return s.transition(s.profiles, reportID, expectedStatus, newStatus, pointsAwarded, creditPoints)
}

func (r *memProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	stored := *profile
	r.profiles[profile.UserID] = &stored
	return nil
}

func (r *memProfileRepo) GetByID(ctx context.Context, userID string) (*entity.Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}
	copied := *profile
	return &copied, nil
}

func (r *memProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	for _, profile := range r.profiles {
		if profile.Email == email {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Profile", nil)
}

func (r *memProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	stored := *profile
	r.profiles[profile.UserID] = &stored
	return nil
}

func (r *memProfileRepo) TopByPoints(ctx context.Context, limit int) ([]*entity.Profile, error) {
	var out []*entity.Profile
	for _, profile := range r.profiles {
		copied := *profile
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].Username < out[j].Username
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeUploader struct {
	uploads int
	fail    bool
}

func (u *fakeUploader) UploadImage(ctx context.Context, file io.Reader, contentType string) (string, error) {
	if u.fail {
		return "", fmt.Errorf("storage unreachable")
	}
	u.uploads++
	return fmt.Sprintf("https://storage.example.com/reports/object-%d.jpg", u.uploads), nil
}

type fakeLeaderboardCache struct {
	entries     []entity.LeaderboardEntry
	hit         bool
	sets        int
	invalidated int
}

func (c *fakeLeaderboardCache) Get(ctx context.Context) ([]entity.LeaderboardEntry, bool) {
	if !c.hit {
		return nil, false
	}
	return c.entries, true
}

func (c *fakeLeaderboardCache) Set(ctx context.Context, entries []entity.LeaderboardEntry) {
	c.entries = entries
	c.sets++
}

func (c *fakeLeaderboardCache) Invalidate(ctx context.Context) {
	c.invalidated++
	c.hit = false
}
