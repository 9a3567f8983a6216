package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greencampus/internal/adapter/api/handler"
	"greencampus/internal/domain/entity"
	"greencampus/internal/usecase"
	"greencampus/pkg/errors"
)

func TestHealthCheck(t *testing.T) {
	// Setup
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	healthHandler := handler.NewHealthHandler()

	// Assertions
	if assert.NoError(t, healthHandler.CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ok")
	}
}

// stubProfileRepo serves a fixed board for the leaderboard endpoint.
type stubProfileRepo struct {
	profiles []*entity.Profile
}

func (s *stubProfileRepo) Create(ctx context.Context, profile *entity.Profile) error { return nil }
func (s *stubProfileRepo) GetByID(ctx context.Context, userID string) (*entity.Profile, error) {
	return nil, errors.NotFound("Profile", nil)
}
func (s *stubProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return nil, errors.NotFound("Profile", nil)
}
func (s *stubProfileRepo) Update(ctx context.Context, profile *entity.Profile) error { return nil }
func (s *stubProfileRepo) TopByPoints(ctx context.Context, limit int) ([]*entity.Profile, error) {
	if len(s.profiles) > limit {
		return s.profiles[:limit], nil
	}
	return s.profiles, nil
}

func TestLeaderboardEndpoint(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/leaderboard?limit=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	repo := &stubProfileRepo{profiles: []*entity.Profile{
		{UserID: "a", Username: "ana", Points: 120},
		{UserID: "b", Username: "ben", Points: 70},
		{UserID: "c", Username: "cal", Points: 10},
	}}
	leaderboardHandler := handler.NewLeaderboardHandler(usecase.NewLeaderboardUseCase(repo, nil))

	require.NoError(t, leaderboardHandler.TopContributors(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Items []entity.LeaderboardEntry `json:"items"`
			Total int                       `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data.Items, 2)
	assert.Equal(t, "ana", body.Data.Items[0].Username)
	assert.GreaterOrEqual(t, body.Data.Items[0].Points, body.Data.Items[1].Points)
}
