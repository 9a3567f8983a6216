package usecase

import (
	"context"
	"io"

	"greencampus/internal/domain/entity"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	GenerateToken(ctx context.Context, uid string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	RefreshIdToken(refreshToken string) (string, error)
}

type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, contentType string) (string, error)
}

// LeaderboardCache sits in front of the profiles query. Implementations must
// treat every failure as a miss; the store remains the source of truth.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]entity.LeaderboardEntry, bool)
	Set(ctx context.Context, entries []entity.LeaderboardEntry)
	Invalidate(ctx context.Context)
}
