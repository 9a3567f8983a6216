package usecase

import (
	"context"
	"time"

	"greencampus/internal/domain/entity"
	"greencampus/internal/domain/repository"
	"greencampus/pkg/errors"
	"greencampus/pkg/logger"
)

type AuthUseCase struct {
	profileRepo  repository.ProfileRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(profileRepo repository.ProfileRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		profileRepo:  profileRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Username string
}

type AuthResult struct {
	Profile *entity.Profile
	Token   string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := uc.profileRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	profile := &entity.Profile{
		UserID:    uid,
		Email:     input.Email,
		Username:  input.Username,
		Role:      entity.RoleUser,
		Points:    0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, errors.Internal("Failed to create profile record", err)
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		Profile: profile,
		Token:   token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	profile, err := uc.profileRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("Profile", err)
	}

	return &AuthResult{
		Profile: profile,
		Token:   token,
	}, nil
}

func (uc *AuthUseCase) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	newToken, err := uc.firebaseAuth.RefreshIdToken(refreshToken)
	if err != nil {
		return "", errors.Unauthorized("Invalid refresh token", err)
	}

	return newToken, nil
}

func (uc *AuthUseCase) GetProfileByID(ctx context.Context, userID string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("Profile", err)
	}
	return profile, nil
}
