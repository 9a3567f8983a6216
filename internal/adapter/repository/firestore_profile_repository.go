package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"greencampus/internal/domain/entity"
	"greencampus/internal/domain/repository"
	"greencampus/pkg/errors"
)

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err := r.client.Collection("profiles").Doc(profile.UserID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to create profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) GetByID(ctx context.Context, userID string) (*entity.Profile, error) {
	doc, err := r.client.Collection("profiles").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.Internal("Failed to get profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	query := r.client.Collection("profiles").Where("email", "==", email).Limit(1)
	iter := query.Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Profile", nil)
		}
		return nil, errors.Internal("Failed to query profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profile.UpdatedAt = time.Now()

	_, err := r.client.Collection("profiles").Doc(profile.UserID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to update profile", err)
	}

	return nil
}

// TopByPoints orders by points descending with username ascending as the
// tie-breaker so the leaderboard is stable across reads.
func (r *firestoreProfileRepository) TopByPoints(ctx context.Context, limit int) ([]*entity.Profile, error) {
	query := r.client.Collection("profiles").
		OrderBy("points", firestore.Desc).
		OrderBy("username", firestore.Asc).
		Limit(limit)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var profiles []*entity.Profile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list profiles", err)
		}

		var profile entity.Profile
		if err := doc.DataTo(&profile); err != nil {
			return nil, errors.Internal("Failed to parse profile data", err)
		}
		profiles = append(profiles, &profile)
	}

	return profiles, nil
}
