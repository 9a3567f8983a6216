package usecase

import (
	"context"

	"greencampus/internal/domain/entity"
	"greencampus/internal/domain/repository"
)

const maxLeaderboardLimit = 50

type LeaderboardUseCase struct {
	profileRepo repository.ProfileRepository
	cache       LeaderboardCache
}

func NewLeaderboardUseCase(profileRepo repository.ProfileRepository, cache LeaderboardCache) *LeaderboardUseCase {
	return &LeaderboardUseCase{
		profileRepo: profileRepo,
		cache:       cache,
	}
}

// TopContributors returns at most limit entries ordered by points
// descending. The full board is cached; the limit is applied after the
// cache so every limit shares one entry.
func (uc *LeaderboardUseCase) TopContributors(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	if limit <= 0 || limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	if uc.cache != nil {
		if entries, ok := uc.cache.Get(ctx); ok {
			if len(entries) > limit {
				entries = entries[:limit]
			}
			return entries, nil
		}
	}

	profiles, err := uc.profileRepo.TopByPoints(ctx, maxLeaderboardLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.LeaderboardEntry, 0, len(profiles))
	for _, p := range profiles {
		entries = append(entries, entity.LeaderboardEntry{
			Username: p.Username,
			Points:   p.Points,
		})
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, entries)
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
