package entity

import (
	"time"
)

// Profile is the per-user record behind the leaderboard. Points is a running
// counter credited by the same write that completes a report, never
// recomputed from the reports collection on read.
type Profile struct {
	UserID    string    `json:"user_id" firestore:"userId"`
	Username  string    `json:"username" firestore:"username"`
	Email     string    `json:"email" firestore:"email"`
	Role      string    `json:"role" firestore:"role"`
	Points    int       `json:"points" firestore:"points"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// LeaderboardEntry is the public projection of a profile.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
}
