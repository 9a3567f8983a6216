package entity

import (
	"time"
)

type ReportStatus string

const (
	StatusPending    ReportStatus = "pending"
	StatusInProgress ReportStatus = "in_progress"
	StatusCompleted  ReportStatus = "completed"
	StatusRejected   ReportStatus = "rejected"
)

type TriageAction string

const (
	ActionStart    TriageAction = "start"
	ActionComplete TriageAction = "complete"
	ActionReject   TriageAction = "reject"
)

const (
	// SubmissionPoints is recorded on the report at creation time. It is not
	// credited to the profile; only a completed triage settles points.
	SubmissionPoints = 10
	// CompletionPoints replaces whatever the report carried once an admin
	// completes it.
	CompletionPoints = 50
)

// Report is a single waste observation submitted by a user: a location
// description, an optional photo, and a triage status.
type Report struct {
	ID            string       `json:"id" firestore:"id"`
	UserID        string       `json:"user_id" firestore:"userId"`
	ImageURL      string       `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	Location      string       `json:"location" firestore:"location"`
	Status        ReportStatus `json:"status" firestore:"status"`
	PointsAwarded int          `json:"points_awarded" firestore:"pointsAwarded"`
	CreatedAt     time.Time    `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time    `json:"updated_at" firestore:"updatedAt"`
}

// transitions is the complete triage graph. A report must pass through
// in_progress before it can be completed; completed and rejected are
// terminal.
var transitions = map[ReportStatus]map[TriageAction]ReportStatus{
	StatusPending: {
		ActionStart:  StatusInProgress,
		ActionReject: StatusRejected,
	},
	StatusInProgress: {
		ActionComplete: StatusCompleted,
	},
}

// NextStatus resolves a triage action against the current status. The second
// return value is false when the action is undefined for that status.
func (s ReportStatus) NextStatus(action TriageAction) (ReportStatus, bool) {
	next, ok := transitions[s][action]
	return next, ok
}

func (s ReportStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

func (s ReportStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

func (a TriageAction) IsValid() bool {
	switch a {
	case ActionStart, ActionComplete, ActionReject:
		return true
	}
	return false
}

// SettlePoints returns the pointsAwarded value a report carries after the
// given action. Completion always pays the fixed award regardless of the
// prior value, rejection always zeroes it.
func SettlePoints(action TriageAction, current int) int {
	switch action {
	case ActionComplete:
		return CompletionPoints
	case ActionReject:
		return 0
	default:
		return current
	}
}
