package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatusDefinedEdges(t *testing.T) {
	cases := []struct {
		from   ReportStatus
		action TriageAction
		to     ReportStatus
	}{
		{StatusPending, ActionStart, StatusInProgress},
		{StatusPending, ActionReject, StatusRejected},
		{StatusInProgress, ActionComplete, StatusCompleted},
	}

	for _, tc := range cases {
		next, ok := tc.from.NextStatus(tc.action)
		assert.True(t, ok, "%s + %s should be defined", tc.from, tc.action)
		assert.Equal(t, tc.to, next)
	}
}

func TestNextStatusUndefinedEdges(t *testing.T) {
	// A report must pass through in_progress before completion, and
	// terminal reports accept nothing.
	cases := []struct {
		from   ReportStatus
		action TriageAction
	}{
		{StatusPending, ActionComplete},
		{StatusInProgress, ActionStart},
		{StatusInProgress, ActionReject},
		{StatusCompleted, ActionStart},
		{StatusCompleted, ActionComplete},
		{StatusCompleted, ActionReject},
		{StatusRejected, ActionStart},
		{StatusRejected, ActionComplete},
		{StatusRejected, ActionReject},
	}

	for _, tc := range cases {
		_, ok := tc.from.NextStatus(tc.action)
		assert.False(t, ok, "%s + %s must not be defined", tc.from, tc.action)
	}
}

func TestTransitionGraphIsExhaustive(t *testing.T) {
	statuses := []ReportStatus{StatusPending, StatusInProgress, StatusCompleted, StatusRejected}
	actions := []TriageAction{ActionStart, ActionComplete, ActionReject}

	defined := 0
	for _, s := range statuses {
		for _, a := range actions {
			next, ok := s.NextStatus(a)
			if ok {
				defined++
				assert.True(t, next.IsValid())
				assert.False(t, s.IsTerminal(), "terminal status %s must have no outgoing edge", s)
			}
		}
	}

	assert.Equal(t, 3, defined, "the triage graph has exactly three edges")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}

func TestSettlePoints(t *testing.T) {
	assert.Equal(t, 10, SettlePoints(ActionStart, 10), "start leaves points unchanged")
	assert.Equal(t, 50, SettlePoints(ActionComplete, 10))
	assert.Equal(t, 50, SettlePoints(ActionComplete, 0), "completion pays the fixed award regardless of prior value")
	assert.Equal(t, 0, SettlePoints(ActionReject, 10))
	assert.Equal(t, 0, SettlePoints(ActionReject, 50))
}

func TestValidators(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.False(t, ReportStatus("archived").IsValid())

	assert.True(t, ActionReject.IsValid())
	assert.False(t, TriageAction("delete").IsValid())
}
