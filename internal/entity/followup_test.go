package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/anvika-estates/crm-backend/internal/entity"
)

var today = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func followUpDue(due time.Time, status string) *entity.FollowUp {
	f := entity.NewFollowUp("lead-1", "call back", due)
	f.Status = status
	return f
}

func TestFollowUpOverdue(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	assert.True(t, followUpDue(yesterday, entity.FollowUpStatusPending).IsOverdue(today))
	assert.True(t, followUpDue(yesterday, entity.FollowUpStatusInProgress).IsOverdue(today))

	// Calendar-day comparison: due earlier today is not overdue.
	earlierToday := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	assert.False(t, followUpDue(earlierToday, entity.FollowUpStatusPending).IsOverdue(today))

	assert.False(t, followUpDue(tomorrow, entity.FollowUpStatusPending).IsOverdue(today))

	// Completed and cancelled are never overdue, however old.
	assert.False(t, followUpDue(yesterday, entity.FollowUpStatusCompleted).IsOverdue(today))
	assert.False(t, followUpDue(today.AddDate(0, -3, 0), entity.FollowUpStatusCompleted).IsOverdue(today))
	assert.False(t, followUpDue(yesterday, entity.FollowUpStatusCancelled).IsOverdue(today))
}

func TestFollowUpDueToday(t *testing.T) {
	earlierToday := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)
	assert.True(t, followUpDue(earlierToday, entity.FollowUpStatusPending).IsDueToday(today))
	assert.True(t, followUpDue(today, entity.FollowUpStatusCompleted).IsDueToday(today))
	assert.False(t, followUpDue(today.AddDate(0, 0, 1), entity.FollowUpStatusPending).IsDueToday(today))
}

func TestFollowUpUpcoming(t *testing.T) {
	tomorrow := today.AddDate(0, 0, 1)

	assert.True(t, followUpDue(tomorrow, entity.FollowUpStatusPending).IsUpcoming(today))

	// Only pending follow-ups count as upcoming.
	assert.False(t, followUpDue(tomorrow, entity.FollowUpStatusInProgress).IsUpcoming(today))
	assert.False(t, followUpDue(tomorrow, entity.FollowUpStatusCompleted).IsUpcoming(today))
	assert.False(t, followUpDue(today, entity.FollowUpStatusPending).IsUpcoming(today))
}

func TestClassificationIsPure(t *testing.T) {
	f := followUpDue(today.AddDate(0, 0, -1), entity.FollowUpStatusPending)

	for i := 0; i < 3; i++ {
		assert.True(t, f.IsOverdue(today))
	}
	assert.Equal(t, entity.FollowUpStatusPending, f.Status)
	assert.Nil(t, f.CompletedAt)
}

func TestAppointmentIsOn(t *testing.T) {
	a := entity.NewAppointment("lead-1", "site visit", time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC))

	assert.True(t, a.IsOn(today))
	assert.False(t, a.IsOn(today.AddDate(0, 0, 1)))

	// Status does not matter for the day bucket.
	a.Status = entity.AppointmentStatusCancelled
	assert.True(t, a.IsOn(today))
}
