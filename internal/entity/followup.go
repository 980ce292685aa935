package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	FollowUpStatusPending    = "pending"
	FollowUpStatusInProgress = "in_progress"
	FollowUpStatusCompleted  = "completed"
	FollowUpStatusCancelled  = "cancelled"
)

var ValidFollowUpStatuses = map[string]bool{
	FollowUpStatusPending:    true,
	FollowUpStatusInProgress: true,
	FollowUpStatusCompleted:  true,
	FollowUpStatusCancelled:  true,
}

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

var ValidFollowUpPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

type FollowUp struct {
	ID          string     `json:"id"`
	LeadID      string     `json:"leadId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     time.Time  `json:"dueDate"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Populated on list reads via join, not stored.
	LeadName string `json:"leadName,omitempty"`
}

func NewFollowUp(leadID, title string, dueDate time.Time) *FollowUp {
	now := time.Now()
	return &FollowUp{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		Title:     title,
		DueDate:   dueDate,
		Priority:  PriorityMedium,
		Status:    FollowUpStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOverdue compares calendar days, not timestamps: a follow-up due
// earlier today is not overdue. Completed and cancelled follow-ups are
// never overdue.
func (f *FollowUp) IsOverdue(today time.Time) bool {
	if f.Status == FollowUpStatusCompleted || f.Status == FollowUpStatusCancelled {
		return false
	}
	return dayOf(f.DueDate).Before(dayOf(today))
}

func (f *FollowUp) IsDueToday(today time.Time) bool {
	return sameDay(f.DueDate, today)
}

// IsUpcoming applies to pending follow-ups due after today.
func (f *FollowUp) IsUpcoming(today time.Time) bool {
	return f.Status == FollowUpStatusPending && dayOf(f.DueDate).After(dayOf(today))
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
