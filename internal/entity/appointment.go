package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	AppointmentStatusScheduled  = "scheduled"
	AppointmentStatusConfirmed  = "confirmed"
	AppointmentStatusInProgress = "in_progress"
	AppointmentStatusCompleted  = "completed"
	AppointmentStatusCancelled  = "cancelled"
	AppointmentStatusNoShow     = "no_show"
)

var ValidAppointmentStatuses = map[string]bool{
	AppointmentStatusScheduled:  true,
	AppointmentStatusConfirmed:  true,
	AppointmentStatusInProgress: true,
	AppointmentStatusCompleted:  true,
	AppointmentStatusCancelled:  true,
	AppointmentStatusNoShow:     true,
}

const (
	DefaultAppointmentDuration = 60
	MinAppointmentDuration     = 15
)

// Appointment references a lead by id only. The reference is resolved at
// read time; a deleted lead leaves the appointment in place and LeadName
// empty, which readers render as "Unknown Lead".
type Appointment struct {
	ID              string    `json:"id"`
	LeadID          string    `json:"leadId"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Location        string    `json:"location,omitempty"`
	AppointmentDate time.Time `json:"appointmentDate"`
	DurationMinutes int       `json:"duration"`
	Status          string    `json:"status"`
	ReminderSent    bool      `json:"reminderSent"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Populated on list reads via join, not stored.
	LeadName string `json:"leadName,omitempty"`
}

func NewAppointment(leadID, title string, date time.Time) *Appointment {
	now := time.Now()
	return &Appointment{
		ID:              uuid.New().String(),
		LeadID:          leadID,
		Title:           title,
		AppointmentDate: date,
		DurationMinutes: DefaultAppointmentDuration,
		Status:          AppointmentStatusScheduled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsOn reports whether the appointment falls on the given calendar day,
// regardless of status.
func (a *Appointment) IsOn(day time.Time) bool {
	return sameDay(a.AppointmentDate, day)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
