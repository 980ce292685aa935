package usecase

import (
	"time"

	"github.com/anvika-estates/crm-backend/internal/entity"
)

type CreateLeadInput struct {
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Company           string     `json:"company"`
	Status            string     `json:"status"`
	Source            string     `json:"source"`
	InterestLevel     string     `json:"interestLevel"`
	Budget            string     `json:"budget"`
	Notes             string     `json:"notes"`
	PropertyInterests []string   `json:"propertyInterests"`
	AssignedTo        string     `json:"assignedTo"`
	LastContactDate   *time.Time `json:"lastContactDate"`
}

// UpdateLeadInput carries pointers so absent JSON fields stay untouched
// instead of resetting to zero values.
type UpdateLeadInput struct {
	FirstName         *string    `json:"firstName"`
	LastName          *string    `json:"lastName"`
	Email             *string    `json:"email"`
	Phone             *string    `json:"phone"`
	Company           *string    `json:"company"`
	Status            *string    `json:"status"`
	Source            *string    `json:"source"`
	InterestLevel     *string    `json:"interestLevel"`
	Budget            *string    `json:"budget"`
	Notes             *string    `json:"notes"`
	PropertyInterests *[]string  `json:"propertyInterests"`
	AssignedTo        *string    `json:"assignedTo"`
	LastContactDate   *time.Time `json:"lastContactDate"`
}

const (
	BudgetFilterAll  = "all"
	BudgetFilterWith = "with_budget"
	BudgetFilterNone = "no_budget"
)

type LeadQuery struct {
	Search       string
	Status       string // "" or "all" matches every status
	Source       string
	BudgetFilter string
}

type CreateAppointmentInput struct {
	LeadID          string    `json:"leadId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	AppointmentDate time.Time `json:"appointmentDate"`
	DurationMinutes *int      `json:"duration"`
	Status          string    `json:"status"`
}

type UpdateAppointmentInput struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Location        *string    `json:"location"`
	AppointmentDate *time.Time `json:"appointmentDate"`
	DurationMinutes *int       `json:"duration"`
	Status          *string    `json:"status"`
	ReminderSent    *bool      `json:"reminderSent"`
}

type AppointmentQuery struct {
	Search string
	Status string
}

type CreateFollowUpInput struct {
	LeadID      string    `json:"leadId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	AssignedTo  string    `json:"assignedTo"`
}

type UpdateFollowUpInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	AssignedTo  *string    `json:"assignedTo"`
}

type FollowUpQuery struct {
	Search   string
	Status   string
	Priority string
}

type ImportResult struct {
	Count    int              `json:"count"`
	Rejected []ImportRowError `json:"rejected"`
}

type LeadStats struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Contacted int `json:"contacted"`
	Qualified int `json:"qualified"`
	Converted int `json:"converted"`
	// "lost" is the dashboard label for status not_interested. The
	// mismatch is load-bearing: the frontend keys on it.
	Lost int `json:"lost"`
}

type SourceConversion struct {
	Source    string `json:"source"`
	Total     int    `json:"total"`
	Converted int    `json:"converted"`
	Rate      int    `json:"rate"`
}

type ActivityItem struct {
	Type      string    `json:"type"` // "lead" or "appointment"
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

type TodaySummary struct {
	AppointmentsToday     int `json:"appointmentsToday"`
	FollowUpsToday        int `json:"followUpsToday"`
	FollowUpsOverdueCount int `json:"followUpsOverdueCount"`
}

type RecommendationRequest struct {
	Budget       string `json:"budget"`
	Location     string `json:"location"`
	Purpose      string `json:"purpose"` // investment or residence
	HorizonYears int    `json:"horizonYears"`
}

type PlotPick struct {
	PlotID    string `json:"plotId"`
	Score     int    `json:"score"`
	Rationale string `json:"rationale"`
}

type RecommendationResult struct {
	Picks []PlotPick     `json:"picks"`
	Plots []*entity.Plot `json:"plots"`
}

type ReminderPayload struct {
	AppointmentID string    `json:"appointment_id"`
	LeadID        string    `json:"lead_id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	StartsAt      time.Time `json:"starts_at"`
}
