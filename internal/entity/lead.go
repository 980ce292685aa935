package entity

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lead statuses. Transitions are intentionally unconstrained: the sales
// dashboard moves leads back and forth freely, so any status may follow
// any other.
const (
	LeadStatusNew              = "new"
	LeadStatusContacted        = "contacted"
	LeadStatusQualified        = "qualified"
	LeadStatusShowingScheduled = "showing_scheduled"
	LeadStatusNotInterested    = "not_interested"
	LeadStatusConverted        = "converted"
)

const (
	InterestLow      = "low"
	InterestMedium   = "medium"
	InterestHigh     = "high"
	InterestVeryHigh = "very_high"
)

const SourceImport = "import"

var ValidLeadStatuses = map[string]bool{
	LeadStatusNew:              true,
	LeadStatusContacted:        true,
	LeadStatusQualified:        true,
	LeadStatusShowingScheduled: true,
	LeadStatusNotInterested:    true,
	LeadStatusConverted:        true,
}

var ValidLeadSources = map[string]bool{
	"website":       true,
	"referral":      true,
	"social_media":  true,
	"advertisement": true,
	"cold_call":     true,
	"walk_in":       true,
	SourceImport:    true,
}

var ValidInterestLevels = map[string]bool{
	InterestLow:      true,
	InterestMedium:   true,
	InterestHigh:     true,
	InterestVeryHigh: true,
}

type Lead struct {
	ID                string     `json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Email             string     `json:"email,omitempty"`
	Phone             string     `json:"phone"`
	Company           string     `json:"company,omitempty"`
	Status            string     `json:"status"`
	Source            string     `json:"source"`
	InterestLevel     string     `json:"interestLevel"`
	Budget            string     `json:"budget,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	PropertyInterests []string   `json:"propertyInterests"`
	AssignedTo        string     `json:"assignedTo,omitempty"`
	LastContactDate   *time.Time `json:"lastContactDate,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// NewLead builds a lead with defaults applied. Field validation happens in
// the usecase layer so errors stay field-attributed.
func NewLead(firstName, lastName, phone, source string) *Lead {
	now := time.Now()
	return &Lead{
		ID:                uuid.New().String(),
		FirstName:         firstName,
		LastName:          lastName,
		Phone:             phone,
		Source:            source,
		Status:            LeadStatusNew,
		InterestLevel:     InterestMedium,
		PropertyInterests: []string{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (l *Lead) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}

// BudgetValue interprets the free-text budget field as a number.
func (l *Lead) BudgetValue() float64 {
	return ParseBudget(l.Budget)
}

// HasBudget reports whether the budget parses to a finite value > 0.
func (l *Lead) HasBudget() bool {
	return l.BudgetValue() > 0
}

// ParseBudget strips every rune that is not a digit, dot or minus and
// parses the remainder. "₹50,000" → 50000, "50k" → 50, "call me" → 0.
func ParseBudget(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}
