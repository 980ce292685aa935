package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anvika-estates/crm-backend/internal/entity"
	"github.com/anvika-estates/crm-backend/internal/usecase"
)

func leadWith(status, source, budget string) *entity.Lead {
	l := entity.NewLead("Test", "Lead", "9999999999", source)
	l.Status = status
	l.Budget = budget
	return l
}

func TestLeadStatsCountsNotInterestedAsLost(t *testing.T) {
	leads := []*entity.Lead{
		leadWith(entity.LeadStatusNew, "website", ""),
		leadWith(entity.LeadStatusContacted, "website", ""),
		leadWith(entity.LeadStatusQualified, "referral", ""),
		leadWith(entity.LeadStatusConverted, "referral", ""),
		leadWith(entity.LeadStatusNotInterested, "walk_in", ""),
		leadWith(entity.LeadStatusNotInterested, "walk_in", ""),
	}

	repo := new(MockLeadRepository)
	repo.On("List", mock.Anything, mock.Anything).Return(leads, nil)

	svc := usecase.NewDashboardService(repo, nil, nil)
	stats, err := svc.LeadStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 1, stats.New)
	assert.Equal(t, 1, stats.Contacted)
	assert.Equal(t, 1, stats.Qualified)
	assert.Equal(t, 1, stats.Converted)
	assert.Equal(t, 2, stats.Lost)
}

func TestConversionRateBySource(t *testing.T) {
	leads := []*entity.Lead{
		leadWith(entity.LeadStatusConverted, "referral", ""),
		leadWith(entity.LeadStatusNew, "referral", ""),
		leadWith(entity.LeadStatusConverted, "referral", ""),
		leadWith(entity.LeadStatusNew, "website", ""),
	}

	repo := new(MockLeadRepository)
	repo.On("List", mock.Anything, mock.Anything).Return(leads, nil)

	svc := usecase.NewDashboardService(repo, nil, nil)
	out, err := svc.ConversionRateBySource(context.Background())

	assert.NoError(t, err)
	assert.Len(t, out, 2)

	// Sorted by source name.
	assert.Equal(t, "referral", out[0].Source)
	assert.Equal(t, 3, out[0].Total)
	assert.Equal(t, 2, out[0].Converted)
	assert.Equal(t, 67, out[0].Rate)

	assert.Equal(t, "website", out[1].Source)
	assert.Equal(t, 0, out[1].Rate)
}

func TestConversionRateEmpty(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("List", mock.Anything, mock.Anything).Return([]*entity.Lead{}, nil)

	svc := usecase.NewDashboardService(repo, nil, nil)
	out, err := svc.ConversionRateBySource(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestPipelineValueSkipsUnparsableBudgets(t *testing.T) {
	leads := []*entity.Lead{
		leadWith(entity.LeadStatusNew, "website", "₹50,00,000"),
		leadWith(entity.LeadStatusNew, "website", "call to discuss"),
		leadWith(entity.LeadStatusNew, "website", ""),
		leadWith(entity.LeadStatusNew, "website", "250000"),
	}

	repo := new(MockLeadRepository)
	repo.On("List", mock.Anything, mock.Anything).Return(leads, nil)

	svc := usecase.NewDashboardService(repo, nil, nil)
	total, err := svc.PipelineValue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 5250000.0, total)
}

func TestRecentActivityMergesAndTruncates(t *testing.T) {
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	leads := make([]*entity.Lead, 3)
	for i := range leads {
		leads[i] = leadWith(entity.LeadStatusNew, "website", "")
		leads[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
	}
	appts := []*entity.Appointment{
		entity.NewAppointment("lead-1", "Site visit", base.Add(5*time.Hour)),
		entity.NewAppointment("lead-2", "Handover", base.Add(-2*time.Hour)),
	}

	leadRepo := new(MockLeadRepository)
	leadRepo.On("List", mock.Anything, mock.Anything).Return(leads, nil)
	apptRepo := new(MockAppointmentRepository)
	apptRepo.On("List", mock.Anything, mock.Anything).Return(appts, nil)

	svc := usecase.NewDashboardService(leadRepo, apptRepo, nil)
	items, err := svc.RecentActivity(context.Background(), 4)

	assert.NoError(t, err)
	assert.Len(t, items, 4)
	assert.Equal(t, "appointment", items[0].Type)
	assert.Equal(t, "Site visit", items[0].Title)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i-1].Timestamp.Before(items[i].Timestamp))
	}
}

func TestTodaySummaryCountsOverdue(t *testing.T) {
	now := time.Now()
	pendingYesterday := entity.NewFollowUp("lead-1", "Call back", now.AddDate(0, 0, -1))
	dueToday := entity.NewFollowUp("lead-2", "Send docs", now)
	completedYesterday := entity.NewFollowUp("lead-3", "Old task", now.AddDate(0, 0, -1))
	completedYesterday.Status = entity.FollowUpStatusCompleted

	apptRepo := new(MockAppointmentRepository)
	apptRepo.On("ListOnDay", mock.Anything, mock.Anything).Return([]*entity.Appointment{
		entity.NewAppointment("lead-1", "Site visit", now),
	}, nil)
	fuRepo := new(MockFollowUpRepository)
	fuRepo.On("List", mock.Anything, mock.Anything).Return([]*entity.FollowUp{
		pendingYesterday, dueToday, completedYesterday,
	}, nil)

	svc := usecase.NewDashboardService(nil, apptRepo, fuRepo)
	summary, err := svc.TodaySummary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.AppointmentsToday)
	assert.Equal(t, 1, summary.FollowUpsToday)
	assert.Equal(t, 1, summary.FollowUpsOverdueCount)
}
