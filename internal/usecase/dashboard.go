package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/anvika-estates/crm-backend/internal/entity"
)

// DashboardService is read-only glue over the three stores. Everything is
// recomputed per call from current state; the tables are small enough
// that O(n) scans are fine.
type DashboardService struct {
	Leads        LeadRepository
	Appointments AppointmentRepository
	FollowUps    FollowUpRepository
}

func NewDashboardService(leads LeadRepository, appts AppointmentRepository, fus FollowUpRepository) *DashboardService {
	return &DashboardService{Leads: leads, Appointments: appts, FollowUps: fus}
}

func (s *DashboardService) LeadStats(ctx context.Context) (*LeadStats, error) {
	leads, err := s.Leads.List(ctx, LeadQuery{})
	if err != nil {
		return nil, &StorageError{Op: "list leads", Err: err}
	}

	stats := &LeadStats{Total: len(leads)}
	for _, l := range leads {
		switch l.Status {
		case entity.LeadStatusNew:
			stats.New++
		case entity.LeadStatusContacted:
			stats.Contacted++
		case entity.LeadStatusQualified:
			stats.Qualified++
		case entity.LeadStatusConverted:
			stats.Converted++
		case entity.LeadStatusNotInterested:
			stats.Lost++
		}
	}
	return stats, nil
}

func (s *DashboardService) ConversionRateBySource(ctx context.Context) ([]SourceConversion, error) {
	leads, err := s.Leads.List(ctx, LeadQuery{})
	if err != nil {
		return nil, &StorageError{Op: "list leads", Err: err}
	}

	bySource := map[string]*SourceConversion{}
	for _, l := range leads {
		sc, ok := bySource[l.Source]
		if !ok {
			sc = &SourceConversion{Source: l.Source}
			bySource[l.Source] = sc
		}
		sc.Total++
		if l.Status == entity.LeadStatusConverted {
			sc.Converted++
		}
	}

	out := make([]SourceConversion, 0, len(bySource))
	for _, sc := range bySource {
		if sc.Total > 0 {
			sc.Rate = int(math.Round(100 * float64(sc.Converted) / float64(sc.Total)))
		}
		out = append(out, *sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	return out, nil
}

// PipelineValue sums the parsed budget over every lead. Blank and
// non-numeric budgets contribute 0.
func (s *DashboardService) PipelineValue(ctx context.Context) (float64, error) {
	leads, err := s.Leads.List(ctx, LeadQuery{})
	if err != nil {
		return 0, &StorageError{Op: "list leads", Err: err}
	}

	var total float64
	for _, l := range leads {
		total += l.BudgetValue()
	}
	return total, nil
}

// RecentActivity merges the newest leads (by createdAt) and appointments
// (by appointmentDate) into one feed, newest first, truncated to limit.
func (s *DashboardService) RecentActivity(ctx context.Context, limit int) ([]ActivityItem, error) {
	if limit <= 0 {
		limit = 8
	}

	leads, err := s.Leads.List(ctx, LeadQuery{})
	if err != nil {
		return nil, &StorageError{Op: "list leads", Err: err}
	}
	appts, err := s.Appointments.List(ctx, AppointmentQuery{})
	if err != nil {
		return nil, &StorageError{Op: "list appointments", Err: err}
	}

	items := make([]ActivityItem, 0, len(leads)+len(appts))
	for _, l := range leads {
		items = append(items, ActivityItem{
			Type:      "lead",
			ID:        l.ID,
			Title:     l.FullName(),
			Timestamp: l.CreatedAt,
		})
	}
	for _, a := range appts {
		items = append(items, ActivityItem{
			Type:      "appointment",
			ID:        a.ID,
			Title:     a.Title,
			Timestamp: a.AppointmentDate,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *DashboardService) TodaySummary(ctx context.Context) (*TodaySummary, error) {
	today := time.Now()

	appts, err := s.Appointments.ListOnDay(ctx, today)
	if err != nil {
		return nil, &StorageError{Op: "list today's appointments", Err: err}
	}
	fus, err := s.FollowUps.List(ctx, FollowUpQuery{})
	if err != nil {
		return nil, &StorageError{Op: "list follow-ups", Err: err}
	}

	summary := &TodaySummary{AppointmentsToday: len(appts)}
	for _, f := range fus {
		if f.IsDueToday(today) {
			summary.FollowUpsToday++
		}
		if f.IsOverdue(today) {
			summary.FollowUpsOverdueCount++
		}
	}
	return summary, nil
}
