package usecase

import (
	"context"
	"time"

	"github.com/anvika-estates/crm-backend/internal/entity"
)

// Repositories return (nil, nil) from FindByID and false from Delete when
// the id is unknown; the services translate that into NotFoundError so
// handlers can tell 404 from 500.

type LeadRepository interface {
	Create(ctx context.Context, l *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	Update(ctx context.Context, l *entity.Lead) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, q LeadQuery) ([]*entity.Lead, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, a *entity.Appointment) error
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	Update(ctx context.Context, a *entity.Appointment) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, q AppointmentQuery) ([]*entity.Appointment, error)
	ListOnDay(ctx context.Context, day time.Time) ([]*entity.Appointment, error)
	ListDueForReminder(ctx context.Context, within time.Duration) ([]*entity.Appointment, error)
	MarkReminderSent(ctx context.Context, id string) error
}

type FollowUpRepository interface {
	Create(ctx context.Context, f *entity.FollowUp) error
	FindByID(ctx context.Context, id string) (*entity.FollowUp, error)
	Update(ctx context.Context, f *entity.FollowUp) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, q FollowUpQuery) ([]*entity.FollowUp, error)
}

type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Project, error)
	List(ctx context.Context) ([]*entity.Project, error)
}

type PlotRepository interface {
	List(ctx context.Context, projectID, status string) ([]*entity.Plot, error)
}

// InvestmentAdvisor is the LLM port. Implementations receive the buyer
// profile plus the candidate plots and return scored picks.
type InvestmentAdvisor interface {
	Recommend(ctx context.Context, req RecommendationRequest, plots []*entity.Plot) ([]PlotPick, error)
}

type ReminderProducer interface {
	PublishReminder(ctx context.Context, payload ReminderPayload) error
}

type ReminderMailer interface {
	SendAppointmentReminder(to, name, title, location string, startsAt time.Time) error
}
