package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/anvika-estates/crm-backend/internal/entity"
)

type AppointmentService struct {
	Repo AppointmentRepository
}

func NewAppointmentService(repo AppointmentRepository) *AppointmentService {
	return &AppointmentService{Repo: repo}
}

// Create accepts an unknown leadId: references are resolved at read time,
// never enforced at write time.
func (s *AppointmentService) Create(ctx context.Context, in CreateAppointmentInput) (*entity.Appointment, error) {
	if verr := validateCreateAppointment(in); verr != nil {
		return nil, verr
	}

	appt := entity.NewAppointment(in.LeadID, in.Title, in.AppointmentDate)
	appt.Description = in.Description
	appt.Location = in.Location
	if in.DurationMinutes != nil {
		appt.DurationMinutes = *in.DurationMinutes
	}
	if in.Status != "" {
		appt.Status = in.Status
	}

	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, &StorageError{Op: "create appointment", Err: err}
	}
	return appt, nil
}

func (s *AppointmentService) Update(ctx context.Context, id string, in UpdateAppointmentInput) (*entity.Appointment, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, &ValidationError{"title", "must not be empty"}
	}
	if in.DurationMinutes != nil && *in.DurationMinutes < entity.MinAppointmentDuration {
		return nil, &ValidationError{"duration", "must be at least 15 minutes"}
	}
	if in.Status != nil && !entity.ValidAppointmentStatuses[*in.Status] {
		return nil, &ValidationError{"status", "is not a recognized status"}
	}

	appt, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "find appointment", Err: err}
	}
	if appt == nil {
		return nil, &NotFoundError{Entity: "appointment", ID: id}
	}

	if in.Title != nil {
		appt.Title = *in.Title
	}
	if in.Description != nil {
		appt.Description = *in.Description
	}
	if in.Location != nil {
		appt.Location = *in.Location
	}
	if in.AppointmentDate != nil {
		appt.AppointmentDate = *in.AppointmentDate
	}
	if in.DurationMinutes != nil {
		appt.DurationMinutes = *in.DurationMinutes
	}
	if in.Status != nil {
		appt.Status = *in.Status
	}
	if in.ReminderSent != nil {
		appt.ReminderSent = *in.ReminderSent
	}
	appt.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, appt); err != nil {
		return nil, &StorageError{Op: "update appointment", Err: err}
	}
	return appt, nil
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*entity.Appointment, error) {
	appt, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "find appointment", Err: err}
	}
	if appt == nil {
		return nil, &NotFoundError{Entity: "appointment", ID: id}
	}
	return appt, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	found, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return &StorageError{Op: "delete appointment", Err: err}
	}
	if !found {
		return &NotFoundError{Entity: "appointment", ID: id}
	}
	return nil
}

func (s *AppointmentService) List(ctx context.Context, q AppointmentQuery) ([]*entity.Appointment, error) {
	appts, err := s.Repo.List(ctx, q)
	if err != nil {
		return nil, &StorageError{Op: "list appointments", Err: err}
	}
	return resolveAppointmentLeadNames(appts), nil
}

// ListToday is a derived read over the calendar day, regardless of
// appointment status.
func (s *AppointmentService) ListToday(ctx context.Context) ([]*entity.Appointment, error) {
	appts, err := s.Repo.ListOnDay(ctx, time.Now())
	if err != nil {
		return nil, &StorageError{Op: "list today's appointments", Err: err}
	}
	return resolveAppointmentLeadNames(appts), nil
}

func resolveAppointmentLeadNames(appts []*entity.Appointment) []*entity.Appointment {
	for _, a := range appts {
		if a.LeadName == "" {
			a.LeadName = "Unknown Lead"
		}
	}
	return appts
}
