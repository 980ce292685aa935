package usecase

import (
	"net/mail"
	"strings"

	"github.com/anvika-estates/crm-backend/internal/entity"
)

func validateCreateLead(in CreateLeadInput) *ValidationError {
	if strings.TrimSpace(in.FirstName) == "" {
		return &ValidationError{"firstName", "is required"}
	}
	if strings.TrimSpace(in.LastName) == "" {
		return &ValidationError{"lastName", "is required"}
	}
	if strings.TrimSpace(in.Phone) == "" {
		return &ValidationError{"phone", "is required"}
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return &ValidationError{"email", "is invalid"}
		}
	}
	if strings.TrimSpace(in.Source) == "" {
		return &ValidationError{"source", "is required"}
	}
	if !entity.ValidLeadSources[in.Source] {
		return &ValidationError{"source", "is not a recognized source"}
	}
	if in.Status != "" && !entity.ValidLeadStatuses[in.Status] {
		return &ValidationError{"status", "is not a recognized status"}
	}
	if in.InterestLevel != "" && !entity.ValidInterestLevels[in.InterestLevel] {
		return &ValidationError{"interestLevel", "is not a recognized interest level"}
	}
	return nil
}

func validateUpdateLead(in UpdateLeadInput) *ValidationError {
	if in.FirstName != nil && strings.TrimSpace(*in.FirstName) == "" {
		return &ValidationError{"firstName", "must not be empty"}
	}
	if in.LastName != nil && strings.TrimSpace(*in.LastName) == "" {
		return &ValidationError{"lastName", "must not be empty"}
	}
	if in.Phone != nil && strings.TrimSpace(*in.Phone) == "" {
		return &ValidationError{"phone", "must not be empty"}
	}
	if in.Email != nil && *in.Email != "" {
		if _, err := mail.ParseAddress(*in.Email); err != nil {
			return &ValidationError{"email", "is invalid"}
		}
	}
	if in.Status != nil && !entity.ValidLeadStatuses[*in.Status] {
		return &ValidationError{"status", "is not a recognized status"}
	}
	if in.Source != nil && !entity.ValidLeadSources[*in.Source] {
		return &ValidationError{"source", "is not a recognized source"}
	}
	if in.InterestLevel != nil && !entity.ValidInterestLevels[*in.InterestLevel] {
		return &ValidationError{"interestLevel", "is not a recognized interest level"}
	}
	return nil
}

func validateCreateAppointment(in CreateAppointmentInput) *ValidationError {
	if strings.TrimSpace(in.LeadID) == "" {
		return &ValidationError{"leadId", "is required"}
	}
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{"title", "is required"}
	}
	if in.AppointmentDate.IsZero() {
		return &ValidationError{"appointmentDate", "is required"}
	}
	if in.DurationMinutes != nil && *in.DurationMinutes < entity.MinAppointmentDuration {
		return &ValidationError{"duration", "must be at least 15 minutes"}
	}
	if in.Status != "" && !entity.ValidAppointmentStatuses[in.Status] {
		return &ValidationError{"status", "is not a recognized status"}
	}
	return nil
}

func validateCreateFollowUp(in CreateFollowUpInput) *ValidationError {
	if strings.TrimSpace(in.LeadID) == "" {
		return &ValidationError{"leadId", "is required"}
	}
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{"title", "is required"}
	}
	if in.DueDate.IsZero() {
		return &ValidationError{"dueDate", "is required"}
	}
	if in.Priority != "" && !entity.ValidFollowUpPriorities[in.Priority] {
		return &ValidationError{"priority", "is not a recognized priority"}
	}
	if in.Status != "" && !entity.ValidFollowUpStatuses[in.Status] {
		return &ValidationError{"status", "is not a recognized status"}
	}
	return nil
}
