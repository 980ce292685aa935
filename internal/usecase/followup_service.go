package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/anvika-estates/crm-backend/internal/entity"
)

type FollowUpService struct {
	Repo FollowUpRepository
}

func NewFollowUpService(repo FollowUpRepository) *FollowUpService {
	return &FollowUpService{Repo: repo}
}

func (s *FollowUpService) Create(ctx context.Context, in CreateFollowUpInput) (*entity.FollowUp, error) {
	if verr := validateCreateFollowUp(in); verr != nil {
		return nil, verr
	}

	fu := entity.NewFollowUp(in.LeadID, in.Title, in.DueDate)
	fu.Description = in.Description
	fu.AssignedTo = in.AssignedTo
	if in.Priority != "" {
		fu.Priority = in.Priority
	}
	if in.Status != "" {
		fu.Status = in.Status
	}

	if err := s.Repo.Create(ctx, fu); err != nil {
		return nil, &StorageError{Op: "create follow-up", Err: err}
	}
	return fu, nil
}

func (s *FollowUpService) Update(ctx context.Context, id string, in UpdateFollowUpInput) (*entity.FollowUp, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, &ValidationError{"title", "must not be empty"}
	}
	if in.Priority != nil && !entity.ValidFollowUpPriorities[*in.Priority] {
		return nil, &ValidationError{"priority", "is not a recognized priority"}
	}
	if in.Status != nil && !entity.ValidFollowUpStatuses[*in.Status] {
		return nil, &ValidationError{"status", "is not a recognized status"}
	}

	fu, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "find follow-up", Err: err}
	}
	if fu == nil {
		return nil, &NotFoundError{Entity: "follow-up", ID: id}
	}

	if in.Title != nil {
		fu.Title = *in.Title
	}
	if in.Description != nil {
		fu.Description = *in.Description
	}
	if in.DueDate != nil {
		fu.DueDate = *in.DueDate
	}
	if in.Priority != nil {
		fu.Priority = *in.Priority
	}
	if in.Status != nil {
		fu.Status = *in.Status
	}
	if in.AssignedTo != nil {
		fu.AssignedTo = *in.AssignedTo
	}
	fu.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, fu); err != nil {
		return nil, &StorageError{Op: "update follow-up", Err: err}
	}
	return fu, nil
}

// Complete is a first-class transition: it both sets the status and
// stamps completedAt.
func (s *FollowUpService) Complete(ctx context.Context, id string) (*entity.FollowUp, error) {
	fu, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "find follow-up", Err: err}
	}
	if fu == nil {
		return nil, &NotFoundError{Entity: "follow-up", ID: id}
	}

	now := time.Now()
	fu.Status = entity.FollowUpStatusCompleted
	fu.CompletedAt = &now
	fu.UpdatedAt = now

	if err := s.Repo.Update(ctx, fu); err != nil {
		return nil, &StorageError{Op: "complete follow-up", Err: err}
	}
	return fu, nil
}

func (s *FollowUpService) Get(ctx context.Context, id string) (*entity.FollowUp, error) {
	fu, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "find follow-up", Err: err}
	}
	if fu == nil {
		return nil, &NotFoundError{Entity: "follow-up", ID: id}
	}
	return fu, nil
}

func (s *FollowUpService) Delete(ctx context.Context, id string) error {
	found, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return &StorageError{Op: "delete follow-up", Err: err}
	}
	if !found {
		return &NotFoundError{Entity: "follow-up", ID: id}
	}
	return nil
}

func (s *FollowUpService) List(ctx context.Context, q FollowUpQuery) ([]*entity.FollowUp, error) {
	fus, err := s.Repo.List(ctx, q)
	if err != nil {
		return nil, &StorageError{Op: "list follow-ups", Err: err}
	}
	for _, f := range fus {
		if f.LeadName == "" {
			f.LeadName = "Unknown Lead"
		}
	}
	return fus, nil
}
