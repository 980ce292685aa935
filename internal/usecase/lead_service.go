package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/anvika-estates/crm-backend/internal/entity"
)

type LeadService struct {
	Repo LeadRepository
}

func NewLeadService(repo LeadRepository) *LeadService {
	return &LeadService{Repo: repo}
}

func (s *LeadService) Create(ctx context.Context, in CreateLeadInput) (*entity.Lead, error) {
	if verr := validateCreateLead(in); verr != nil {
		return nil, verr
	}

	lead := entity.NewLead(in.FirstName, in.LastName, in.Phone, in.Source)
	lead.Email = in.Email
	lead.Company = in.Company
	lead.Budget = in.Budget
	lead.Notes = in.Notes
	lead.AssignedTo = in.AssignedTo
	lead.LastContactDate = in.LastContactDate
	if in.Status != "" {
		lead.Status = in.Status
	}
	if in.InterestLevel != "" {
		lead.InterestLevel = in.InterestLevel
	}
	if len(in.PropertyInterests) > 0 {
		lead.PropertyInterests = in.PropertyInterests
	}

	if err := s.Repo.Create(ctx, lead); err != nil {
		return nil, &StorageError{Op: "create lead", Err: err}
	}
	return lead, nil
}

// Update applies only the supplied fields, re-validates anything touched
// and persists the whole row in one statement, so a failed write leaves
// the stored lead untouched.
func (s *LeadService) Update(ctx context.Context, id string, in UpdateLeadInput) (*entity.Lead, error) {
	if verr := validateUpdateLead(in); verr != nil {
		return nil, verr
	}

	lead, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "find lead", Err: err}
	}
	if lead == nil {
		return nil, &NotFoundError{Entity: "lead", ID: id}
	}

	if in.FirstName != nil {
		lead.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		lead.LastName = *in.LastName
	}
	if in.Email != nil {
		lead.Email = *in.Email
	}
	if in.Phone != nil {
		lead.Phone = *in.Phone
	}
	if in.Company != nil {
		lead.Company = *in.Company
	}
	if in.Status != nil {
		lead.Status = *in.Status
	}
	if in.Source != nil {
		lead.Source = *in.Source
	}
	if in.InterestLevel != nil {
		lead.InterestLevel = *in.InterestLevel
	}
	if in.Budget != nil {
		lead.Budget = *in.Budget
	}
	if in.Notes != nil {
		lead.Notes = *in.Notes
	}
	if in.PropertyInterests != nil {
		lead.PropertyInterests = *in.PropertyInterests
	}
	if in.AssignedTo != nil {
		lead.AssignedTo = *in.AssignedTo
	}
	if in.LastContactDate != nil {
		lead.LastContactDate = in.LastContactDate
	}
	lead.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, lead); err != nil {
		return nil, &StorageError{Op: "update lead", Err: err}
	}
	return lead, nil
}

func (s *LeadService) Get(ctx context.Context, id string) (*entity.Lead, error) {
	lead, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "find lead", Err: err}
	}
	if lead == nil {
		return nil, &NotFoundError{Entity: "lead", ID: id}
	}
	return lead, nil
}

// Delete does not cascade: appointments and follow-ups referencing the
// lead survive and render as "Unknown Lead".
func (s *LeadService) Delete(ctx context.Context, id string) error {
	found, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return &StorageError{Op: "delete lead", Err: err}
	}
	if !found {
		return &NotFoundError{Entity: "lead", ID: id}
	}
	return nil
}

func (s *LeadService) List(ctx context.Context, q LeadQuery) ([]*entity.Lead, error) {
	leads, err := s.Repo.List(ctx, q)
	if err != nil {
		return nil, &StorageError{Op: "list leads", Err: err}
	}

	switch q.BudgetFilter {
	case BudgetFilterWith:
		filtered := make([]*entity.Lead, 0, len(leads))
		for _, l := range leads {
			if l.HasBudget() {
				filtered = append(filtered, l)
			}
		}
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].BudgetValue() > filtered[j].BudgetValue()
		})
		leads = filtered
	case BudgetFilterNone:
		filtered := make([]*entity.Lead, 0, len(leads))
		for _, l := range leads {
			if !l.HasBudget() {
				filtered = append(filtered, l)
			}
		}
		leads = filtered
	}
	return leads, nil
}
