package usecase

import (
	"context"
	"fmt"

	"github.com/anvika-estates/crm-backend/internal/entity"
)

// AdvisorError marks failures of the external LLM; handlers surface it as
// 502 rather than a server fault.
type AdvisorError struct {
	Err error
}

func (e *AdvisorError) Error() string {
	return fmt.Sprintf("advisor unavailable: %v", e.Err)
}

func (e *AdvisorError) Unwrap() error { return e.Err }

type RecommendationService struct {
	Plots   PlotRepository
	Advisor InvestmentAdvisor
}

func NewRecommendationService(plots PlotRepository, advisor InvestmentAdvisor) *RecommendationService {
	return &RecommendationService{Plots: plots, Advisor: advisor}
}

// Recommend forwards the buyer profile and the available plots to the
// advisor and keeps only picks that name a real plot, in case the model
// invents ids.
func (s *RecommendationService) Recommend(ctx context.Context, req RecommendationRequest) (*RecommendationResult, error) {
	if req.Budget == "" {
		return nil, &ValidationError{"budget", "is required"}
	}

	plots, err := s.Plots.List(ctx, "", entity.PlotStatusAvailable)
	if err != nil {
		return nil, &StorageError{Op: "list plots", Err: err}
	}
	if len(plots) == 0 {
		return &RecommendationResult{Picks: []PlotPick{}, Plots: []*entity.Plot{}}, nil
	}

	picks, err := s.Advisor.Recommend(ctx, req, plots)
	if err != nil {
		return nil, &AdvisorError{Err: err}
	}

	byID := make(map[string]*entity.Plot, len(plots))
	for _, p := range plots {
		byID[p.ID] = p
	}

	result := &RecommendationResult{Picks: []PlotPick{}, Plots: []*entity.Plot{}}
	for _, pick := range picks {
		plot, ok := byID[pick.PlotID]
		if !ok {
			continue
		}
		result.Picks = append(result.Picks, pick)
		result.Plots = append(result.Plots, plot)
	}
	return result, nil
}
