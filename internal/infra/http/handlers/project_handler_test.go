package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/anvika-estates/crm-backend/internal/entity"
	"github.com/anvika-estates/crm-backend/internal/infra/http/handlers"
)

type mockPlotRepository struct {
	mock.Mock
}

func (m *mockPlotRepository) List(ctx context.Context, projectID, status string) ([]*entity.Plot, error) {
	args := m.Called(ctx, projectID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Plot), args.Error(1)
}

func newPlotRouter(repo *mockPlotRepository) http.Handler {
	h := handlers.NewPlotHandler(repo, zap.NewNop().Sugar())
	r := chi.NewRouter()
	r.Get("/api/plots", h.List)
	return r
}

func TestPlotListFiltersByStatus(t *testing.T) {
	repo := new(mockPlotRepository)
	repo.On("List", mock.Anything, "proj-1", entity.PlotStatusAvailable).Return([]*entity.Plot{
		{ID: "plot-1", ProjectID: "proj-1", PlotNumber: "A-101", Status: entity.PlotStatusAvailable},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/plots?projectId=proj-1&status=available", nil)
	rec := httptest.NewRecorder()

	newPlotRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var plots []*entity.Plot
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plots))
	assert.Len(t, plots, 1)
	assert.Equal(t, "plot-1", plots[0].ID)
}

func TestPlotListUnknownStatusRejected(t *testing.T) {
	repo := new(mockPlotRepository)

	req := httptest.NewRequest(http.MethodGet, "/api/plots?status=bulldozed", nil)
	rec := httptest.NewRecorder()

	newPlotRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "status", resp.Field)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}
