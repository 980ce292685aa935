package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/anvika-estates/crm-backend/internal/entity"
	"github.com/anvika-estates/crm-backend/internal/infra/http/handlers"
	"github.com/anvika-estates/crm-backend/internal/usecase"
)

type mockLeadRepository struct {
	mock.Mock
}

func (m *mockLeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *mockLeadRepository) Update(ctx context.Context, l *entity.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockLeadRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockLeadRepository) List(ctx context.Context, q usecase.LeadQuery) ([]*entity.Lead, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func newLeadRouter(repo usecase.LeadRepository) http.Handler {
	svc := usecase.NewLeadService(repo)
	dash := usecase.NewDashboardService(repo, nil, nil)
	h := handlers.NewLeadHandler(svc, dash, zap.NewNop().Sugar())

	r := chi.NewRouter()
	r.Route("/api/leads", h.Routes)
	return r
}

func TestLeadCreateReturns201(t *testing.T) {
	repo := new(mockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body := `{"firstName":"Asha","lastName":"Rao","phone":"9876543210","source":"website","budget":"₹50,00,000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/leads/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var lead entity.Lead
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "Asha", lead.FirstName)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
}

func TestLeadCreateValidationReturns400WithField(t *testing.T) {
	repo := new(mockLeadRepository)

	body := `{"firstName":"Asha","lastName":"Rao","phone":"9876543210","source":"website","email":"not-an-email"}`
	req := httptest.NewRequest(http.MethodPost, "/api/leads/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "email", resp.Field)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLeadGetMissingReturns404(t *testing.T) {
	repo := new(mockLeadRepository)
	repo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/leads/ghost", nil)
	rec := httptest.NewRecorder()

	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadListEmptyReturnsArray(t *testing.T) {
	repo := new(mockLeadRepository)
	repo.On("List", mock.Anything, mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/leads/", nil)
	rec := httptest.NewRecorder()

	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestLeadDeleteMissingReturns404(t *testing.T) {
	repo := new(mockLeadRepository)
	repo.On("Delete", mock.Anything, "ghost").Return(false, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/leads/ghost", nil)
	rec := httptest.NewRecorder()

	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadImportMultipart(t *testing.T) {
	repo := new(mockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	csv := "firstName,lastName,email,phone,company,status,source,interestLevel,budget,notes\n" +
		"Asha,Rao,asha@example.com,9876543210,,new,website,high,5000000,\n" +
		",Kumar,,8888888888,,,,,,\n"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "leads.csv")
	assert.NoError(t, err)
	_, err = part.Write([]byte(csv))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/leads/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	newLeadRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result usecase.ImportResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Count)
	assert.Len(t, result.Rejected, 1)
	assert.Equal(t, 2, result.Rejected[0].Row)
	assert.Equal(t, "firstName", result.Rejected[0].Field)
}
