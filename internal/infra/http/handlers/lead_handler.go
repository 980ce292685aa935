package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/anvika-estates/crm-backend/internal/entity"
	"github.com/anvika-estates/crm-backend/internal/infra/http/middleware"
	"github.com/anvika-estates/crm-backend/internal/usecase"
)

type LeadHandler struct {
	Service   *usecase.LeadService
	Dashboard *usecase.DashboardService
	Log       *zap.SugaredLogger
}

func NewLeadHandler(service *usecase.LeadService, dashboard *usecase.DashboardService, log *zap.SugaredLogger) *LeadHandler {
	return &LeadHandler{Service: service, Dashboard: dashboard, Log: log}
}

func (h *LeadHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/import", h.Import)
	r.Get("/stats", h.Stats)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	lead, err := h.Service.Create(r.Context(), input)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	middleware.RecordLeadCreated(lead.Source)
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	lead, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	q := usecase.LeadQuery{
		Search:       r.URL.Query().Get("search"),
		Status:       r.URL.Query().Get("status"),
		Source:       r.URL.Query().Get("source"),
		BudgetFilter: r.URL.Query().Get("budgetFilter"),
	}

	leads, err := h.Service.List(r.Context(), q)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	if leads == nil {
		leads = []*entity.Lead{}
	}
	writeJSON(w, http.StatusOK, leads)
}

// Import accepts a multipart form with the CSV under field "file".
// Response keeps the legacy "count" field and adds the rejected rows.
func (h *LeadHandler) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "multipart field 'file' is required", Field: "file"})
		return
	}
	defer file.Close()

	result, err := h.Service.ImportCSV(r.Context(), file)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	middleware.RecordLeadsImported(result.Count, len(result.Rejected))
	writeJSON(w, http.StatusOK, result)
}

func (h *LeadHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Dashboard.LeadStats(r.Context())
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
