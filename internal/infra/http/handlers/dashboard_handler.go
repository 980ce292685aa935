package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/anvika-estates/crm-backend/internal/usecase"
)

type DashboardHandler struct {
	Service *usecase.DashboardService
	Log     *zap.SugaredLogger
}

func NewDashboardHandler(service *usecase.DashboardService, log *zap.SugaredLogger) *DashboardHandler {
	return &DashboardHandler{Service: service, Log: log}
}

func (h *DashboardHandler) Routes(r chi.Router) {
	r.Get("/summary", h.Summary)
	r.Get("/recent-activity", h.RecentActivity)
	r.Get("/conversion-by-source", h.ConversionBySource)
	r.Get("/pipeline-value", h.PipelineValue)
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.TodaySummary(r.Context())
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *DashboardHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	limit := 8
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	items, err := h.Service.RecentActivity(r.Context(), limit)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *DashboardHandler) ConversionBySource(w http.ResponseWriter, r *http.Request) {
	rates, err := h.Service.ConversionRateBySource(r.Context())
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, rates)
}

func (h *DashboardHandler) PipelineValue(w http.ResponseWriter, r *http.Request) {
	value, err := h.Service.PipelineValue(r.Context())
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"pipelineValue": value})
}
