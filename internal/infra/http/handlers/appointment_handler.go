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

type AppointmentHandler struct {
	Service *usecase.AppointmentService
	Log     *zap.SugaredLogger
}

func NewAppointmentHandler(service *usecase.AppointmentService, log *zap.SugaredLogger) *AppointmentHandler {
	return &AppointmentHandler{Service: service, Log: log}
}

func (h *AppointmentHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/today", h.Today)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateAppointmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	appt, err := h.Service.Create(r.Context(), input)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	middleware.RecordAppointmentScheduled()
	writeJSON(w, http.StatusCreated, appt)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	appt, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, appt)
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateAppointmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	appt, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, appt)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := usecase.AppointmentQuery{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
	}

	appts, err := h.Service.List(r.Context(), q)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	if appts == nil {
		appts = []*entity.Appointment{}
	}
	writeJSON(w, http.StatusOK, appts)
}

func (h *AppointmentHandler) Today(w http.ResponseWriter, r *http.Request) {
	appts, err := h.Service.ListToday(r.Context())
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	if appts == nil {
		appts = []*entity.Appointment{}
	}
	writeJSON(w, http.StatusOK, appts)
}
