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

type FollowUpHandler struct {
	Service *usecase.FollowUpService
	Log     *zap.SugaredLogger
}

func NewFollowUpHandler(service *usecase.FollowUpService, log *zap.SugaredLogger) *FollowUpHandler {
	return &FollowUpHandler{Service: service, Log: log}
}

func (h *FollowUpHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/complete", h.Complete)
}

func (h *FollowUpHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateFollowUpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	fu, err := h.Service.Create(r.Context(), input)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, fu)
}

func (h *FollowUpHandler) Get(w http.ResponseWriter, r *http.Request) {
	fu, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, fu)
}

func (h *FollowUpHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateFollowUpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	fu, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, fu)
}

func (h *FollowUpHandler) Complete(w http.ResponseWriter, r *http.Request) {
	fu, err := h.Service.Complete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	middleware.RecordFollowUpCompleted()
	writeJSON(w, http.StatusOK, fu)
}

func (h *FollowUpHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *FollowUpHandler) List(w http.ResponseWriter, r *http.Request) {
	q := usecase.FollowUpQuery{
		Search:   r.URL.Query().Get("search"),
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
	}

	fus, err := h.Service.List(r.Context(), q)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	if fus == nil {
		fus = []*entity.FollowUp{}
	}
	writeJSON(w, http.StatusOK, fus)
}
