package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/anvika-estates/crm-backend/internal/usecase"
)

type RecommendationHandler struct {
	Service *usecase.RecommendationService
	Log     *zap.SugaredLogger
}

func NewRecommendationHandler(service *usecase.RecommendationService, log *zap.SugaredLogger) *RecommendationHandler {
	return &RecommendationHandler{Service: service, Log: log}
}

func (h *RecommendationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req usecase.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	result, err := h.Service.Recommend(r.Context(), req)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
