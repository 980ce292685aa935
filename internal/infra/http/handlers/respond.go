package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/anvika-estates/crm-backend/internal/usecase"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the usecase error taxonomy onto status codes.
// Validation failures are the caller's problem and never logged as
// server faults; storage and advisor failures are.
func writeError(w http.ResponseWriter, log *zap.SugaredLogger, err error) {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: verr.Message, Field: verr.Field})
		return
	}

	var nferr *usecase.NotFoundError
	if errors.As(err, &nferr) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: nferr.Error()})
		return
	}

	var aerr *usecase.AdvisorError
	if errors.As(err, &aerr) {
		if log != nil {
			log.Warnw("advisor call failed", "err", aerr.Err)
		}
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "advisor unavailable"})
		return
	}

	if log != nil {
		log.Errorw("request failed", "err", err)
	}
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
}
