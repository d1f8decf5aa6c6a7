package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/sporkart/facility-discovery/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{"error": message})
}

// respondWithAppError maps the application error taxonomy to HTTP statuses.
func respondWithAppError(w http.ResponseWriter, err error) {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, err.Error())
	case apperrors.ErrorTypeValidation:
		respondWithError(w, http.StatusBadRequest, err.Error())
	case apperrors.ErrorTypeUnsupported:
		respondWithError(w, http.StatusNotImplemented, err.Error())
	case apperrors.ErrorTypeExternal:
		respondWithError(w, http.StatusBadGateway, err.Error())
	default:
		log.Error().Err(err).Msg("internal error")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
