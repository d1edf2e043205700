package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/mobilebanquet/banquet-service/internal/admin"
	"github.com/mobilebanquet/banquet-service/internal/apperr"
	"github.com/mobilebanquet/banquet-service/internal/dish"
	"github.com/mobilebanquet/banquet-service/internal/ingredient"
	"github.com/mobilebanquet/banquet-service/internal/order"
	"github.com/mobilebanquet/banquet-service/internal/supplier"
)

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("handler: failed to write JSON response")
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithServiceError maps a domain error onto the HTTP surface.
func respondWithServiceError(w http.ResponseWriter, err error) {
	respondWithError(w, mapErrorToStatusCode(err), err.Error())
}

func mapErrorToStatusCode(err error) int {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrNotFound),
		errors.Is(err, dish.ErrNotFound),
		errors.Is(err, supplier.ErrNotFound),
		errors.Is(err, ingredient.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, admin.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
