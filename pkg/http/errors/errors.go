package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// StatusFor maps an error onto its HTTP status. Unclassified errors are internal failures.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes a standardized error response to the HTTP response writer
func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// Respond classifies err and writes the matching response. Internal failures are logged and
// replaced with a generic message so storage details never reach the client.
func Respond(w http.ResponseWriter, logger zerolog.Logger, err error) {
	status := StatusFor(err)
	switch status {
	case http.StatusBadRequest:
		RespondError(w, status, ErrBadRequest.Error())
	case http.StatusNotFound:
		RespondError(w, status, ErrNotFound.Error())
	case http.StatusUnprocessableEntity:
		RespondError(w, status, ErrUnprocessable.Error())
	default:
		logger.Error().Err(err).Msg("request failed")
		RespondInternalError(w)
	}
}

// RespondInternalError writes an internal server error response
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, MessageInternal)
}

// RespondNotFound writes a not found error response
func RespondNotFound(w http.ResponseWriter) {
	RespondError(w, http.StatusNotFound, ErrNotFound.Error())
}

// RespondBadRequest writes a bad request error response
func RespondBadRequest(w http.ResponseWriter) {
	RespondError(w, http.StatusBadRequest, ErrBadRequest.Error())
}
