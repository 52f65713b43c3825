package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgTooManyRequestsError = "Too many requests. Please try again later."
	ErrMsgPlayerNotFoundError  = "Player not found"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act on. Invalid input keeps its detail; everything
// else is replaced by a fixed message.
func mapServiceErrorToUserMessage(err error) (int, string, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError, ""
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error(), ""
	case errors.Is(err, domain.ErrTransferFailed):
		return http.StatusBadRequest, ErrMsgTransactionFailed, ""
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError, ""
	case errors.Is(err, domain.ErrNothingToCollect):
		return http.StatusConflict, ErrMsgNothingToCollect, CodeNothingToCollect
	case errors.Is(err, domain.ErrAlreadyCollected):
		return http.StatusConflict, ErrMsgAlreadyCollected, CodeAlreadyCollected
	case errors.Is(err, domain.ErrSpinCreditsOutstanding):
		return http.StatusConflict, ErrMsgCreditsOutstanding, CodeCreditsOutstanding
	case errors.Is(err, domain.ErrNoSpinCredits):
		return http.StatusConflict, ErrMsgNoSpinCredits, CodeNoSpinCredits
	case errors.Is(err, domain.ErrClientSpinsDisabled):
		return http.StatusForbidden, ErrMsgClientSpinsDisabled, CodeClientSpinsDisabled
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, ErrMsgTooManyRequestsError, CodeRateLimited
	case errors.Is(err, domain.ErrTreasuryInsufficientFunds), errors.Is(err, domain.ErrTreasuryAccountMissing):
		return http.StatusServiceUnavailable, ErrMsgTreasuryUnavailable, ""
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return http.StatusServiceUnavailable, ErrMsgLedgerUnavailable, ""
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError, ""
}

// respondServiceError logs err and writes the mapped response. Server-side
// failures are logged at Error, client mistakes at Warn.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, msg, code := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err, "status", status)
	} else {
		log.Warn(opName, "error", err, "status", status)
	}
	respondJSON(w, status, ErrorResponse{Error: msg, Code: code})
}
