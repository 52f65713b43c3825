package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/xapes/xma-slots/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req CollectRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Collect"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter from the request.
// If the parameter is missing or empty, it writes an error response and returns false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam returns the query parameter, or defaultValue when absent.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetLimitParam parses an optional integer "limit" parameter. Zero means the
// service default. Writes a 400 and returns false when it is not an integer.
func GetLimitParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return limit, true
}

// LogRequestFields logs common request fields at debug level.
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn("LogRequestFields called with odd number of arguments")
		return
	}
	log.Debug("Request details", keyvals...)
}
