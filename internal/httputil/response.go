package httputil

import (
	"encoding/json"
	"log"
	"net/http"
)

// FieldIssue describes one failed input check.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	OK     bool         `json:"ok"`
	Error  string       `json:"error"`
	Code   string       `json:"code,omitempty"`
	Issues []FieldIssue `json:"issues,omitempty"`
}

// RespondJSON sends a JSON response with the given status code.
// Logs encoding errors to avoid silent failures.
func RespondJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// RespondErrorWithCode sends a JSON error response with a machine-readable error code.
func RespondErrorWithCode(w http.ResponseWriter, message string, code string, statusCode int) {
	RespondJSON(w, ErrorResponse{Error: message, Code: code}, statusCode)
}

// RespondValidationError sends a 400 listing every invalid field.
func RespondValidationError(w http.ResponseWriter, issues []FieldIssue) {
	RespondJSON(w, ErrorResponse{
		Error:  "Invalid input",
		Code:   CodeInvalidInput,
		Issues: issues,
	}, http.StatusBadRequest)
}

// RespondInternalError sends the generic 500 body. Callers log the cause.
func RespondInternalError(w http.ResponseWriter, message string) {
	RespondErrorWithCode(w, message, CodeInternalError, http.StatusInternalServerError)
}
