package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quranapi/quran-api/pkg/apperr"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Fields is the operation-specific part of an envelope. The "status" key is
// always set by the helpers below.
type Fields map[string]any

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func Success(w http.ResponseWriter, fields Fields) {
	body := make(Fields, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["status"] = StatusSuccess

	JSON(w, http.StatusOK, body)
}

// Message writes {"status":"success","message":msg}.
func Message(w http.ResponseWriter, msg string) {
	Success(w, Fields{"message": msg})
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorResponse{
		Status:  StatusError,
		Message: message,
	})
}

// HandleError is the single place where errors become HTTP responses.
// Coded errors use their own status and message; anything else is a 500
// carrying the error text.
func HandleError(w http.ResponseWriter, err error, logger *slog.Logger) {
	status := apperr.StatusOf(err)
	message := err.Error()

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed", "status", status, "error", err)
	}
	Error(w, status, message)
}
