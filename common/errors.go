package common

import (
	"encoding/json"
	"go-login-api/logger"
	"net/http"

	"github.com/sirupsen/logrus"
)

// AppError is an internal failure that is reported to the client as JSON.
// Credential problems never become an AppError.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Send(w http.ResponseWriter, r *http.Request) {
	fields := logrus.Fields{
		"status_code": e.Code,
		"method":      r.Method,
		"path":        r.URL.Path,
	}
	if e.Err != nil {
		fields["internal_error"] = e.Err.Error()
	}
	logger.Log.WithFields(fields).Error(e.Message)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}
