package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bytebank-api/logger"
	"bytebank-api/model"

	"github.com/sirupsen/logrus"
)

// AppError is what handlers return; its JSON form is {"erro": ..., "codigo": ...}.
type AppError struct {
	Code       int    `json:"-"`
	Codigo     string `json:"codigo,omitempty"`
	Message    string `json:"erro"`
	Err        error  `json:"-"`
	RetryAfter int    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string, err error) *AppError {
	appErr := &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
	var dominio *model.ErroDominio
	if errors.As(err, &dominio) {
		appErr.Codigo = dominio.Codigo
	}
	return appErr
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		entry := logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		})
		if e.Code >= http.StatusInternalServerError {
			entry.Error(e.Message)
		} else {
			entry.Info(e.Message)
		}
	}

	if e.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(e.RetryAfter))
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}
