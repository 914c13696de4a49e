package handler

import (
	"context"
	"errors"
	"net/http"

	"bytebank-api/common"
	"bytebank-api/model"
)

// retryAfterSeconds is sent with 503 answers to lock contention.
const retryAfterSeconds = 1

func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// mapServiceError turns a service error into the HTTP answer. fallback is the message
// of unexpected failures, whose details are only logged.
func mapServiceError(err error, fallback string) *common.AppError {
	switch {
	case errors.Is(err, model.ErrDadosInvalidos),
		errors.Is(err, model.ErrValorInvalido),
		errors.Is(err, model.ErrTransferenciaMesmaConta):
		return common.NewAppError(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, model.ErrContaNaoEncontrada):
		return common.NewAppError(http.StatusNotFound, err.Error(), err)
	case errors.Is(err, model.ErrContaJaExiste):
		return common.NewAppError(http.StatusConflict, err.Error(), err)
	case errors.Is(err, model.ErrContaInativa),
		errors.Is(err, model.ErrContaJaInativa),
		errors.Is(err, model.ErrSaldoInsuficiente),
		errors.Is(err, model.ErrSaldoNaoZero):
		return common.NewAppError(http.StatusUnprocessableEntity, err.Error(), err)
	case errors.Is(err, model.ErrContaOcupada),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		appErr := common.NewAppError(http.StatusServiceUnavailable, model.ErrContaOcupada.Mensagem, err)
		appErr.Codigo = model.ErrContaOcupada.Codigo
		appErr.RetryAfter = retryAfterSeconds
		return appErr
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}
