package handler

import (
	"fmt"
	"net/http"
	"strings"

	"bytebank-api/common"
	"bytebank-api/model"
	"bytebank-api/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// limitePadrao is the low-balance threshold when the query omits limite.
var limitePadrao = decimal.NewFromInt(100)

type RelatorioHandler struct {
	service *service.RelatorioService
}

func NewRelatorioHandler(s *service.RelatorioService) *RelatorioHandler {
	return &RelatorioHandler{service: s}
}

// Extrato godoc
// @Summary      Account statement
// @Description  Transactions of the account in ascending order, optionally limited to an inclusive date range. Closed accounts keep their statement.
// @Tags         relatorios
// @Produce      json
// @Param        numero path  int    true  "Account number"
// @Param        inicio query string false "Start date (yyyy-MM-dd or RFC 3339)"
// @Param        fim    query string false "End date (yyyy-MM-dd or RFC 3339)"
// @Success      200  {array}   model.Transacao
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /contas/{numero}/extrato [get]
func (h *RelatorioHandler) Extrato(w http.ResponseWriter, r *http.Request) *common.AppError {
	numero, appErr := numeroFromPath(r)
	if appErr != nil {
		return appErr
	}
	inicio, fim, appErr := periodoFromQuery(r)
	if appErr != nil {
		return appErr
	}

	extrato, err := h.service.Extrato(numero, inicio, fim)
	if err != nil {
		return mapServiceError(err, "Não foi possível gerar o extrato")
	}
	respondJSON(w, http.StatusOK, extrato)
	return nil
}

// RelatorioGeral godoc
// @Summary      General report
// @Description  Count, total, average, highest and lowest balance of the active accounts.
// @Tags         relatorios
// @Produce      json
// @Success      200  {object}  model.RelatorioGeral
// @Router       /contas/relatorios/geral [get]
func (h *RelatorioHandler) RelatorioGeral(w http.ResponseWriter, r *http.Request) *common.AppError {
	respondJSON(w, http.StatusOK, h.service.RelatorioGeral())
	return nil
}

// ContasComSaldoBaixo godoc
// @Summary      Low balance report
// @Description  Active accounts whose balance is strictly below limite, lowest first.
// @Tags         relatorios
// @Produce      json
// @Param        limite query number false "Threshold, 100.00 when omitted"
// @Success      200  {array}   model.Conta
// @Failure      400  {object}  common.AppError
// @Router       /contas/relatorios/saldo-baixo [get]
func (h *RelatorioHandler) ContasComSaldoBaixo(w http.ResponseWriter, r *http.Request) *common.AppError {
	limite, appErr := decimalFromQuery(r, "limite", limitePadrao)
	if appErr != nil {
		return appErr
	}
	respondJSON(w, http.StatusOK, h.service.ContasComSaldoBaixo(limite))
	return nil
}

// RelatorioMovimentacoes godoc
// @Summary      Movement report
// @Description  Quantity, total, average, highest and lowest amount per operation type in the inclusive date range.
// @Tags         relatorios
// @Produce      json
// @Param        inicio query string true "Start date (yyyy-MM-dd or RFC 3339)"
// @Param        fim    query string true "End date (yyyy-MM-dd or RFC 3339)"
// @Success      200  {object}  map[string]model.EstatisticaMovimentacao
// @Failure      400  {object}  common.AppError
// @Router       /contas/relatorios/movimentacoes [get]
func (h *RelatorioHandler) RelatorioMovimentacoes(w http.ResponseWriter, r *http.Request) *common.AppError {
	inicio, fim, appErr := periodoFromQuery(r)
	if appErr != nil {
		return appErr
	}
	if inicio == nil || fim == nil {
		err := fmt.Errorf("%w: inicio e fim são obrigatórios", model.ErrDadosInvalidos)
		return common.NewAppError(http.StatusBadRequest, err.Error(), err)
	}

	relatorio, err := h.service.RelatorioMovimentacoes(*inicio, *fim)
	if err != nil {
		return mapServiceError(err, "Não foi possível gerar o relatório de movimentações")
	}
	respondJSON(w, http.StatusOK, relatorio)
	return nil
}

// TransacoesPorTipo godoc
// @Summary      Transactions by type
// @Tags         relatorios
// @Produce      json
// @Param        tipo path string true "ABERTURA, DEPOSITO, SAQUE, TRANSFERENCIA_ENVIADA, TRANSFERENCIA_RECEBIDA or TAXA_MANUTENCAO"
// @Success      200  {array}   model.Transacao
// @Failure      400  {object}  common.AppError
// @Router       /contas/historico/tipo/{tipo} [get]
func (h *RelatorioHandler) TransacoesPorTipo(w http.ResponseWriter, r *http.Request) *common.AppError {
	tipo := model.TipoOperacao(strings.ToUpper(mux.Vars(r)["tipo"]))

	transacoes, err := h.service.TransacoesPorTipo(tipo)
	if err != nil {
		return mapServiceError(err, "Não foi possível consultar o histórico")
	}
	respondJSON(w, http.StatusOK, transacoes)
	return nil
}
