package handler

import (
	"net/http"

	"bytebank-api/common"
	"bytebank-api/logger"
	"bytebank-api/model"
	"bytebank-api/service"

	"github.com/sirupsen/logrus"
)

// TransacaoHandler holds dependencies for balance-changing handlers.
type TransacaoHandler struct {
	service *service.TransacaoService
}

func NewTransacaoHandler(s *service.TransacaoService) *TransacaoHandler {
	return &TransacaoHandler{service: s}
}

// ConsultarSaldo godoc
// @Summary      Account balance
// @Tags         transacoes
// @Produce      json
// @Param        numero path int true "Account number"
// @Success      200  {number}  number
// @Failure      404  {object}  common.AppError
// @Router       /contas/{numero}/saldo [get]
func (h *TransacaoHandler) ConsultarSaldo(w http.ResponseWriter, r *http.Request) *common.AppError {
	numero, appErr := numeroFromPath(r)
	if appErr != nil {
		return appErr
	}

	saldo, err := h.service.ConsultarSaldo(numero)
	if err != nil {
		return mapServiceError(err, "Não foi possível consultar o saldo")
	}
	respondJSON(w, http.StatusOK, saldo)
	return nil
}

// Depositar godoc
// @Summary      Deposit
// @Tags         transacoes
// @Accept       json
// @Produce      json
// @Param        numero   path  int                 true  "Account number"
// @Param        deposito body  model.ValorRequest  true  "Positive amount with at most two decimals"
// @Success      200  {object}  model.MovimentacaoResponse
// @Failure      400  {object}  common.AppError "Invalid amount"
// @Failure      404  {object}  common.AppError
// @Failure      422  {object}  common.AppError "Inactive account"
// @Failure      503  {object}  common.AppError "Account busy, retry later"
// @Router       /contas/{numero}/deposito [post]
func (h *TransacaoHandler) Depositar(w http.ResponseWriter, r *http.Request) *common.AppError {
	numero, appErr := numeroFromPath(r)
	if appErr != nil {
		return appErr
	}
	var req model.ValorRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Depositar(r.Context(), numero, req.Valor)
	if err != nil {
		return mapServiceError(err, "Não foi possível realizar o depósito")
	}
	respondJSON(w, http.StatusOK, resp)
	return nil
}

// Sacar godoc
// @Summary      Withdraw
// @Tags         transacoes
// @Accept       json
// @Produce      json
// @Param        numero path  int                 true  "Account number"
// @Param        saque  body  model.ValorRequest  true  "Positive amount with at most two decimals"
// @Success      200  {object}  model.MovimentacaoResponse
// @Failure      400  {object}  common.AppError "Invalid amount"
// @Failure      404  {object}  common.AppError
// @Failure      422  {object}  common.AppError "Inactive account or insufficient balance"
// @Failure      503  {object}  common.AppError "Account busy, retry later"
// @Router       /contas/{numero}/saque [post]
func (h *TransacaoHandler) Sacar(w http.ResponseWriter, r *http.Request) *common.AppError {
	numero, appErr := numeroFromPath(r)
	if appErr != nil {
		return appErr
	}
	var req model.ValorRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Sacar(r.Context(), numero, req.Valor)
	if err != nil {
		return mapServiceError(err, "Não foi possível realizar o saque")
	}
	respondJSON(w, http.StatusOK, resp)
	return nil
}

// Transferir godoc
// @Summary      Transfer between accounts
// @Description  Debits the source and credits the destination atomically, producing two transactions with the same timestamp.
// @Tags         transacoes
// @Accept       json
// @Produce      json
// @Param        transferencia body model.TransferenciaRequest true "Source, destination and amount"
// @Success      200  {object}  model.TransferenciaResponse
// @Failure      400  {object}  common.AppError "Invalid amount or same account"
// @Failure      404  {object}  common.AppError "Source or destination not found"
// @Failure      422  {object}  common.AppError "Inactive account or insufficient balance"
// @Failure      503  {object}  common.AppError "Account busy, retry later"
// @Router       /contas/transferencia [post]
func (h *TransacaoHandler) Transferir(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransferenciaRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"from":  req.NumeroContaOrigem,
		"to":    req.NumeroContaDestino,
		"valor": req.Valor.String(),
	}).Info("Transfer request received")

	resp, err := h.service.Transferir(r.Context(), req.NumeroContaOrigem, req.NumeroContaDestino, req.Valor)
	if err != nil {
		return mapServiceError(err, "Não foi possível realizar a transferência")
	}
	respondJSON(w, http.StatusOK, resp)
	return nil
}

// AplicarTaxaManutencao godoc
// @Summary      Charge the maintenance fee
// @Description  Charges the fee to every active account that can pay it. Admin only.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        taxa body model.TaxaManutencaoRequest true "Fee amount"
// @Success      200  {object}  model.ResultadoTaxa
// @Failure      400  {object}  common.AppError "Invalid amount"
// @Failure      401  {object}  common.AppError "Missing or invalid token"
// @Failure      403  {object}  common.AppError "Not an admin"
// @Failure      503  {object}  common.AppError "Accounts busy, retry later"
// @Router       /admin/taxa-manutencao [post]
func (h *TransacaoHandler) AplicarTaxaManutencao(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TaxaManutencaoRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	subject, _ := r.Context().Value(SubjectKey).(string)
	logger.Log.WithFields(logrus.Fields{
		"subject": subject,
		"taxa":    req.ValorTaxa.String(),
	}).Info("Maintenance fee request received")

	resultado, err := h.service.AplicarTaxaManutencao(r.Context(), req.ValorTaxa)
	if err != nil {
		return mapServiceError(err, "Não foi possível aplicar a taxa de manutenção")
	}
	respondJSON(w, http.StatusOK, resultado)
	return nil
}
