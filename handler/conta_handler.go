package handler

import (
	"net/http"

	"bytebank-api/common"
	"bytebank-api/logger"
	"bytebank-api/model"
	"bytebank-api/service"

	"github.com/sirupsen/logrus"
)

type ContaHandler struct {
	service *service.ContaService
}

func NewContaHandler(service *service.ContaService) *ContaHandler {
	return &ContaHandler{service: service}
}

// ListarContas godoc
// @Summary      List accounts
// @Description  Returns every open account, active or not, ordered by number.
// @Tags         contas
// @Produce      json
// @Success      200  {array}   model.Conta
// @Failure      500  {object}  common.AppError
// @Router       /contas [get]
func (h *ContaHandler) ListarContas(w http.ResponseWriter, r *http.Request) *common.AppError {
	contas, err := h.service.Listar(r.Context())
	if err != nil {
		return mapServiceError(err, "Não foi possível listar as contas")
	}
	respondJSON(w, http.StatusOK, contas)
	return nil
}

// AbrirConta godoc
// @Summary      Open an account
// @Description  Opens an active account with zero balance and records its ABERTURA transaction.
// @Tags         contas
// @Accept       json
// @Produce      json
// @Param        conta body model.AberturaContaRequest true "Account number and holder data"
// @Success      201  {object}  model.Conta
// @Failure      400  {object}  common.AppError "Invalid number, CPF, email or name"
// @Failure      409  {object}  common.AppError "Account number already used"
// @Failure      500  {object}  common.AppError
// @Router       /contas [post]
func (h *ContaHandler) AbrirConta(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.AberturaContaRequest
	// the service checks the number before the holder data
	if err := common.Decode(r, &req); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{"numero": req.Numero}).Info("Open account request received")

	conta, err := h.service.Abrir(r.Context(), req)
	if err != nil {
		return mapServiceError(err, "Não foi possível abrir a conta")
	}

	respondJSON(w, http.StatusCreated, conta)
	return nil
}

// BuscarConta godoc
// @Summary      Get an account
// @Tags         contas
// @Produce      json
// @Param        numero path int true "Account number"
// @Success      200  {object}  model.Conta
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /contas/{numero} [get]
func (h *ContaHandler) BuscarConta(w http.ResponseWriter, r *http.Request) *common.AppError {
	numero, appErr := numeroFromPath(r)
	if appErr != nil {
		return appErr
	}

	conta, err := h.service.Buscar(numero)
	if err != nil {
		return mapServiceError(err, "Não foi possível consultar a conta")
	}
	respondJSON(w, http.StatusOK, conta)
	return nil
}

// AtualizarTitular godoc
// @Summary      Update the account holder
// @Description  Changes the holder name and email. The CPF cannot be changed.
// @Tags         contas
// @Accept       json
// @Produce      json
// @Param        numero  path  int                            true  "Account number"
// @Param        titular body  model.AtualizarTitularRequest  true  "New name and email"
// @Success      200  {object}  model.Conta
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Failure      503  {object}  common.AppError "Account busy, retry later"
// @Router       /contas/{numero}/titular [put]
func (h *ContaHandler) AtualizarTitular(w http.ResponseWriter, r *http.Request) *common.AppError {
	numero, appErr := numeroFromPath(r)
	if appErr != nil {
		return appErr
	}
	var req model.AtualizarTitularRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	conta, err := h.service.AtualizarTitular(r.Context(), numero, req)
	if err != nil {
		return mapServiceError(err, "Não foi possível atualizar o titular")
	}
	respondJSON(w, http.StatusOK, conta)
	return nil
}

// DesativarConta godoc
// @Summary      Deactivate an account
// @Description  Deactivation cannot be undone. The account stays readable.
// @Tags         contas
// @Produce      json
// @Param        numero path int true "Account number"
// @Success      200  {object}  model.MensagemResponse
// @Failure      404  {object}  common.AppError
// @Failure      422  {object}  common.AppError "Account already inactive"
// @Failure      503  {object}  common.AppError "Account busy, retry later"
// @Router       /contas/{numero}/desativar [put]
func (h *ContaHandler) DesativarConta(w http.ResponseWriter, r *http.Request) *common.AppError {
	numero, appErr := numeroFromPath(r)
	if appErr != nil {
		return appErr
	}

	if err := h.service.Desativar(r.Context(), numero); err != nil {
		return mapServiceError(err, "Não foi possível desativar a conta")
	}
	respondJSON(w, http.StatusOK, model.MensagemResponse{Mensagem: "Conta desativada com sucesso"})
	return nil
}

// EncerrarConta godoc
// @Summary      Close an account
// @Description  Archives an account with zero balance. Its statement remains available.
// @Tags         contas
// @Produce      json
// @Param        numero path int true "Account number"
// @Success      200  {object}  model.MensagemResponse
// @Failure      404  {object}  common.AppError
// @Failure      422  {object}  common.AppError "Balance is not zero"
// @Failure      503  {object}  common.AppError "Account busy, retry later"
// @Router       /contas/{numero} [delete]
func (h *ContaHandler) EncerrarConta(w http.ResponseWriter, r *http.Request) *common.AppError {
	numero, appErr := numeroFromPath(r)
	if appErr != nil {
		return appErr
	}

	if err := h.service.Encerrar(r.Context(), numero); err != nil {
		return mapServiceError(err, "Não foi possível encerrar a conta")
	}
	respondJSON(w, http.StatusOK, model.MensagemResponse{Mensagem: "Conta encerrada com sucesso"})
	return nil
}
