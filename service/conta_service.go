// file: service/conta_service.go

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"bytebank-api/common"
	"bytebank-api/logger"
	"bytebank-api/model"
	"bytebank-api/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ContaService handles the account lifecycle. The account list is served
// cache-aside; keys carry the store version, so a cached list is never stale.
type ContaService struct {
	ledger   *Ledger
	cache    ICacheClient
	cacheTTL time.Duration
	// instancia keeps versions of different processes apart in a shared Redis.
	instancia string
}

func NewContaService(ledger *Ledger, cache ICacheClient, cacheTTL time.Duration) *ContaService {
	if cache == nil {
		cache = NopCache{}
	}
	return &ContaService{
		ledger:    ledger,
		cache:     cache,
		cacheTTL:  cacheTTL,
		instancia: uuid.NewString(),
	}
}

// Abrir opens an active account with zero balance and records its ABERTURA.
func (s *ContaService) Abrir(ctx context.Context, req model.AberturaContaRequest) (conta model.Conta, err error) {
	defer func() { contar("abrir_conta", err) }()

	if req.Numero <= 0 {
		return model.Conta{}, fmt.Errorf("%w: o número da conta deve ser positivo", model.ErrDadosInvalidos)
	}
	if s.ledger.Contas.Existe(req.Numero) {
		return model.Conta{}, fmt.Errorf("%w: %d", model.ErrContaJaExiste, req.Numero)
	}

	req.DadosCliente.Nome = strings.TrimSpace(req.DadosCliente.Nome)
	req.DadosCliente.Email = strings.TrimSpace(req.DadosCliente.Email)
	if err := common.ValidateStruct(req); err != nil {
		return model.Conta{}, err
	}

	agora := s.ledger.carimbo()
	conta = model.Conta{
		Numero: req.Numero,
		Titular: model.Titular{
			Nome:  req.DadosCliente.Nome,
			CPF:   common.NormalizeCPF(req.DadosCliente.CPF),
			Email: req.DadosCliente.Email,
		},
		Saldo:     decimal.Zero,
		EstaAtiva: true,
		CriadaEm:  agora,
	}
	abertura := model.Transacao{
		ID:            uuid.New(),
		NumeroConta:   conta.Numero,
		TipoOperacao:  model.Abertura,
		Valor:         decimal.Zero,
		SaldoAnterior: decimal.Zero,
		SaldoNovo:     decimal.Zero,
		DataHora:      agora,
		Descricao:     "Abertura de conta",
	}

	err = s.ledger.Contas.Inserir(conta, func() error {
		mudanca := repository.Mudanca{Contas: []model.Conta{conta}, Transacoes: []model.Transacao{abertura}}
		if err := s.ledger.Journal.Registrar(ctx, mudanca); err != nil {
			logger.Log.WithError(err).WithField("numero", conta.Numero).Error("Failed to journal account opening")
			return fmt.Errorf("could not record account opening: %w", err)
		}
		s.ledger.Historico.Registrar(abertura)
		return nil
	})
	if err != nil {
		return model.Conta{}, err
	}

	logger.Log.WithField("numero", conta.Numero).Info("Account opened")
	return conta, nil
}

func (s *ContaService) Buscar(numero int64) (model.Conta, error) {
	return s.ledger.Contas.Buscar(numero)
}

// Listar returns every open account ordered by numero.
func (s *ContaService) Listar(ctx context.Context) ([]model.Conta, error) {
	cacheKey := fmt.Sprintf("contas:%s:v%d", s.instancia, s.ledger.Contas.Versao())

	cached, err := s.cache.Get(ctx, cacheKey).Result()
	if err == nil {
		var contas []model.Conta
		if err := json.Unmarshal([]byte(cached), &contas); err == nil {
			return contas, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logger.Log.WithError(err).WithField("key", cacheKey).Warn("Cache read failed, falling back to the store")
	}

	contas := s.ledger.Contas.Listar()

	data, err := json.Marshal(contas)
	if err == nil {
		if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL).Err(); err != nil {
			logger.Log.WithError(err).WithField("key", cacheKey).Warn("Cache write failed")
		}
	}
	return contas, nil
}

// Desativar turns an account inactive. There is no way back.
func (s *ContaService) Desativar(ctx context.Context, numero int64) (err error) {
	defer func() { contar("desativar_conta", err) }()

	liberar, err := s.ledger.Contas.Travar(ctx, numero)
	if err != nil {
		return err
	}
	defer liberar()

	conta, err := s.ledger.Contas.Buscar(numero)
	if err != nil {
		return err
	}
	if !conta.EstaAtiva {
		return fmt.Errorf("%w: %d", model.ErrContaJaInativa, numero)
	}

	conta.EstaAtiva = false
	if err := s.ledger.efetivar(ctx, repository.Mudanca{Contas: []model.Conta{conta}}); err != nil {
		return err
	}

	logger.Log.WithField("numero", numero).Info("Account deactivated")
	return nil
}

// Encerrar archives an account with zero balance. Its history stays available
// and its number is never handed out again.
func (s *ContaService) Encerrar(ctx context.Context, numero int64) (err error) {
	defer func() { contar("encerrar_conta", err) }()

	liberar, err := s.ledger.Contas.Travar(ctx, numero)
	if err != nil {
		return err
	}
	defer liberar()

	conta, err := s.ledger.Contas.Buscar(numero)
	if err != nil {
		return err
	}
	if !conta.Saldo.IsZero() {
		return fmt.Errorf("%w: saldo atual %s", model.ErrSaldoNaoZero, conta.Saldo.StringFixed(2))
	}

	if err := s.ledger.efetivar(ctx, repository.Mudanca{Encerradas: []int64{numero}}); err != nil {
		return err
	}

	logger.Log.WithField("numero", numero).Info("Account closed")
	return nil
}

// AtualizarTitular changes the holder name and email. The CPF is kept.
func (s *ContaService) AtualizarTitular(ctx context.Context, numero int64, req model.AtualizarTitularRequest) (conta model.Conta, err error) {
	defer func() { contar("atualizar_titular", err) }()

	req.Nome = strings.TrimSpace(req.Nome)
	req.Email = strings.TrimSpace(req.Email)
	if err := common.ValidateStruct(req); err != nil {
		return model.Conta{}, err
	}

	liberar, err := s.ledger.Contas.Travar(ctx, numero)
	if err != nil {
		return model.Conta{}, err
	}
	defer liberar()

	conta, err = s.ledger.Contas.Buscar(numero)
	if err != nil {
		return model.Conta{}, err
	}

	conta.Titular.Nome = req.Nome
	conta.Titular.Email = req.Email
	if err := s.ledger.efetivar(ctx, repository.Mudanca{Contas: []model.Conta{conta}}); err != nil {
		return model.Conta{}, err
	}

	logger.Log.WithFields(logrus.Fields{"numero": numero}).Info("Account holder updated")
	return conta, nil
}
