// file: service/transacao_service.go

package service

import (
	"context"
	"fmt"

	"bytebank-api/logger"
	"bytebank-api/model"
	"bytebank-api/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// TransacaoService mutates balances. Every operation locks the accounts it
// touches for the whole read-modify-write and commits through the Ledger.
type TransacaoService struct {
	ledger *Ledger
}

func NewTransacaoService(ledger *Ledger) *TransacaoService {
	return &TransacaoService{ledger: ledger}
}

func (s *TransacaoService) Depositar(ctx context.Context, numero int64, valor decimal.Decimal) (resp model.MovimentacaoResponse, err error) {
	defer func() { contar("deposito", err) }()

	if err := validarValor(valor); err != nil {
		return resp, err
	}
	return s.movimentar(ctx, numero, valor, model.Deposito)
}

func (s *TransacaoService) Sacar(ctx context.Context, numero int64, valor decimal.Decimal) (resp model.MovimentacaoResponse, err error) {
	defer func() { contar("saque", err) }()

	if err := validarValor(valor); err != nil {
		return resp, err
	}
	return s.movimentar(ctx, numero, valor, model.Saque)
}

func (s *TransacaoService) movimentar(ctx context.Context, numero int64, valor decimal.Decimal, tipo model.TipoOperacao) (model.MovimentacaoResponse, error) {
	liberar, err := s.ledger.Contas.Travar(ctx, numero)
	if err != nil {
		return model.MovimentacaoResponse{}, err
	}
	defer liberar()

	conta, err := s.ledger.Contas.Buscar(numero)
	if err != nil {
		return model.MovimentacaoResponse{}, err
	}
	if !conta.EstaAtiva {
		return model.MovimentacaoResponse{}, fmt.Errorf("%w: %d", model.ErrContaInativa, numero)
	}

	anterior := conta.Saldo
	descricao := "Depósito"
	if tipo == model.Saque {
		if valor.GreaterThan(anterior) {
			return model.MovimentacaoResponse{}, fmt.Errorf("%w: saldo %s, valor %s",
				model.ErrSaldoInsuficiente, anterior.StringFixed(2), valor.StringFixed(2))
		}
		conta.Saldo = anterior.Sub(valor)
		descricao = "Saque"
	} else {
		conta.Saldo = anterior.Add(valor)
	}

	transacao := model.Transacao{
		ID:            uuid.New(),
		NumeroConta:   numero,
		TipoOperacao:  tipo,
		Valor:         valor,
		SaldoAnterior: anterior,
		SaldoNovo:     conta.Saldo,
		DataHora:      s.ledger.carimbo(numero),
		Descricao:     descricao,
	}

	mudanca := repository.Mudanca{Contas: []model.Conta{conta}, Transacoes: []model.Transacao{transacao}}
	if err := s.ledger.efetivar(ctx, mudanca); err != nil {
		return model.MovimentacaoResponse{}, err
	}

	logger.Log.WithFields(logrus.Fields{
		"numero": numero,
		"tipo":   tipo,
		"valor":  valor.String(),
	}).Info("Balance updated")
	return model.MovimentacaoResponse{Conta: conta, Transacao: transacao}, nil
}

// Transferir moves valor from origem to destino. Both legs are committed together
// with one timestamp, or nothing is.
func (s *TransacaoService) Transferir(ctx context.Context, origem, destino int64, valor decimal.Decimal) (resp model.TransferenciaResponse, err error) {
	defer func() { contar("transferencia", err) }()

	if err := validarValor(valor); err != nil {
		return resp, err
	}

	liberar, err := s.ledger.Contas.Travar(ctx, origem, destino)
	if err != nil {
		return resp, err
	}
	defer liberar()

	contaOrigem, err := s.ledger.Contas.Buscar(origem)
	if err != nil {
		return resp, err
	}
	contaDestino, err := s.ledger.Contas.Buscar(destino)
	if err != nil {
		return resp, err
	}
	if !contaOrigem.EstaAtiva {
		return resp, fmt.Errorf("%w: conta de origem %d", model.ErrContaInativa, origem)
	}
	if !contaDestino.EstaAtiva {
		return resp, fmt.Errorf("%w: conta de destino %d", model.ErrContaInativa, destino)
	}
	if origem == destino {
		return resp, fmt.Errorf("%w: %d", model.ErrTransferenciaMesmaConta, origem)
	}
	if valor.GreaterThan(contaOrigem.Saldo) {
		return resp, fmt.Errorf("%w: saldo %s, valor %s",
			model.ErrSaldoInsuficiente, contaOrigem.Saldo.StringFixed(2), valor.StringFixed(2))
	}

	transferenciaID := uuid.New()
	agora := s.ledger.carimbo(origem, destino)

	enviada := model.Transacao{
		ID:               uuid.New(),
		NumeroConta:      origem,
		TipoOperacao:     model.TransferenciaEnviada,
		Valor:            valor,
		SaldoAnterior:    contaOrigem.Saldo,
		SaldoNovo:        contaOrigem.Saldo.Sub(valor),
		DataHora:         agora,
		Descricao:        fmt.Sprintf("Transferência para a conta %d", destino),
		TransferenciaID:  &transferenciaID,
		ContaContraparte: &destino,
	}
	recebida := model.Transacao{
		ID:               uuid.New(),
		NumeroConta:      destino,
		TipoOperacao:     model.TransferenciaRecebida,
		Valor:            valor,
		SaldoAnterior:    contaDestino.Saldo,
		SaldoNovo:        contaDestino.Saldo.Add(valor),
		DataHora:         agora,
		Descricao:        fmt.Sprintf("Transferência recebida da conta %d", origem),
		TransferenciaID:  &transferenciaID,
		ContaContraparte: &origem,
	}
	contaOrigem.Saldo = enviada.SaldoNovo
	contaDestino.Saldo = recebida.SaldoNovo

	mudanca := repository.Mudanca{
		Contas:     []model.Conta{contaOrigem, contaDestino},
		Transacoes: []model.Transacao{enviada, recebida},
	}
	if err := s.ledger.efetivar(ctx, mudanca); err != nil {
		return resp, err
	}

	logger.Log.WithFields(logrus.Fields{
		"transfer_id": transferenciaID,
		"from":        origem,
		"to":          destino,
		"valor":       valor.String(),
	}).Info("Transfer committed")
	return model.TransferenciaResponse{Enviada: enviada, Recebida: recebida}, nil
}

func (s *TransacaoService) ConsultarSaldo(numero int64) (decimal.Decimal, error) {
	conta, err := s.ledger.Contas.Buscar(numero)
	if err != nil {
		return decimal.Zero, err
	}
	return conta.Saldo, nil
}

// AplicarTaxaManutencao charges valorTaxa to every active account that can pay it.
// Accounts with a smaller balance are skipped. All charges share one commit.
func (s *TransacaoService) AplicarTaxaManutencao(ctx context.Context, valorTaxa decimal.Decimal) (resultado model.ResultadoTaxa, err error) {
	defer func() { contar("taxa_manutencao", err) }()

	if err := validarValor(valorTaxa); err != nil {
		return resultado, err
	}

	ativas := s.ledger.Contas.Ativas()
	numeros := make([]int64, 0, len(ativas))
	for _, c := range ativas {
		numeros = append(numeros, c.Numero)
	}

	// accounts closed since the listing are left out
	liberar, travadas, err := s.ledger.Contas.TravarExistentes(ctx, numeros...)
	if err != nil {
		return resultado, err
	}
	defer liberar()

	resultado = model.ResultadoTaxa{ValorTaxa: valorTaxa, TotalArrecadado: decimal.Zero}
	var cobradas []model.Conta
	for _, numero := range travadas {
		conta, err := s.ledger.Contas.Buscar(numero)
		if err != nil || !conta.EstaAtiva || conta.Saldo.LessThan(valorTaxa) {
			continue
		}
		cobradas = append(cobradas, conta)
	}
	if len(cobradas) == 0 {
		return resultado, nil
	}

	afetadas := make([]int64, 0, len(cobradas))
	for _, c := range cobradas {
		afetadas = append(afetadas, c.Numero)
	}
	agora := s.ledger.carimbo(afetadas...)

	mudanca := repository.Mudanca{}
	for _, conta := range cobradas {
		anterior := conta.Saldo
		conta.Saldo = anterior.Sub(valorTaxa)
		mudanca.Contas = append(mudanca.Contas, conta)
		mudanca.Transacoes = append(mudanca.Transacoes, model.Transacao{
			ID:            uuid.New(),
			NumeroConta:   conta.Numero,
			TipoOperacao:  model.TaxaManutencao,
			Valor:         valorTaxa,
			SaldoAnterior: anterior,
			SaldoNovo:     conta.Saldo,
			DataHora:      agora,
			Descricao:     "Taxa de manutenção",
		})
		resultado.TotalArrecadado = resultado.TotalArrecadado.Add(valorTaxa)
	}
	if err := s.ledger.efetivar(ctx, mudanca); err != nil {
		return model.ResultadoTaxa{}, err
	}
	resultado.ContasAfetadas = len(cobradas)

	logger.Log.WithFields(logrus.Fields{
		"accounts": resultado.ContasAfetadas,
		"total":    resultado.TotalArrecadado.String(),
	}).Info("Maintenance fee applied")
	return resultado, nil
}
