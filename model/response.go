package model

import "github.com/shopspring/decimal"

// MovimentacaoResponse is returned by deposits and withdrawals.
type MovimentacaoResponse struct {
	Conta     Conta     `json:"conta"`
	Transacao Transacao `json:"transacao"`
}

// TransferenciaResponse holds both legs of a committed transfer.
type TransferenciaResponse struct {
	Enviada  Transacao `json:"enviada"`
	Recebida Transacao `json:"recebida"`
}

type RelatorioGeral struct {
	TotalContasAtivas int             `json:"totalContasAtivas"`
	SaldoTotal        decimal.Decimal `json:"saldoTotal"`
	SaldoMedio        decimal.Decimal `json:"saldoMedio"`
	MaiorSaldo        decimal.Decimal `json:"maiorSaldo"`
	MenorSaldo        decimal.Decimal `json:"menorSaldo"`
}

// EstatisticaMovimentacao aggregates the transactions of one TipoOperacao.
type EstatisticaMovimentacao struct {
	Quantidade int             `json:"quantidade"`
	ValorTotal decimal.Decimal `json:"valorTotal"`
	ValorMedio decimal.Decimal `json:"valorMedio"`
	MaiorValor decimal.Decimal `json:"maiorValor"`
	MenorValor decimal.Decimal `json:"menorValor"`
}

type ResultadoTaxa struct {
	ContasAfetadas  int             `json:"contasAfetadas"`
	ValorTaxa       decimal.Decimal `json:"valorTaxa"`
	TotalArrecadado decimal.Decimal `json:"totalArrecadado"`
}

type MensagemResponse struct {
	Mensagem string `json:"mensagem"`
}
