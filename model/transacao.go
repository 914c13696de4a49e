package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TipoOperacao string

const (
	Abertura              TipoOperacao = "ABERTURA"
	Deposito              TipoOperacao = "DEPOSITO"
	Saque                 TipoOperacao = "SAQUE"
	TransferenciaEnviada  TipoOperacao = "TRANSFERENCIA_ENVIADA"
	TransferenciaRecebida TipoOperacao = "TRANSFERENCIA_RECEBIDA"
	TaxaManutencao        TipoOperacao = "TAXA_MANUTENCAO"
)

// TiposOperacao lists every operation kind in a stable order.
var TiposOperacao = []TipoOperacao{
	Abertura, Deposito, Saque, TransferenciaEnviada, TransferenciaRecebida, TaxaManutencao,
}

func (t TipoOperacao) Valido() bool {
	for _, tipo := range TiposOperacao {
		if t == tipo {
			return true
		}
	}
	return false
}

// Transacao is an immutable entry of an account's history.
// Both legs of a transfer carry the same TransferenciaID and DataHora.
type Transacao struct {
	ID               uuid.UUID       `json:"id"`
	NumeroConta      int64           `json:"numeroConta"`
	TipoOperacao     TipoOperacao    `json:"tipoOperacao"`
	Valor            decimal.Decimal `json:"valor"`
	SaldoAnterior    decimal.Decimal `json:"saldoAnterior"`
	SaldoNovo        decimal.Decimal `json:"saldoNovo"`
	DataHora         time.Time       `json:"dataHora"`
	Descricao        string          `json:"descricao"`
	TransferenciaID  *uuid.UUID      `json:"transferenciaId,omitempty"`
	ContaContraparte *int64          `json:"contaContraparte,omitempty"`
}
