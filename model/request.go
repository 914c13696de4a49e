// file: model/request.go

package model

import "github.com/shopspring/decimal"

// DadosCliente carries the holder data of a new account.
type DadosCliente struct {
	Nome  string `json:"nome" validate:"required,max=120"`
	CPF   string `json:"cpf" validate:"required,cpf"`
	Email string `json:"email" validate:"required,email"`
}

// AberturaContaRequest is the payload of POST /contas.
type AberturaContaRequest struct {
	Numero       int64        `json:"numero" validate:"required,gt=0"`
	DadosCliente DadosCliente `json:"dadosCliente"`
}

// AtualizarTitularRequest updates the mutable holder fields.
type AtualizarTitularRequest struct {
	Nome  string `json:"nome" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
}

// ValorRequest is the payload of deposits and withdrawals.
// The amount rules live in the service, the validator cannot compare decimals.
type ValorRequest struct {
	Valor decimal.Decimal `json:"valor"`
}

type TransferenciaRequest struct {
	NumeroContaOrigem  int64           `json:"numeroContaOrigem" validate:"required,gt=0"`
	NumeroContaDestino int64           `json:"numeroContaDestino" validate:"required,gt=0"`
	Valor              decimal.Decimal `json:"valor"`
}

type TaxaManutencaoRequest struct {
	ValorTaxa decimal.Decimal `json:"valorTaxa"`
}
