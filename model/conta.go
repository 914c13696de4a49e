package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money goes over the wire as JSON numbers, the client reads them as such.
	decimal.MarshalJSONWithoutQuotes = true
}

// Titular is the holder of an account. CPF never changes after the account is opened.
type Titular struct {
	Nome  string `json:"nome"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
}

type Conta struct {
	Numero    int64           `json:"numero"`
	Titular   Titular         `json:"titular"`
	Saldo     decimal.Decimal `json:"saldo"`
	EstaAtiva bool            `json:"estaAtiva"`
	CriadaEm  time.Time       `json:"criadaEm"`
}
