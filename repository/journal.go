package repository

import (
	"context"

	"bytebank-api/model"
)

// Mudanca is one committed change of the ledger: new account states, the
// transactions produced and the accounts closed by it.
type Mudanca struct {
	Contas     []model.Conta
	Transacoes []model.Transacao
	Encerradas []int64
}

// Estado is the full ledger content read back from a journal.
type Estado struct {
	Abertas    []model.Conta
	Encerradas []model.Conta
	Transacoes []model.Transacao
}

// Journal durably records every change before it is applied in memory.
// A failed Registrar must leave nothing behind.
type Journal interface {
	Registrar(ctx context.Context, mudanca Mudanca) error
	Carregar(ctx context.Context) (*Estado, error)
}

// NopJournal keeps nothing; the ledger lives only in memory.
type NopJournal struct{}

func (NopJournal) Registrar(context.Context, Mudanca) error { return nil }

func (NopJournal) Carregar(context.Context) (*Estado, error) { return &Estado{}, nil }
