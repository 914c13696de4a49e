// file: service/ledger.go

package service

import (
	"context"
	"fmt"
	"time"

	"bytebank-api/logger"
	"bytebank-api/model"
	"bytebank-api/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ledgerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bytebank_ledger_operations_total",
	Help: "Ledger operations by kind and outcome",
}, []string{"operation", "result"})

// Ledger bundles the account store, the history index and the journal that every
// mutating service commits through.
type Ledger struct {
	Contas    *repository.ContaStore
	Historico *repository.HistoricoIndex
	Journal   repository.Journal
	Agora     func() time.Time
}

func NewLedger(contas *repository.ContaStore, historico *repository.HistoricoIndex, journal repository.Journal) *Ledger {
	if journal == nil {
		journal = repository.NopJournal{}
	}
	return &Ledger{
		Contas:    contas,
		Historico: historico,
		Journal:   journal,
		Agora:     time.Now,
	}
}

// Hidratar loads the store and the index from the journal.
func (l *Ledger) Hidratar(ctx context.Context) error {
	estado, err := l.Journal.Carregar(ctx)
	if err != nil {
		return fmt.Errorf("could not load ledger state: %w", err)
	}
	l.Contas.Carregar(estado.Abertas, estado.Encerradas)
	l.Historico.Carregar(estado.Transacoes)
	return nil
}

// carimbo returns the commit timestamp for the given accounts. It never goes back
// in time relative to their latest recorded transaction.
func (l *Ledger) carimbo(numeros ...int64) time.Time {
	agora := l.Agora().UTC()
	for _, n := range numeros {
		if ultima, ok := l.Historico.Ultima(n); ok && ultima.After(agora) {
			agora = ultima
		}
	}
	return agora
}

// efetivar journals the change and then makes it visible. Nothing is applied
// in memory when the journal fails.
//
// Balances are applied before the history is appended. A reader that takes a
// statement and then the balance may find the balance already ahead of the
// statement's last saldoNovo, never behind it.
func (l *Ledger) efetivar(ctx context.Context, mudanca repository.Mudanca) error {
	if err := l.Journal.Registrar(ctx, mudanca); err != nil {
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"accounts":     len(mudanca.Contas),
			"transactions": len(mudanca.Transacoes),
		}).Error("Failed to journal ledger change")
		return fmt.Errorf("could not record ledger change: %w", err)
	}

	if len(mudanca.Contas) > 0 {
		l.Contas.Aplicar(mudanca.Contas...)
	}
	l.Historico.Registrar(mudanca.Transacoes...)
	for _, numero := range mudanca.Encerradas {
		l.Contas.Arquivar(numero)
	}
	return nil
}

// validarValor accepts positive amounts with at most two decimal places.
func validarValor(valor decimal.Decimal) error {
	if valor.Sign() <= 0 {
		return fmt.Errorf("%w: %s", model.ErrValorInvalido, valor.String())
	}
	if !valor.Equal(valor.Round(2)) {
		return fmt.Errorf("%w: %s tem mais de duas casas decimais", model.ErrValorInvalido, valor.String())
	}
	return nil
}

func contar(operacao string, err error) {
	resultado := "ok"
	if err != nil {
		resultado = "error"
	}
	ledgerOperations.WithLabelValues(operacao, resultado).Inc()
}
