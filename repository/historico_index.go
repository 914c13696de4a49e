package repository

import (
	"sort"
	"sync"
	"time"

	"bytebank-api/model"
)

// HistoricoIndex is the append-only transaction log, indexed by account.
type HistoricoIndex struct {
	mu       sync.RWMutex
	porConta map[int64][]model.Transacao
	todas    []model.Transacao
}

func NewHistoricoIndex() *HistoricoIndex {
	return &HistoricoIndex{porConta: make(map[int64][]model.Transacao)}
}

// Registrar appends all transactions in one critical section, so both legs of a
// transfer become visible together.
func (h *HistoricoIndex) Registrar(transacoes ...model.Transacao) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, t := range transacoes {
		h.porConta[t.NumeroConta] = append(h.porConta[t.NumeroConta], t)
		h.todas = append(h.todas, t)
	}
}

// Ultima returns the timestamp of the latest transaction of an account.
func (h *HistoricoIndex) Ultima(numero int64) (time.Time, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	log := h.porConta[numero]
	if len(log) == 0 {
		return time.Time{}, false
	}
	return log[len(log)-1].DataHora, true
}

// Extrato returns a copy of the account's transactions within [inicio, fim], both optional,
// ordered by DataHora.
func (h *HistoricoIndex) Extrato(numero int64, inicio, fim *time.Time) []model.Transacao {
	h.mu.RLock()
	out := filtrarPeriodo(h.porConta[numero], inicio, fim)
	h.mu.RUnlock()

	ordenarPorData(out)
	return out
}

// NoPeriodo returns the transactions of every account within [inicio, fim].
func (h *HistoricoIndex) NoPeriodo(inicio, fim time.Time) []model.Transacao {
	h.mu.RLock()
	out := filtrarPeriodo(h.todas, &inicio, &fim)
	h.mu.RUnlock()

	ordenarPorData(out)
	return out
}

func (h *HistoricoIndex) PorTipo(tipo model.TipoOperacao) []model.Transacao {
	h.mu.RLock()
	out := make([]model.Transacao, 0)
	for _, t := range h.todas {
		if t.TipoOperacao == tipo {
			out = append(out, t)
		}
	}
	h.mu.RUnlock()

	ordenarPorData(out)
	return out
}

// Carregar replaces the whole log, used to hydrate it from the journal.
func (h *HistoricoIndex) Carregar(transacoes []model.Transacao) {
	ordenadas := make([]model.Transacao, len(transacoes))
	copy(ordenadas, transacoes)
	ordenarPorData(ordenadas)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.porConta = make(map[int64][]model.Transacao)
	h.todas = nil
	for _, t := range ordenadas {
		h.porConta[t.NumeroConta] = append(h.porConta[t.NumeroConta], t)
		h.todas = append(h.todas, t)
	}
}

func filtrarPeriodo(transacoes []model.Transacao, inicio, fim *time.Time) []model.Transacao {
	out := make([]model.Transacao, 0, len(transacoes))
	for _, t := range transacoes {
		if inicio != nil && t.DataHora.Before(*inicio) {
			continue
		}
		if fim != nil && t.DataHora.After(*fim) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ordenarPorData is stable: entries with the same timestamp keep their commit order.
func ordenarPorData(transacoes []model.Transacao) {
	sort.SliceStable(transacoes, func(i, j int) bool {
		return transacoes[i].DataHora.Before(transacoes[j].DataHora)
	})
}
