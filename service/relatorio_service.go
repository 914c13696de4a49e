// file: service/relatorio_service.go

package service

import (
	"fmt"
	"sort"
	"time"

	"bytebank-api/model"

	"github.com/shopspring/decimal"
)

// RelatorioService answers read-only queries over snapshots of the store and the history.
type RelatorioService struct {
	ledger *Ledger
}

func NewRelatorioService(ledger *Ledger) *RelatorioService {
	return &RelatorioService{ledger: ledger}
}

// Extrato lists the transactions of an account, closed accounts included, within
// the optional inclusive range.
func (s *RelatorioService) Extrato(numero int64, inicio, fim *time.Time) ([]model.Transacao, error) {
	if !s.ledger.Contas.Existe(numero) {
		return nil, fmt.Errorf("%w: %d", model.ErrContaNaoEncontrada, numero)
	}
	if inicio != nil && fim != nil && inicio.After(*fim) {
		return nil, fmt.Errorf("%w: a data inicial é posterior à data final", model.ErrDadosInvalidos)
	}
	return s.ledger.Historico.Extrato(numero, inicio, fim), nil
}

// RelatorioGeral summarises the balances of the active accounts.
func (s *RelatorioService) RelatorioGeral() model.RelatorioGeral {
	ativas := s.ledger.Contas.Ativas()

	relatorio := model.RelatorioGeral{
		SaldoTotal: decimal.Zero,
		SaldoMedio: decimal.Zero,
		MaiorSaldo: decimal.Zero,
		MenorSaldo: decimal.Zero,
	}
	if len(ativas) == 0 {
		return relatorio
	}

	relatorio.TotalContasAtivas = len(ativas)
	relatorio.MaiorSaldo = ativas[0].Saldo
	relatorio.MenorSaldo = ativas[0].Saldo
	for _, c := range ativas {
		relatorio.SaldoTotal = relatorio.SaldoTotal.Add(c.Saldo)
		if c.Saldo.GreaterThan(relatorio.MaiorSaldo) {
			relatorio.MaiorSaldo = c.Saldo
		}
		if c.Saldo.LessThan(relatorio.MenorSaldo) {
			relatorio.MenorSaldo = c.Saldo
		}
	}
	relatorio.SaldoMedio = relatorio.SaldoTotal.Div(decimal.NewFromInt(int64(len(ativas)))).Round(2)
	return relatorio
}

// ContasComSaldoBaixo returns the active accounts with saldo strictly below limite,
// lowest balance first.
func (s *RelatorioService) ContasComSaldoBaixo(limite decimal.Decimal) []model.Conta {
	out := make([]model.Conta, 0)
	for _, c := range s.ledger.Contas.Ativas() {
		if c.Saldo.LessThan(limite) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if cmp := out[i].Saldo.Cmp(out[j].Saldo); cmp != 0 {
			return cmp < 0
		}
		return out[i].Numero < out[j].Numero
	})
	return out
}

// RelatorioMovimentacoes aggregates every transaction in [inicio, fim] by operation kind.
// Kinds without transactions are left out.
func (s *RelatorioService) RelatorioMovimentacoes(inicio, fim time.Time) (map[model.TipoOperacao]model.EstatisticaMovimentacao, error) {
	if inicio.After(fim) {
		return nil, fmt.Errorf("%w: a data inicial é posterior à data final", model.ErrDadosInvalidos)
	}

	relatorio := make(map[model.TipoOperacao]model.EstatisticaMovimentacao)
	for _, t := range s.ledger.Historico.NoPeriodo(inicio, fim) {
		e, ok := relatorio[t.TipoOperacao]
		if !ok {
			e = model.EstatisticaMovimentacao{
				ValorTotal: decimal.Zero,
				MaiorValor: t.Valor,
				MenorValor: t.Valor,
			}
		}
		e.Quantidade++
		e.ValorTotal = e.ValorTotal.Add(t.Valor)
		if t.Valor.GreaterThan(e.MaiorValor) {
			e.MaiorValor = t.Valor
		}
		if t.Valor.LessThan(e.MenorValor) {
			e.MenorValor = t.Valor
		}
		relatorio[t.TipoOperacao] = e
	}

	for tipo, e := range relatorio {
		e.ValorMedio = e.ValorTotal.Div(decimal.NewFromInt(int64(e.Quantidade))).Round(2)
		relatorio[tipo] = e
	}
	return relatorio, nil
}

func (s *RelatorioService) TransacoesPorTipo(tipo model.TipoOperacao) ([]model.Transacao, error) {
	if !tipo.Valido() {
		return nil, fmt.Errorf("%w: tipo de operação desconhecido %q", model.ErrDadosInvalidos, tipo)
	}
	return s.ledger.Historico.PorTipo(tipo), nil
}
