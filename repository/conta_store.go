package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"bytebank-api/logger"
	"bytebank-api/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

type registro struct {
	conta model.Conta
	trava *semaphore.Weighted
}

// ContaStore keeps the accounts in memory, keyed by numero.
//
// mu guards the maps and the account values. trava serialises the
// read-modify-write of one account and is held across journal writes,
// so it is separate from mu.
type ContaStore struct {
	mu         sync.RWMutex
	contas     map[int64]*registro
	encerradas map[int64]model.Conta
	// reservadas holds numbers whose opening is being journaled.
	reservadas map[int64]struct{}
	versao     atomic.Uint64
	espera     time.Duration
}

// NewContaStore creates an empty store. espera bounds the wait for an account lock;
// zero means the wait is bounded only by the caller's context.
func NewContaStore(espera time.Duration) *ContaStore {
	return &ContaStore{
		contas:     make(map[int64]*registro),
		encerradas: make(map[int64]model.Conta),
		reservadas: make(map[int64]struct{}),
		espera:     espera,
	}
}

// Inserir adds a new account. antes runs while the number is reserved and before the
// account becomes visible; if it fails nothing is inserted. The store is not locked
// while antes runs.
func (s *ContaStore) Inserir(conta model.Conta, antes func() error) error {
	s.mu.Lock()
	if err := s.disponivel(conta.Numero); err != nil {
		s.mu.Unlock()
		return err
	}
	s.reservadas[conta.Numero] = struct{}{}
	s.mu.Unlock()

	if antes != nil {
		if err := antes(); err != nil {
			s.mu.Lock()
			delete(s.reservadas, conta.Numero)
			s.mu.Unlock()
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reservadas, conta.Numero)
	s.contas[conta.Numero] = &registro{conta: conta, trava: semaphore.NewWeighted(1)}
	s.versao.Add(1)
	return nil
}

// disponivel must be called with mu held.
func (s *ContaStore) disponivel(numero int64) error {
	if _, ok := s.contas[numero]; ok {
		return fmt.Errorf("%w: %d", model.ErrContaJaExiste, numero)
	}
	if _, ok := s.encerradas[numero]; ok {
		return fmt.Errorf("%w: %d (encerrada)", model.ErrContaJaExiste, numero)
	}
	if _, ok := s.reservadas[numero]; ok {
		return fmt.Errorf("%w: %d (em abertura)", model.ErrContaJaExiste, numero)
	}
	return nil
}

// Buscar returns a copy of an open (active or inactive) account.
func (s *ContaStore) Buscar(numero int64) (model.Conta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.contas[numero]
	if !ok {
		return model.Conta{}, fmt.Errorf("%w: %d", model.ErrContaNaoEncontrada, numero)
	}
	return r.conta, nil
}

// Existe reports whether numero was ever opened, closed accounts included.
func (s *ContaStore) Existe(numero int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.contas[numero]; ok {
		return true
	}
	_, ok := s.encerradas[numero]
	return ok
}

// Listar returns every open account ordered by numero.
func (s *ContaStore) Listar() []model.Conta {
	return s.filtrar(func(model.Conta) bool { return true })
}

// Ativas returns the active accounts ordered by numero.
func (s *ContaStore) Ativas() []model.Conta {
	return s.filtrar(func(c model.Conta) bool { return c.EstaAtiva })
}

func (s *ContaStore) filtrar(incluir func(model.Conta) bool) []model.Conta {
	s.mu.RLock()
	out := make([]model.Conta, 0, len(s.contas))
	for _, r := range s.contas {
		if incluir(r.conta) {
			out = append(out, r.conta)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Numero < out[j].Numero })
	return out
}

// Aplicar stores new states for existing accounts in one critical section,
// so a reader sees all of them or none.
func (s *ContaStore) Aplicar(contas ...model.Conta) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range contas {
		r, ok := s.contas[c.Numero]
		if !ok {
			logger.Log.WithField("numero", c.Numero).Error("Attempt to apply state to an unknown account")
			continue
		}
		r.conta = c
	}
	s.versao.Add(1)
}

// Arquivar moves an account to the closed set. Its number stays reserved.
func (s *ContaStore) Arquivar(numero int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.contas[numero]
	if !ok {
		return
	}
	delete(s.contas, numero)
	s.encerradas[numero] = r.conta
	s.versao.Add(1)
}

// Versao changes every time the set of accounts or any of their states changes.
func (s *ContaStore) Versao() uint64 {
	return s.versao.Load()
}

// Travar acquires the locks of the given accounts in ascending numero order and returns the
// function that releases them. Any number that is not an open account yields
// ErrContaNaoEncontrada, reported in the order the numbers were given, and nothing is locked.
// Waiting longer than the store's espera yields ErrContaOcupada.
func (s *ContaStore) Travar(ctx context.Context, numeros ...int64) (func(), error) {
	s.mu.RLock()
	for _, n := range numeros {
		if _, ok := s.contas[n]; !ok {
			s.mu.RUnlock()
			return nil, fmt.Errorf("%w: %d", model.ErrContaNaoEncontrada, n)
		}
	}
	travas, alvos := s.travasDe(ordenarUnicos(numeros))
	s.mu.RUnlock()

	return s.adquirir(ctx, travas, alvos)
}

// TravarExistentes locks those of the given accounts that are open and returns their
// numbers in ascending order. Numbers that are not open accounts are left out.
func (s *ContaStore) TravarExistentes(ctx context.Context, numeros ...int64) (func(), []int64, error) {
	s.mu.RLock()
	travas, alvos := s.travasDe(ordenarUnicos(numeros))
	s.mu.RUnlock()

	liberar, err := s.adquirir(ctx, travas, alvos)
	if err != nil {
		return nil, nil, err
	}
	return liberar, alvos, nil
}

// travasDe must be called with mu held.
func (s *ContaStore) travasDe(ordenados []int64) ([]*semaphore.Weighted, []int64) {
	travas := make([]*semaphore.Weighted, 0, len(ordenados))
	alvos := make([]int64, 0, len(ordenados))
	for _, n := range ordenados {
		if r, ok := s.contas[n]; ok {
			travas = append(travas, r.trava)
			alvos = append(alvos, n)
		}
	}
	return travas, alvos
}

func (s *ContaStore) adquirir(ctx context.Context, travas []*semaphore.Weighted, alvos []int64) (func(), error) {
	waitCtx := ctx
	if s.espera > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, s.espera)
		defer cancel()
	}

	adquiridas := make([]*semaphore.Weighted, 0, len(travas))
	liberar := func() {
		for i := len(adquiridas) - 1; i >= 0; i-- {
			adquiridas[i].Release(1)
		}
	}

	for i, t := range travas {
		if err := t.Acquire(waitCtx, 1); err != nil {
			liberar()
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Log.WithFields(logrus.Fields{
				"account": alvos[i],
				"waited":  s.espera.String(),
			}).Warn("Timed out waiting for account lock")
			return nil, fmt.Errorf("%w: conta %d", model.ErrContaOcupada, alvos[i])
		}
		adquiridas = append(adquiridas, t)
	}
	return liberar, nil
}

// Carregar replaces the content of the store, used to hydrate it from the journal.
func (s *ContaStore) Carregar(abertas, encerradas []model.Conta) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contas = make(map[int64]*registro, len(abertas))
	for _, c := range abertas {
		s.contas[c.Numero] = &registro{conta: c, trava: semaphore.NewWeighted(1)}
	}
	s.encerradas = make(map[int64]model.Conta, len(encerradas))
	for _, c := range encerradas {
		s.encerradas[c.Numero] = c
	}
	s.reservadas = make(map[int64]struct{})
	s.versao.Add(1)
}

func ordenarUnicos(numeros []int64) []int64 {
	out := make([]int64, 0, len(numeros))
	visto := make(map[int64]bool, len(numeros))
	for _, n := range numeros {
		if !visto[n] {
			visto[n] = true
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
