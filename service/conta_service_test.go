// file: service/conta_service_test.go

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"bytebank-api/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCacheClient is a mock for ICacheClient.
type MockCacheClient struct{ mock.Mock }

func (m *MockCacheClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *MockCacheClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

func TestContaService_Abrir(t *testing.T) {
	_, contas, _, relatorios := novosServicos()

	conta := abrirConta(t, contas, 100)

	assert.Equal(t, int64(100), conta.Numero)
	assert.True(t, conta.EstaAtiva)
	assertDecimal(t, "0", conta.Saldo)
	assert.Equal(t, "52998224725", conta.Titular.CPF, "CPF is stored as digits only")

	extrato, err := relatorios.Extrato(100, nil, nil)
	require.NoError(t, err)
	require.Len(t, extrato, 1)
	assert.Equal(t, model.Abertura, extrato[0].TipoOperacao)
	assertDecimal(t, "0", extrato[0].Valor)
	assertDecimal(t, "0", extrato[0].SaldoNovo)
}

func TestContaService_AbrirDadosInvalidos(t *testing.T) {
	_, contas, _, _ := novosServicos()
	valido := model.DadosCliente{Nome: "Ana", CPF: "52998224725", Email: "ana@example.com"}

	tests := []struct {
		name  string
		req   model.AberturaContaRequest
		campo string
	}{
		{"zero number", model.AberturaContaRequest{Numero: 0, DadosCliente: valido}, ""},
		{"negative number", model.AberturaContaRequest{Numero: -1, DadosCliente: valido}, ""},
		{"bad cpf", model.AberturaContaRequest{Numero: 1, DadosCliente: model.DadosCliente{Nome: "Ana", CPF: "52998224724", Email: "ana@example.com"}}, "cpf"},
		{"repeated digits cpf", model.AberturaContaRequest{Numero: 1, DadosCliente: model.DadosCliente{Nome: "Ana", CPF: "11111111111", Email: "ana@example.com"}}, "cpf"},
		{"bad email", model.AberturaContaRequest{Numero: 1, DadosCliente: model.DadosCliente{Nome: "Ana", CPF: "52998224725", Email: "ana"}}, "email"},
		{"blank name", model.AberturaContaRequest{Numero: 1, DadosCliente: model.DadosCliente{Nome: "   ", CPF: "52998224725", Email: "ana@example.com"}}, "nome"},
		{"long name", model.AberturaContaRequest{Numero: 1, DadosCliente: model.DadosCliente{Nome: strings.Repeat("a", 121), CPF: "52998224725", Email: "ana@example.com"}}, "nome"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := contas.Abrir(context.Background(), tt.req)
			assert.ErrorIs(t, err, model.ErrDadosInvalidos)
			if tt.campo != "" {
				assert.Contains(t, err.Error(), tt.campo)
			}
		})
	}

	lista, err := contas.Listar(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lista)
}

func TestContaService_AbrirNumeroRepetido(t *testing.T) {
	_, contas, _, _ := novosServicos()
	ctx := context.Background()
	abrirConta(t, contas, 1)

	_, err := contas.Abrir(ctx, model.AberturaContaRequest{
		Numero:       1,
		DadosCliente: model.DadosCliente{Nome: "Bia", CPF: "11144477735", Email: "bia@example.com"},
	})
	assert.ErrorIs(t, err, model.ErrContaJaExiste)

	// Numbers of closed accounts are not reused.
	abrirConta(t, contas, 2)
	require.NoError(t, contas.Encerrar(ctx, 2))
	_, err = contas.Abrir(ctx, model.AberturaContaRequest{
		Numero:       2,
		DadosCliente: model.DadosCliente{Nome: "Bia", CPF: "11144477735", Email: "bia@example.com"},
	})
	assert.ErrorIs(t, err, model.ErrContaJaExiste)
}

func TestContaService_AbrirFalhaNoJournal(t *testing.T) {
	journal := new(MockJournal)
	ledger := novoLedger(journal)
	contas := NewContaService(ledger, nil, time.Minute)
	journal.On("Registrar", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	_, err := contas.Abrir(context.Background(), model.AberturaContaRequest{
		Numero:       1,
		DadosCliente: model.DadosCliente{Nome: "Ana", CPF: "52998224725", Email: "ana@example.com"},
	})

	assert.Error(t, err)
	assert.False(t, ledger.Contas.Existe(1))
	assert.Empty(t, ledger.Historico.Extrato(1, nil, nil))
	journal.AssertExpectations(t)
}

func TestContaService_Desativar(t *testing.T) {
	_, contas, _, _ := novosServicos()
	ctx := context.Background()
	abrirConta(t, contas, 1)

	require.NoError(t, contas.Desativar(ctx, 1))
	conta, err := contas.Buscar(1)
	require.NoError(t, err)
	assert.False(t, conta.EstaAtiva)

	assert.ErrorIs(t, contas.Desativar(ctx, 1), model.ErrContaJaInativa)
	assert.ErrorIs(t, contas.Desativar(ctx, 2), model.ErrContaNaoEncontrada)
}

func TestContaService_Encerrar(t *testing.T) {
	_, contas, transacoes, relatorios := novosServicos()
	ctx := context.Background()
	abrirConta(t, contas, 1)
	abrirConta(t, contas, 2)
	_, err := transacoes.Depositar(ctx, 2, d("50.00"))
	require.NoError(t, err)

	t.Run("zero balance", func(t *testing.T) {
		require.NoError(t, contas.Encerrar(ctx, 1))

		_, err := contas.Buscar(1)
		assert.ErrorIs(t, err, model.ErrContaNaoEncontrada)

		extrato, err := relatorios.Extrato(1, nil, nil)
		require.NoError(t, err, "history of a closed account stays available")
		assert.Len(t, extrato, 1)

		assert.ErrorIs(t, contas.Encerrar(ctx, 1), model.ErrContaNaoEncontrada)
	})

	t.Run("residual balance", func(t *testing.T) {
		err := contas.Encerrar(ctx, 2)
		assert.ErrorIs(t, err, model.ErrSaldoNaoZero)

		conta, err := contas.Buscar(2)
		require.NoError(t, err)
		assert.True(t, conta.EstaAtiva)
		assertDecimal(t, "50.00", conta.Saldo)
	})
}

func TestContaService_AtualizarTitular(t *testing.T) {
	_, contas, _, _ := novosServicos()
	ctx := context.Background()
	abrirConta(t, contas, 1)

	conta, err := contas.AtualizarTitular(ctx, 1, model.AtualizarTitularRequest{Nome: " Ana Souza ", Email: "ana.souza@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", conta.Titular.Nome)
	assert.Equal(t, "ana.souza@example.com", conta.Titular.Email)
	assert.Equal(t, "52998224725", conta.Titular.CPF)

	_, err = contas.AtualizarTitular(ctx, 1, model.AtualizarTitularRequest{Nome: "Ana", Email: "invalid"})
	assert.ErrorIs(t, err, model.ErrDadosInvalidos)

	_, err = contas.AtualizarTitular(ctx, 9, model.AtualizarTitularRequest{Nome: "Ana", Email: "ana@example.com"})
	assert.ErrorIs(t, err, model.ErrContaNaoEncontrada)
}

func TestContaService_ListarCache(t *testing.T) {
	cache := new(MockCacheClient)
	ledger := novoLedger(nil)
	contas := NewContaService(ledger, cache, 10*time.Minute)
	ctx := context.Background()

	abrirConta(t, contas, 2)
	abrirConta(t, contas, 1)

	t.Run("cache miss reads the store and fills the cache", func(t *testing.T) {
		cache.On("Get", ctx, mock.AnythingOfType("string")).Return(redis.NewStringResult("", redis.Nil)).Once()
		cache.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, 10*time.Minute).Return(redis.NewStatusResult("OK", nil)).Once()

		lista, err := contas.Listar(ctx)

		require.NoError(t, err)
		require.Len(t, lista, 2)
		assert.Equal(t, int64(1), lista[0].Numero)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit is served as is", func(t *testing.T) {
		cached, _ := json.Marshal([]model.Conta{{Numero: 77}})
		cache.On("Get", ctx, mock.AnythingOfType("string")).Return(redis.NewStringResult(string(cached), nil)).Once()

		lista, err := contas.Listar(ctx)

		require.NoError(t, err)
		require.Len(t, lista, 1)
		assert.Equal(t, int64(77), lista[0].Numero)
		cache.AssertExpectations(t)
	})

	t.Run("key follows the store version", func(t *testing.T) {
		var chaves []string
		cache.On("Get", ctx, mock.AnythingOfType("string")).Run(func(args mock.Arguments) {
			chaves = append(chaves, args.String(1))
		}).Return(redis.NewStringResult("", redis.Nil)).Twice()
		cache.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, 10*time.Minute).Return(redis.NewStatusResult("OK", nil)).Twice()

		_, err := contas.Listar(ctx)
		require.NoError(t, err)
		require.NoError(t, contas.Desativar(ctx, 1))
		lista, err := contas.Listar(ctx)
		require.NoError(t, err)

		require.Len(t, chaves, 2)
		assert.NotEqual(t, chaves[0], chaves[1])
		assert.False(t, lista[0].EstaAtiva)
		cache.AssertExpectations(t)
	})

	t.Run("cache errors fall back to the store", func(t *testing.T) {
		cache.On("Get", ctx, mock.AnythingOfType("string")).Return(redis.NewStringResult("", errors.New("connection refused"))).Once()
		cache.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, 10*time.Minute).Return(redis.NewStatusResult("", errors.New("connection refused"))).Once()

		lista, err := contas.Listar(ctx)

		require.NoError(t, err)
		assert.Len(t, lista, 2)
		cache.AssertExpectations(t)
	})
}
