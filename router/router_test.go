// file: router/router_test.go

package router_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"bytebank-api/app"
	"bytebank-api/config"
	"bytebank-api/logger"
	"bytebank-api/model"
	"bytebank-api/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	config.LoadConfig("../")
	config.AppConfig.JWT.SecretKey = "router-test-secret"
	os.Exit(m.Run())
}

// --- Test Helper Functions ---

func do(t *testing.T, testApp *app.TestApp, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.RequestURI = path
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	testApp.Router.ServeHTTP(rr, req)
	return rr
}

func abrirContaForTest(t *testing.T, testApp *app.TestApp, numero int64) {
	t.Helper()
	body := fmt.Sprintf(`{"numero": %d, "dadosCliente": {"nome": "Ana", "cpf": "529.982.247-25", "email": "ana@example.com"}}`, numero)
	rr := do(t, testApp, "POST", "/contas", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func depositarForTest(t *testing.T, testApp *app.TestApp, numero int64, valor string) {
	t.Helper()
	rr := do(t, testApp, "POST", fmt.Sprintf("/contas/%d/deposito", numero), fmt.Sprintf(`{"valor": %s}`, valor))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotEmpty(t, body["erro"])
	return body
}

// --- Test Suites ---

func TestHealthCheck_Integration(t *testing.T) {
	testApp := app.NewTestApp(nil, nil)
	rr := do(t, testApp, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"Bytebank ledger is healthy and running"}`, rr.Body.String())
}

func TestAbrirConta_Integration(t *testing.T) {
	testApp := app.NewTestApp(nil, nil)

	t.Run("success", func(t *testing.T) {
		rr := do(t, testApp, "POST", "/contas", `{"numero": 100, "dadosCliente": {"nome": "Ana", "cpf": "52998224725", "email": "ana@example.com"}}`)
		assert.Equal(t, http.StatusCreated, rr.Code)

		var conta model.Conta
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &conta))
		assert.Equal(t, int64(100), conta.Numero)
		assert.True(t, conta.EstaAtiva)
		assert.True(t, conta.Saldo.IsZero())
	})

	t.Run("duplicate number", func(t *testing.T) {
		rr := do(t, testApp, "POST", "/contas", `{"numero": 100, "dadosCliente": {"nome": "Bia", "cpf": "11144477735", "email": "bia@example.com"}}`)
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "CONTA_JA_EXISTE", decodeError(t, rr)["codigo"])

		rr = do(t, testApp, "POST", "/contas", `{"numero": 100, "dadosCliente": {"nome": "", "cpf": "1", "email": "x"}}`)
		assert.Equal(t, http.StatusConflict, rr.Code, "number is checked before holder data")
	})

	t.Run("invalid cpf", func(t *testing.T) {
		rr := do(t, testApp, "POST", "/contas", `{"numero": 101, "dadosCliente": {"nome": "Bia", "cpf": "12345678900", "email": "bia@example.com"}}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "DADOS_INVALIDOS", decodeError(t, rr)["codigo"])
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := do(t, testApp, "POST", "/contas", `{"numero": `)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("get and list", func(t *testing.T) {
		rr := do(t, testApp, "GET", "/contas/100", "")
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = do(t, testApp, "GET", "/contas/404", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)

		rr = do(t, testApp, "GET", "/contas", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		var contas []model.Conta
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &contas))
		assert.Len(t, contas, 1)
	})
}

func TestCenarioCompleto_Integration(t *testing.T) {
	testApp := app.NewTestApp(nil, nil)
	abrirContaForTest(t, testApp, 100)
	depositarForTest(t, testApp, 100, "500.00")

	rr := do(t, testApp, "POST", "/contas/100/saque", `{"valor": "200.00"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var mov model.MovimentacaoResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &mov))
	assert.Equal(t, model.Saque, mov.Transacao.TipoOperacao)

	rr = do(t, testApp, "GET", "/contas/100/saldo", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var saldo decimal.Decimal
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &saldo))
	assert.True(t, saldo.Equal(decimal.NewFromInt(300)), saldo.String())

	rr = do(t, testApp, "GET", "/contas/100/extrato", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var extrato []model.Transacao
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &extrato))
	require.Len(t, extrato, 3)
	assert.Equal(t, model.Abertura, extrato[0].TipoOperacao)
	assert.Equal(t, model.Deposito, extrato[1].TipoOperacao)
	assert.Equal(t, model.Saque, extrato[2].TipoOperacao)
}

func TestMovimentacoes_Integration(t *testing.T) {
	testApp := app.NewTestApp(nil, nil)
	abrirContaForTest(t, testApp, 1)

	t.Run("insufficient funds", func(t *testing.T) {
		rr := do(t, testApp, "POST", "/contas/1/saque", `{"valor": 10}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, "SALDO_INSUFICIENTE", decodeError(t, rr)["codigo"])
	})

	t.Run("invalid amount", func(t *testing.T) {
		rr := do(t, testApp, "POST", "/contas/1/deposito", `{"valor": -10}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "VALOR_INVALIDO", decodeError(t, rr)["codigo"])
	})

	t.Run("transfer", func(t *testing.T) {
		abrirContaForTest(t, testApp, 2)
		depositarForTest(t, testApp, 1, "100")

		rr := do(t, testApp, "POST", "/contas/transferencia", `{"numeroContaOrigem": 1, "numeroContaDestino": 2, "valor": 40.5}`)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp model.TransferenciaResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, model.TransferenciaEnviada, resp.Enviada.TipoOperacao)
		assert.Equal(t, resp.Enviada.DataHora, resp.Recebida.DataHora)
		assert.True(t, resp.Recebida.SaldoNovo.Equal(decimal.RequireFromString("40.5")))
	})

	t.Run("self transfer", func(t *testing.T) {
		rr := do(t, testApp, "POST", "/contas/transferencia", `{"numeroContaOrigem": 1, "numeroContaDestino": 1, "valor": 1}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "TRANSFERENCIA_MESMA_CONTA", decodeError(t, rr)["codigo"])
	})

	t.Run("unknown destination", func(t *testing.T) {
		rr := do(t, testApp, "POST", "/contas/transferencia", `{"numeroContaOrigem": 1, "numeroContaDestino": 9, "valor": 1}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCicloDeVida_Integration(t *testing.T) {
	testApp := app.NewTestApp(nil, nil)
	abrirContaForTest(t, testApp, 1)
	abrirContaForTest(t, testApp, 2)
	depositarForTest(t, testApp, 2, "50.00")

	t.Run("update holder", func(t *testing.T) {
		rr := do(t, testApp, "PUT", "/contas/1/titular", `{"nome": "Ana Souza", "email": "ana.souza@example.com"}`)
		require.Equal(t, http.StatusOK, rr.Code)
		var conta model.Conta
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &conta))
		assert.Equal(t, "Ana Souza", conta.Titular.Nome)
		assert.Equal(t, "52998224725", conta.Titular.CPF)
	})

	t.Run("close with balance", func(t *testing.T) {
		rr := do(t, testApp, "DELETE", "/contas/2", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, "SALDO_NAO_ZERO", decodeError(t, rr)["codigo"])
	})

	t.Run("deactivate", func(t *testing.T) {
		rr := do(t, testApp, "PUT", "/contas/2/desativar", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"mensagem":"Conta desativada com sucesso"}`, rr.Body.String())

		rr = do(t, testApp, "PUT", "/contas/2/desativar", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, "CONTA_JA_INATIVA", decodeError(t, rr)["codigo"])

		rr = do(t, testApp, "POST", "/contas/2/deposito", `{"valor": 1}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, "CONTA_INATIVA", decodeError(t, rr)["codigo"])
	})

	t.Run("close with zero balance", func(t *testing.T) {
		rr := do(t, testApp, "DELETE", "/contas/1", "")
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = do(t, testApp, "GET", "/contas/1", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)

		rr = do(t, testApp, "GET", "/contas/1/extrato", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("non numeric path", func(t *testing.T) {
		rr := do(t, testApp, "GET", "/contas/abc/saldo", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRelatorios_Integration(t *testing.T) {
	testApp := app.NewTestApp(nil, nil)

	t.Run("general report without accounts", func(t *testing.T) {
		rr := do(t, testApp, "GET", "/contas/relatorios/geral", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"totalContasAtivas":0,"saldoTotal":0,"saldoMedio":0,"maiorSaldo":0,"menorSaldo":0}`, rr.Body.String())
	})

	abrirContaForTest(t, testApp, 1)
	abrirContaForTest(t, testApp, 2)
	depositarForTest(t, testApp, 1, "150")
	depositarForTest(t, testApp, 2, "99.99")

	t.Run("low balance uses 100 by default", func(t *testing.T) {
		rr := do(t, testApp, "GET", "/contas/relatorios/saldo-baixo", "")
		require.Equal(t, http.StatusOK, rr.Code)
		var contas []model.Conta
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &contas))
		require.Len(t, contas, 1)
		assert.Equal(t, int64(2), contas[0].Numero)

		rr = do(t, testApp, "GET", "/contas/relatorios/saldo-baixo?limite=200", "")
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &contas))
		assert.Len(t, contas, 2)
	})

	t.Run("movement report", func(t *testing.T) {
		hoje := time.Now().UTC().Format("2006-01-02")
		rr := do(t, testApp, "GET", fmt.Sprintf("/contas/relatorios/movimentacoes?inicio=%s&fim=%s", hoje, hoje), "")
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var relatorio map[string]model.EstatisticaMovimentacao
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &relatorio))
		assert.Equal(t, 2, relatorio["DEPOSITO"].Quantidade)
		assert.True(t, relatorio["DEPOSITO"].ValorTotal.Equal(decimal.RequireFromString("249.99")))

		rr = do(t, testApp, "GET", "/contas/relatorios/movimentacoes", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = do(t, testApp, "GET", "/contas/relatorios/movimentacoes?inicio=01/01/2024&fim=2024-01-02", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("history by type", func(t *testing.T) {
		rr := do(t, testApp, "GET", "/contas/historico/tipo/deposito", "")
		require.Equal(t, http.StatusOK, rr.Code)
		var transacoes []model.Transacao
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &transacoes))
		assert.Len(t, transacoes, 2)

		rr = do(t, testApp, "GET", "/contas/historico/tipo/pix", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestTaxaManutencao_Integration(t *testing.T) {
	testApp := app.NewTestApp(nil, nil)
	abrirContaForTest(t, testApp, 1)
	abrirContaForTest(t, testApp, 2)
	depositarForTest(t, testApp, 1, "20")

	adminToken, err := service.GenerateJWT("ops", model.RoleAdmin, time.Hour)
	require.NoError(t, err)
	userToken, err := service.GenerateJWT("someone", "user", time.Hour)
	require.NoError(t, err)

	t.Run("without token", func(t *testing.T) {
		rr := do(t, testApp, "POST", "/admin/taxa-manutencao", `{"valorTaxa": 5}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("not admin", func(t *testing.T) {
		rr := do(t, testApp, "POST", "/admin/taxa-manutencao", `{"valorTaxa": 5}`, "Authorization", "Bearer "+userToken)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("admin", func(t *testing.T) {
		rr := do(t, testApp, "POST", "/admin/taxa-manutencao", `{"valorTaxa": 5}`, "Authorization", "Bearer "+adminToken)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.JSONEq(t, `{"contasAfetadas":1,"valorTaxa":5,"totalArrecadado":5}`, rr.Body.String())
	})
}

func TestMetricsAndDocs_Integration(t *testing.T) {
	testApp := app.NewTestApp(nil, nil)
	abrirContaForTest(t, testApp, 1)

	rr := do(t, testApp, "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "bytebank_http_requests_total")
	assert.Contains(t, rr.Body.String(), "bytebank_ledger_operations_total")

	rr = do(t, testApp, "GET", "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/contas/transferencia")
}
