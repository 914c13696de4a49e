package router

import (
	"net/http"

	"bytebank-api/handler"

	_ "bytebank-api/docs"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(contaHandler *handler.ContaHandler, transacaoHandler *handler.TransacaoHandler, relatorioHandler *handler.RelatorioHandler) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	if contaHandler == nil || transacaoHandler == nil || relatorioHandler == nil {
		return r
	}

	api := r.PathPrefix("/contas").Subrouter()
	api.Use(handler.MetricsMiddleware)

	api.Handle("", handler.ErrorHandlingMiddleware(contaHandler.ListarContas)).Methods(http.MethodGet)
	api.Handle("", handler.ErrorHandlingMiddleware(contaHandler.AbrirConta)).Methods(http.MethodPost)
	api.Handle("/transferencia", handler.ErrorHandlingMiddleware(transacaoHandler.Transferir)).Methods(http.MethodPost)

	api.Handle("/relatorios/geral", handler.ErrorHandlingMiddleware(relatorioHandler.RelatorioGeral)).Methods(http.MethodGet)
	api.Handle("/relatorios/saldo-baixo", handler.ErrorHandlingMiddleware(relatorioHandler.ContasComSaldoBaixo)).Methods(http.MethodGet)
	api.Handle("/relatorios/movimentacoes", handler.ErrorHandlingMiddleware(relatorioHandler.RelatorioMovimentacoes)).Methods(http.MethodGet)
	api.Handle("/historico/tipo/{tipo}", handler.ErrorHandlingMiddleware(relatorioHandler.TransacoesPorTipo)).Methods(http.MethodGet)

	api.Handle("/{numero:[0-9]+}", handler.ErrorHandlingMiddleware(contaHandler.BuscarConta)).Methods(http.MethodGet)
	api.Handle("/{numero:[0-9]+}", handler.ErrorHandlingMiddleware(contaHandler.EncerrarConta)).Methods(http.MethodDelete)
	api.Handle("/{numero:[0-9]+}/titular", handler.ErrorHandlingMiddleware(contaHandler.AtualizarTitular)).Methods(http.MethodPut)
	api.Handle("/{numero:[0-9]+}/desativar", handler.ErrorHandlingMiddleware(contaHandler.DesativarConta)).Methods(http.MethodPut)
	api.Handle("/{numero:[0-9]+}/saldo", handler.ErrorHandlingMiddleware(transacaoHandler.ConsultarSaldo)).Methods(http.MethodGet)
	api.Handle("/{numero:[0-9]+}/deposito", handler.ErrorHandlingMiddleware(transacaoHandler.Depositar)).Methods(http.MethodPost)
	api.Handle("/{numero:[0-9]+}/saque", handler.ErrorHandlingMiddleware(transacaoHandler.Sacar)).Methods(http.MethodPost)
	api.Handle("/{numero:[0-9]+}/extrato", handler.ErrorHandlingMiddleware(relatorioHandler.Extrato)).Methods(http.MethodGet)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(handler.MetricsMiddleware, handler.AuthMiddleware, handler.AdminMiddleware)
	admin.Handle("/taxa-manutencao", handler.ErrorHandlingMiddleware(transacaoHandler.AplicarTaxaManutencao)).Methods(http.MethodPost)

	return r
}
