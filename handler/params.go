package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"bytebank-api/common"
	"bytebank-api/model"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func numeroFromPath(r *http.Request) (int64, *common.AppError) {
	numero, err := strconv.ParseInt(mux.Vars(r)["numero"], 10, 64)
	if err != nil || numero <= 0 {
		return 0, common.NewAppError(http.StatusBadRequest, "Número de conta inválido",
			fmt.Errorf("%w: numero %q", model.ErrDadosInvalidos, mux.Vars(r)["numero"]))
	}
	return numero, nil
}

// parseData accepts a yyyy-MM-dd date or an RFC 3339 instant. A plain date covers the whole
// UTC day, so fimDoDia selects its last instant.
func parseData(valor string, fimDoDia bool) (time.Time, error) {
	if dia, err := time.Parse(dateLayout, valor); err == nil {
		if fimDoDia {
			return dia.Add(24*time.Hour - time.Nanosecond), nil
		}
		return dia, nil
	}
	instante, err := time.Parse(time.RFC3339Nano, valor)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: data %q fora do formato yyyy-MM-dd", model.ErrDadosInvalidos, valor)
	}
	return instante.UTC(), nil
}

// periodoFromQuery reads the optional inicio and fim query parameters.
func periodoFromQuery(r *http.Request) (inicio, fim *time.Time, appErr *common.AppError) {
	q := r.URL.Query()
	if v := q.Get("inicio"); v != "" {
		t, err := parseData(v, false)
		if err != nil {
			return nil, nil, common.NewAppError(http.StatusBadRequest, err.Error(), err)
		}
		inicio = &t
	}
	if v := q.Get("fim"); v != "" {
		t, err := parseData(v, true)
		if err != nil {
			return nil, nil, common.NewAppError(http.StatusBadRequest, err.Error(), err)
		}
		fim = &t
	}
	return inicio, fim, nil
}

func decimalFromQuery(r *http.Request, key string, padrao decimal.Decimal) (decimal.Decimal, *common.AppError) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return padrao, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, common.NewAppError(http.StatusBadRequest, fmt.Sprintf("Parâmetro %s inválido", key),
			fmt.Errorf("%w: %s=%q", model.ErrDadosInvalidos, key, v))
	}
	return d, nil
}
