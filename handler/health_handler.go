package handler

import (
	"net/http"
)

const healthStatus = "Bytebank ledger is healthy and running"

// HealthCheck godoc
// @Summary      Liveness of the ledger
// @Description  Reports that the ledger process is up and serving requests
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": healthStatus})
}
