package handler

import (
	"encoding/json"
	"net/http"
)

const serviceName = "go-login-api"

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthCheck godoc
// @Summary      Show the status of server
// @Description  get the status of server
// @Tags         health
// @Produce      json
// @Success      200  {object}  handler.healthResponse
// @Router       /health [get]
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(healthResponse{
		Status:  "API is healthy and running",
		Service: serviceName,
	})
}
