package api

import (
	"net/http"
	"subway-path-service/internal/api/handlers"
	"subway-path-service/internal/domain"
	"subway-path-service/internal/ports"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(catalog ports.Catalog, policy domain.FarePolicy) http.Handler {
	router := httprouter.New()

	lineHandler := &handlers.LineHandler{Repo: catalog}
	pathHandler := &handlers.PathHandler{Repo: catalog, Policy: policy}

	handle(router, http.MethodGet, "/health", handlers.Health)
	handle(router, http.MethodGet, "/lines", lineHandler.List)
	handle(router, http.MethodPost, "/paths/quote", pathHandler.Quote)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	return requestMiddleware(router)
}

func handle(router *httprouter.Router, method, path string, h http.HandlerFunc) {
	router.Handler(method, path, instrument(method, path, h))
}
