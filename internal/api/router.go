package api

import (
	"courier-route-service/internal/api/handlers"
	"courier-route-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(source ports.RecordSource, writer ports.ResultWriter) http.Handler {
	mux := http.NewServeMux()

	deliveryHandler := &handlers.DeliveryHandler{Source: source}
	routeHandler := &handlers.RouteHandler{
		Source: source,
		Writer: writer,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/deliveries", deliveryHandler.List)
	mux.HandleFunc("/routes", routeHandler.Plan)

	return loggingMiddleware(mux)
}
