package main

import (
	"net/http"

	"github.com/vitalwave/mediguide/internal/chat"
	"github.com/vitalwave/mediguide/internal/documents"
	pkgroutes "github.com/vitalwave/mediguide/pkg/routes"
)

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(r pkgroutes.System, docs *documents.Handler, chatHandler *chat.Handler) {
	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})

	r.RegisterGroup(docs.Routes())
	r.RegisterGroup(chatHandler.Routes())
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
