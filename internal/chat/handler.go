package chat

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vitalwave/mediguide/internal/identity"
	"github.com/vitalwave/mediguide/pkg/handlers"
	"github.com/vitalwave/mediguide/pkg/pagination"
	"github.com/vitalwave/mediguide/pkg/routes"
)

// Handler provides HTTP endpoints for the conversational assistant.
type Handler struct {
	sys        *System
	resolver   identity.Resolver
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a chat handler with the specified configuration.
func NewHandler(sys *System, resolver identity.Resolver, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		resolver:   resolver,
		logger:     logger.With("handler", "chat"),
		pagination: pagination,
	}
}

// Routes returns the chat endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/chat",
		Description: "Gated medical chat assistant",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Send},
			{Method: "GET", Pattern: "/history", Handler: h.History},
			{Method: "DELETE", Pattern: "/history/{id}", Handler: h.Delete},
			{Method: "DELETE", Pattern: "/history", Handler: h.Clear},
		},
	}
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	principal, err := h.resolver.Resolve(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	var cmd SendCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	reply, err := h.sys.Send(r.Context(), principal, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, reply)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	principal, err := h.resolver.Resolve(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.History(r.Context(), principal.ID, page)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, err := h.resolver.Resolve(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Delete(r.Context(), principal.ID, id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	principal, err := h.resolver.Resolve(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	if err := h.sys.Clear(r.Context(), principal.ID); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
