// Package handler holds the HTTP handlers for every route in spec §6,
// one struct per board plus a Handler aggregate the router wires up.
package handler

import (
	"hubdispatch/backend/internal/service"
)

// Handler aggregates every board's HTTP handlers behind one constructor,
// the way the router wants to wire them.
type Handler struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Dispatch *DispatchHandler
	Lead     *LeadHandler
	Archive  *ArchiveHandler
	Admin    *AdminHandler
}

// New builds a Handler from the service layer.
func New(svc *service.Service) *Handler {
	return &Handler{
		Health:   NewHealthHandler(),
		Auth:     NewAuthHandler(svc.Auth),
		Dispatch: NewDispatchHandler(svc.Dispatch),
		Lead:     NewLeadHandler(svc.Lead),
		Archive:  NewArchiveHandler(svc.Archive),
		Admin:    NewAdminHandler(svc.Admin),
	}
}
