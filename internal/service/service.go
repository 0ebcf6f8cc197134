// Package service holds the business logic between the HTTP handlers and
// the repository/sync-engine/patch-overlay layers, following the
// teacher's interface-plus-struct service pattern.
package service

import (
	"time"

	"go.uber.org/zap"

	"hubdispatch/backend/config"
	"hubdispatch/backend/internal/archivejob"
	"hubdispatch/backend/internal/fids"
	"hubdispatch/backend/internal/patchoverlay"
	"hubdispatch/backend/internal/repository"
	"hubdispatch/backend/internal/syncengine"
	"hubdispatch/backend/internal/token"
)

// Service aggregates every app-facing service behind one struct.
type Service struct {
	Auth     AuthService
	Dispatch DispatchService
	Lead     LeadService
	Archive  ArchiveService
	Admin    AdminService
}

// New wires the full service layer.
func New(
	cfg *config.Config,
	repo *repository.Repository,
	tokenMgr *token.Manager,
	overlay *patchoverlay.Overlay,
	engine *syncengine.Engine,
	fetcher *fids.Fetcher,
	archiveJob *archivejob.Job,
	loc *time.Location,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, tokenMgr, logger),
		Dispatch: NewDispatchService(repo, overlay, loc),
		Lead:     NewLeadService(repo, overlay, loc),
		Archive:  NewArchiveService(repo),
		Admin:    NewAdminService(fetcher, engine, loc, logger),
	}
}
