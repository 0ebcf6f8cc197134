package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hubdispatch/backend/internal/apperr"
	"hubdispatch/backend/internal/fids"
	"hubdispatch/backend/internal/opswindow"
	"hubdispatch/backend/internal/syncengine"
)

// AdminService backs the manual sync trigger used for testing (spec
// §4.9, POST /admin/sync).
type AdminService interface {
	Sync(ctx context.Context) (syncengine.Result, error)
}

type adminService struct {
	fetcher *fids.Fetcher
	engine  *syncengine.Engine
	loc     *time.Location
	logger  *zap.Logger
}

// NewAdminService builds an AdminService.
func NewAdminService(fetcher *fids.Fetcher, engine *syncengine.Engine, loc *time.Location, logger *zap.Logger) AdminService {
	return &adminService{fetcher: fetcher, engine: engine, loc: loc, logger: logger}
}

func (s *adminService) Sync(ctx context.Context) (syncengine.Result, error) {
	window := opswindow.FullSyncWindow(time.Now(), s.loc)

	fetched, err := s.fetcher.FetchWindow(ctx, window)
	if err != nil {
		s.logger.Error("admin sync: fetch failed", zap.Error(err))
		return syncengine.Result{}, apperr.Internal(err.Error())
	}

	result, err := s.engine.Sync(ctx, fetched)
	if err != nil {
		s.logger.Error("admin sync: reconcile failed", zap.Error(err))
		return syncengine.Result{}, apperr.Internal(err.Error())
	}
	return result, nil
}
