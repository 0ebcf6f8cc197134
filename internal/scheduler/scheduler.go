// Package scheduler wires the cron-driven FIDS sync and nightly archive
// jobs using gocron v2, following the teacher pack's scheduler-manager
// pattern (grounded on the sibling exchange-rate/payment scheduler in the
// examples pack, adapted to this service's two jobs).
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// SyncFunc runs one FIDS fetch-and-reconcile pass.
type SyncFunc func(ctx context.Context) error

// ArchiveFunc runs one nightly archive pass.
type ArchiveFunc func(ctx context.Context) error

// Manager owns the gocron scheduler instance.
type Manager struct {
	scheduler gocron.Scheduler
	logger    *zap.Logger
}

// New builds a Manager bound to the given timezone — cron expressions are
// evaluated against it.
func New(loc *time.Location, logger *zap.Logger) (*Manager, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}
	return &Manager{scheduler: s, logger: logger}, nil
}

// RegisterSync schedules the FIDS sync job on the given cron expression
// (nominally every minute). No singleton mode is applied — spec §5, §9
// accept overlapping runs as a tolerable, idempotent anomaly rather than
// requiring an exclusion guard.
func (m *Manager) RegisterSync(cronExpr string, sync SyncFunc) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Second)
			defer cancel()
			if err := sync(ctx); err != nil {
				m.logger.Error("fids sync failed", zap.Error(err))
			}
		}),
		gocron.WithName("fids-sync"),
	)
	return err
}

// RegisterArchive schedules the nightly archive job on one or more cron
// expressions, evaluated against the Manager's configured location — so a
// single local-time anchor (e.g. "30 3 * * *") already lands at the same
// wall-clock moment across a DST transition; gocron resolves the correct
// UTC offset for that instant the way time.Date does (spec §4.7, §9).
// Callers may still register more than one expression for other reasons;
// singleton mode guards against a slow run still executing when another
// tick lands.
func (m *Manager) RegisterArchive(cronExprs []string, archive ArchiveFunc) error {
	task := gocron.NewTask(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := archive(ctx); err != nil {
			m.logger.Error("archive job failed", zap.Error(err))
		}
	})

	for _, expr := range cronExprs {
		_, err := m.scheduler.NewJob(
			gocron.CronJob(expr, false),
			task,
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithName("nightly-archive"),
			gocron.WithTags("archive"),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Start begins running registered jobs.
func (m *Manager) Start() {
	m.scheduler.Start()
}

// Stop gracefully shuts the scheduler down.
func (m *Manager) Stop() error {
	return m.scheduler.Shutdown()
}
