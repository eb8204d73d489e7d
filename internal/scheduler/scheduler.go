package scheduler

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/pedrocontreras2007/floricoop/internal/service/store"
)

// Scheduler periodically scans the reminder collection and surfaces entries
// that came due since the previous scan.
type Scheduler struct {
	cron     *cron.Cron
	store    *store.Store
	schedule string
	logger   *zap.Logger

	mu       sync.Mutex
	lastScan time.Time
}

// New creates a reminder scheduler with the given cron schedule
// (standard 5-field cron, typically "* * * * *") evaluated in timezone.
func New(schedule, timezone string, dataStore *store.Store, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to local", zap.String("timezone", timezone), zap.Error(err))
		location = time.Local
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(location)),
		store:    dataStore,
		schedule: schedule,
		logger:   logger,
		lastScan: time.Now(),
	}
}

// Start registers the scan job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting reminder scheduler", zap.String("schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.scanDueReminders); err != nil {
		s.logger.Error("failed to schedule reminder scan", zap.Error(err))
		return
	}
	s.cron.Start()
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping reminder scheduler")
	s.cron.Stop()
}

func (s *Scheduler) scanDueReminders() {
	now := time.Now()

	s.mu.Lock()
	since := s.lastScan
	s.lastScan = now
	s.mu.Unlock()

	for _, reminder := range s.store.Reminders() {
		if reminder.ScheduledAt.After(since) && !reminder.ScheduledAt.After(now) {
			s.logger.Info("reminder due",
				zap.String("id", reminder.ID),
				zap.String("title", reminder.Title),
				zap.Time("scheduled_at", reminder.ScheduledAt))
		}
	}
}
