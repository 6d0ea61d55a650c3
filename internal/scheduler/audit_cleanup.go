// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/flashcards/internal/tasks"
)

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// AuditCleanupRunner performs or enqueues one audit retention sweep.
type AuditCleanupRunner interface {
	EnqueueAuditCleanup(retentionDays int) error
}

// ValidateSchedule checks a five-field cron expression.
func ValidateSchedule(schedule string) error {
	_, err := parser.Parse(schedule)
	return err
}

// AuditCleanupScheduler periodically removes audit events past retention.
type AuditCleanupScheduler struct {
	runner        AuditCleanupRunner
	schedule      string
	retentionDays int

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
}

// NewAuditCleanupScheduler creates a scheduler instance. It does nothing until Start.
func NewAuditCleanupScheduler(runner AuditCleanupRunner, schedule string, retentionDays int) *AuditCleanupScheduler {
	return &AuditCleanupScheduler{
		runner:        runner,
		schedule:      schedule,
		retentionDays: retentionDays,
		cron:          cron.New(cron.WithParser(parser)),
	}
}

// Start registers the cleanup job and starts the cron loop. The scheduler
// stops when ctx is cancelled.
func (s *AuditCleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.run)
	if err != nil {
		return fmt.Errorf("failed to schedule audit cleanup: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	logrus.WithFields(logrus.Fields{
		"schedule":       s.schedule,
		"retention_days": s.retentionDays,
		"next_run":       s.cron.Entry(entryID).Next,
	}).Info("Audit cleanup scheduler started")

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running job to finish and stops the cron loop.
func (s *AuditCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	<-s.cron.Stop().Done()
	s.cron.Remove(s.entryID)
	s.isRunning = false

	logrus.Info("Audit cleanup scheduler stopped")
}

// RunNow triggers a sweep immediately.
func (s *AuditCleanupScheduler) RunNow() {
	s.run()
}

// IsRunning returns whether the scheduler is active.
func (s *AuditCleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns when the next sweep will occur, or nil when stopped.
func (s *AuditCleanupScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	next := s.cron.Entry(s.entryID).Next
	return &next
}

func (s *AuditCleanupScheduler) run() {
	if err := s.runner.EnqueueAuditCleanup(s.retentionDays); err != nil {
		logrus.WithError(err).Error("Audit cleanup failed")
	}
}

// DirectCleanup runs the sweep inline when no task queue is configured.
type DirectCleanup struct {
	Cleaner tasks.AuditEventCleaner
}

// EnqueueAuditCleanup deletes old events right away.
func (d DirectCleanup) EnqueueAuditCleanup(retentionDays int) error {
	if retentionDays <= 0 {
		retentionDays = tasks.DefaultAuditRetentionDays
	}
	deleted, err := d.Cleaner.DeleteOldEvents(time.Duration(retentionDays) * 24 * time.Hour)
	if err != nil {
		return err
	}
	logrus.WithField("deleted", deleted).Info("Cleaned up audit events")
	return nil
}
