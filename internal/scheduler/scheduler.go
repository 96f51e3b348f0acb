package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"contaspro-backend/internal/jobs"
	"contaspro-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner.
// Reminders compare due dates against the device-local calendar day, so
// the cron runs in local time.
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.Local),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	// Reminder evaluation is idempotent, so an aggressive schedule is safe
	_, err := s.cron.AddFunc(cfg.SendDueTomorrowReminders, s.jobs.SendDueTomorrowReminders)
	if err != nil {
		logger.Error("Failed to register SendDueTomorrowReminders job", "error", err)
	}

	logger.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// IsRunning returns true if the scheduler has registered entries
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
