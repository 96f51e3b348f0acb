package jobs

import (
	"time"

	"contaspro-backend/internal/config"
	"contaspro-backend/internal/logger"
	"contaspro-backend/internal/notify"
	"contaspro-backend/internal/store"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store   store.Store
	channel notify.Channel
	config  *config.Config
	now     func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies. The channel
// may be nil when no delivery channel is available; reminder jobs then
// become no-ops.
func NewJobRunner(s store.Store, channel notify.Channel, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:   s,
		channel: channel,
		config:  cfg,
		now:     time.Now,
	}
}

// Config returns the runner's configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllJobs runs every job once (for manual execution)
func (jr *JobRunner) RunAllJobs() {
	jr.SendDueTomorrowReminders()
}
