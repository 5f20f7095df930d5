package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/pms/backend/internal/application/collection"
	"github.com/pms/backend/internal/application/leasing"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StatusRecomputer re-derives lease statuses from the calendar
type StatusRecomputer interface {
	RecomputeStatuses(ctx context.Context, today time.Time) (*leasing.RecomputeResult, error)
}

// NoticeSweeper runs the overdue-notice sweep across all open leases
type NoticeSweeper interface {
	RunAll(ctx context.Context, today time.Time) (*collection.SweepResult, error)
}

// Config holds the daily job schedules. The status recompute is
// scheduled before the sweep so the sweep sees fresh lease statuses.
type Config struct {
	Enabled            bool
	StatusCronSchedule string
	SweepCronSchedule  string
	JobTimeout         time.Duration
}

// DailyJobs runs the two recurring back-office jobs on cron schedules:
// the lease status recompute and the overdue-notice sweep.
type DailyJobs struct {
	config     Config
	recomputer StatusRecomputer
	sweeper    NoticeSweeper
	logger     *zap.Logger

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

// NewDailyJobs creates the daily job runner
func NewDailyJobs(config Config, recomputer StatusRecomputer, sweeper NoticeSweeper, logger *zap.Logger) *DailyJobs {
	return &DailyJobs{
		config:     config,
		recomputer: recomputer,
		sweeper:    sweeper,
		logger:     logger,
	}
}

// Start registers the cron entries and starts the scheduler
func (d *DailyJobs) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.isRunning {
		return nil
	}
	if !d.config.Enabled {
		d.logger.Info("Scheduler disabled, daily jobs will not run")
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(d.config.StatusCronSchedule, d.runStatusRecompute); err != nil {
		return err
	}
	if _, err := c.AddFunc(d.config.SweepCronSchedule, d.runSweep); err != nil {
		return err
	}

	c.Start()
	d.cron = c
	d.isRunning = true

	d.logger.Info("Daily jobs scheduled",
		zap.String("status_schedule", d.config.StatusCronSchedule),
		zap.String("sweep_schedule", d.config.SweepCronSchedule),
		zap.Duration("job_timeout", d.config.JobTimeout),
	)

	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (d *DailyJobs) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.isRunning {
		d.mu.Unlock()
		return nil
	}
	d.isRunning = false
	c := d.cron
	d.cron = nil
	d.mu.Unlock()

	select {
	case <-c.Stop().Done():
		d.logger.Info("Daily jobs stopped")
		return nil
	case <-ctx.Done():
		d.logger.Warn("Daily jobs stop timed out")
		return ctx.Err()
	}
}

// runStatusRecompute executes the lease status recompute job
func (d *DailyJobs) runStatusRecompute() {
	ctx, cancel := context.WithTimeout(context.Background(), d.config.JobTimeout)
	defer cancel()

	started := time.Now()
	result, err := d.recomputer.RecomputeStatuses(ctx, started)
	if err != nil {
		d.logger.Error("Lease status recompute failed", zap.Error(err))
		return
	}

	d.logger.Info("Lease status recompute completed",
		zap.Int("examined", result.Examined),
		zap.Int("changed", result.Changed),
		zap.Int("units_freed", result.Freed),
		zap.Duration("duration", time.Since(started)),
	)
}

// runSweep executes the overdue-notice sweep job
func (d *DailyJobs) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), d.config.JobTimeout)
	defer cancel()

	started := time.Now()
	result, err := d.sweeper.RunAll(ctx, started)
	if err != nil {
		d.logger.Error("Overdue notice sweep failed", zap.Error(err))
		return
	}

	d.logger.Info("Overdue notice sweep completed",
		zap.Int("leases_examined", result.LeasesExamined),
		zap.Int("open_notices", len(result.Notices)),
		zap.Int("failures", result.Failures),
		zap.Duration("duration", time.Since(started)),
	)
}
