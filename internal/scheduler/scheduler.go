// Package scheduler runs recurring maintenance tasks on a fixed interval.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// maxTaskDuration caps a single task run. Long intervals (retention runs
// fire daily) must not translate into day-long query timeouts.
const maxTaskDuration = time.Hour

// Scheduler executes a named task on a fixed interval, starting with an
// immediate run.
type Scheduler struct {
	name      string
	logger    *zap.Logger
	interval  time.Duration
	taskFunc  func(context.Context) error
	stopCh    chan struct{}
	doneCh    chan struct{}
	isRunning bool
	mu        sync.RWMutex
}

// NewScheduler creates a scheduler for the given task.
func NewScheduler(name string, logger *zap.Logger, interval time.Duration, taskFunc func(context.Context) error) *Scheduler {
	return &Scheduler{
		name:     name,
		logger:   logger,
		interval: interval,
		taskFunc: taskFunc,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the scheduler loop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}

	s.isRunning = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Scheduler started",
		zap.String("task", s.name),
		zap.Duration("interval", s.interval))
	return nil
}

// Stop halts the scheduler and waits for the loop to exit.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.mu.Unlock()

	close(s.stopCh)
	<-s.doneCh

	s.mu.Lock()
	s.isRunning = false
	s.mu.Unlock()

	s.logger.Info("Scheduler stopped", zap.String("task", s.name))
	return nil
}

// IsRunning reports whether the scheduler loop is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.doneCh)
	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	// First run happens immediately, not one interval in.
	if err := s.executeTask(ctx); err != nil {
		s.logger.Error("Initial task run failed",
			zap.String("task", s.name), zap.Error(err))
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler context canceled", zap.String("task", s.name))
			return
		case <-s.stopCh:
			s.logger.Info("Scheduler stop signal received", zap.String("task", s.name))
			return
		case <-ticker.C:
			if err := s.executeTask(ctx); err != nil {
				s.logger.Error("Scheduled task run failed",
					zap.String("task", s.name), zap.Error(err))
			}
		}
	}
}

func (s *Scheduler) executeTask(ctx context.Context) error {
	timeout := s.interval
	if timeout > maxTaskDuration {
		timeout = maxTaskDuration
	}
	taskCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	err := s.taskFunc(taskCtx)
	if err != nil {
		s.logger.Error("Task failed",
			zap.String("task", s.name),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err))
	} else {
		s.logger.Info("Task completed",
			zap.String("task", s.name),
			zap.Duration("elapsed", time.Since(started)))
	}
	return err
}
