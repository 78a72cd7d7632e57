package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/teleline/smsgate/internal/config"
	"github.com/teleline/smsgate/internal/scheduler"
)

// cleanupClaimKey guards against overlapping retention runs when more than
// one instance shares the database. Best effort: if redis is down the run
// proceeds anyway, retention work is idempotent.
const cleanupClaimKey = "smsgate:retention:claim"

type schedulerService struct {
	sched       *scheduler.Scheduler
	retention   RetentionService
	redisClient *redis.Client
	interval    time.Duration
	logger      *zap.Logger
}

func NewSchedulerService(
	cfg *config.SchedulerConfig,
	retention RetentionService,
	redisClient *redis.Client,
	logger *zap.Logger,
) SchedulerService {
	interval := time.Duration(cfg.IntervalHours) * time.Hour
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	s := &schedulerService{
		retention:   retention,
		redisClient: redisClient,
		interval:    interval,
		logger:      logger,
	}
	s.sched = scheduler.NewScheduler("retention", logger, interval, s.runCleanup)
	return s
}

func (s *schedulerService) Start() error {
	return s.sched.Start(context.Background())
}

func (s *schedulerService) Stop() error {
	return s.sched.Stop()
}

func (s *schedulerService) IsRunning() bool {
	return s.sched.IsRunning()
}

func (s *schedulerService) runCleanup(ctx context.Context) error {
	if !s.claimRun(ctx) {
		s.logger.Info("Retention run already claimed by another instance")
		return nil
	}
	return s.retention.RunCleanup(ctx)
}

// claimRun takes a short-lived lock so concurrent instances do not all
// delete at once. The claim expires on its own well before the next tick.
func (s *schedulerService) claimRun(ctx context.Context) bool {
	ttl := s.interval / 2
	if ttl > time.Hour {
		ttl = time.Hour
	}

	ok, err := s.redisClient.SetNX(ctx, cleanupClaimKey, time.Now().Format(time.RFC3339), ttl).Result()
	if err != nil {
		s.logger.Warn("Retention claim check failed, proceeding", zap.Error(err))
		return true
	}
	return ok
}
