package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/teleline/smsgate/internal/repository"
)

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
	scheduler   SchedulerService
	logger      *zap.Logger
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	sched SchedulerService,
	logger *zap.Logger,
) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
		scheduler:   sched,
		logger:      logger,
	}
}

// GetHealth probes the database and redis and reports the scheduler state.
// The service is degraded when redis is down and unhealthy when the
// database is down: sends survive a redis outage, not a database outage.
func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status:          HealthStatusHealthy,
		SchedulerStatus: SchedulerStatusStopped,
		DatabaseStatus:  ComponentConnected,
		RedisStatus:     ComponentConnected,
	}

	if s.scheduler != nil && s.scheduler.IsRunning() {
		status.SchedulerStatus = SchedulerStatusRunning
	}

	if err := s.repo.Ping(); err != nil {
		s.logger.Error("Database health check failed", zap.Error(err))
		status.DatabaseStatus = ComponentDisconnected
		status.Status = HealthStatusUnhealthy
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.logger.Error("Redis health check failed", zap.Error(err))
		status.RedisStatus = ComponentDisconnected
		if status.Status == HealthStatusHealthy {
			status.Status = HealthStatusDegraded
		}
	}

	return status
}
