package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/teleline/smsgate/internal/config"
	"github.com/teleline/smsgate/internal/gateway"
	"github.com/teleline/smsgate/internal/repository"
	"github.com/teleline/smsgate/internal/resolver"
)

// Service aggregates all application services.
type Service struct {
	Dispatch  DispatchService
	Retention RetentionService
	Scheduler SchedulerService
	Health    HealthService
	Resolver  *resolver.Resolver
}

// NewService wires the service layer. The scheduler is constructed but not
// started; the caller owns its lifecycle.
func NewService(
	cfg *config.Config,
	repo repository.Repository,
	res *resolver.Resolver,
	registry *gateway.Registry,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	retention := NewRetentionService(&cfg.SMS, repo, logger)
	sched := NewSchedulerService(&cfg.Scheduler, retention, redisClient, logger)

	return &Service{
		Dispatch:  NewDispatchService(cfg, repo, res, registry, retention, redisClient, logger),
		Retention: retention,
		Scheduler: sched,
		Health:    NewHealthService(repo, redisClient, sched, logger),
		Resolver:  res,
	}
}
