package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/teleline/smsgate/internal/config"
	"github.com/teleline/smsgate/internal/repository"
)

type retentionService struct {
	cfg    *config.SMSConfig
	repo   repository.Repository
	logger *zap.Logger
}

func NewRetentionService(cfg *config.SMSConfig, repo repository.Repository, logger *zap.Logger) RetentionService {
	return &retentionService{
		cfg:    cfg,
		repo:   repo,
		logger: logger,
	}
}

// RunCleanup applies the age-based retention windows and then the count
// limits. A failing step is logged and the remaining steps still run; only
// the last error is returned.
func (s *retentionService) RunCleanup(ctx context.Context) error {
	var lastErr error

	if s.cfg.EnableLogs && s.cfg.LogsRetentionDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -s.cfg.LogsRetentionDays)
		deleted, err := s.repo.Logs().DeleteOlderThan(cutoff)
		if err != nil {
			s.logger.Error("Delivery log cleanup failed", zap.Error(err))
			lastErr = err
		} else if deleted > 0 {
			s.logger.Info("Deleted expired delivery logs",
				zap.Int64("deleted", deleted),
				zap.Time("cutoff", cutoff))
		}
	}

	if s.cfg.EnableAnalytics && s.cfg.AnalyticsRetentionDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -s.cfg.AnalyticsRetentionDays)
		deleted, err := s.repo.Analytics().DeleteOlderThan(cutoff)
		if err != nil {
			s.logger.Error("Analytics cleanup failed", zap.Error(err))
			lastErr = err
		} else if deleted > 0 {
			s.logger.Info("Deleted expired analytics buckets",
				zap.Int64("deleted", deleted),
				zap.Time("cutoff", cutoff))
		}
	}

	if s.cfg.TrimLogs {
		if _, err := s.TrimLogsIfOverLimit(); err != nil {
			s.logger.Error("Delivery log trim failed", zap.Error(err))
			lastErr = err
		}
	}

	if s.cfg.TrimAnalytics {
		if _, err := s.TrimAnalyticsIfOverLimit(); err != nil {
			s.logger.Error("Analytics trim failed", zap.Error(err))
			lastErr = err
		}
	}

	return lastErr
}

// TrimLogsIfOverLimit deletes the oldest delivery log rows down to the
// configured limit. The count check keeps the common path to one cheap query.
func (s *retentionService) TrimLogsIfOverLimit() (int64, error) {
	limit := int64(s.cfg.LogsLimit)
	if limit <= 0 {
		return 0, nil
	}

	count, err := s.repo.Logs().Count()
	if err != nil {
		return 0, err
	}
	if count <= limit {
		return 0, nil
	}

	deleted, err := s.repo.Logs().TrimToLimit(limit)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		s.logger.Info("Trimmed delivery logs to limit",
			zap.Int64("deleted", deleted),
			zap.Int64("limit", limit))
	}
	return deleted, nil
}

// TrimAnalyticsIfOverLimit is the analytics-table counterpart.
func (s *retentionService) TrimAnalyticsIfOverLimit() (int64, error) {
	limit := int64(s.cfg.AnalyticsLimit)
	if limit <= 0 {
		return 0, nil
	}

	count, err := s.repo.Analytics().Count()
	if err != nil {
		return 0, err
	}
	if count <= limit {
		return 0, nil
	}

	deleted, err := s.repo.Analytics().TrimToLimit(limit)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		s.logger.Info("Trimmed analytics buckets to limit",
			zap.Int64("deleted", deleted),
			zap.Int64("limit", limit))
	}
	return deleted, nil
}
