package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/teleline/smsgate/internal/models"
)

type analyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// Apply increments a day's bucket, creating it when missing. The upsert is
// atomic so concurrent senders targeting the same tuple cannot lose updates
// or hit a duplicate-key conflict.
func (r *analyticsRepository) Apply(delta models.AnalyticsDelta) error {
	query := `
		INSERT INTO sms_analytics (date, provider_handle, sender_handle, source_plugin,
			total_sent, total_failed, total_pending, total_delivered,
			english_count, arabic_count, other_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		ON CONFLICT (date, provider_handle, sender_handle, source_plugin)
		DO UPDATE SET
			total_sent = sms_analytics.total_sent + EXCLUDED.total_sent,
			total_failed = sms_analytics.total_failed + EXCLUDED.total_failed,
			total_pending = sms_analytics.total_pending + EXCLUDED.total_pending,
			total_delivered = sms_analytics.total_delivered + EXCLUDED.total_delivered,
			english_count = sms_analytics.english_count + EXCLUDED.english_count,
			arabic_count = sms_analytics.arabic_count + EXCLUDED.arabic_count,
			other_count = sms_analytics.other_count + EXCLUDED.other_count,
			updated_at = EXCLUDED.updated_at
	`

	day := delta.Date.UTC().Truncate(24 * time.Hour)
	_, err := r.db.Exec(query, day, delta.ProviderHandle, delta.SenderHandle, delta.SourcePlugin,
		delta.Sent, delta.Failed, delta.Pending, delta.Delivered,
		delta.English, delta.Arabic, delta.Other, time.Now())
	if err != nil {
		return fmt.Errorf("failed to apply analytics delta: %w", err)
	}

	return nil
}

// List returns analytics buckets, newest date first, with pagination.
func (r *analyticsRepository) List(offset, limit int) ([]*models.AnalyticsBucket, error) {
	query := `
		SELECT id, date, provider_handle, sender_handle, source_plugin,
			total_sent, total_failed, total_pending, total_delivered,
			english_count, arabic_count, other_count, created_at, updated_at
		FROM sms_analytics
		ORDER BY date DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	var buckets []*models.AnalyticsBucket
	if err := r.db.Select(&buckets, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list analytics buckets: %w", err)
	}

	return buckets, nil
}

// Count returns the total number of analytics buckets.
func (r *analyticsRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM sms_analytics`); err != nil {
		return 0, fmt.Errorf("failed to count analytics buckets: %w", err)
	}
	return count, nil
}

// DeleteOlderThan removes buckets dated before the cutoff.
func (r *analyticsRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM sms_analytics WHERE date < $1`, cutoff.UTC().Truncate(24*time.Hour))
	if err != nil {
		return 0, fmt.Errorf("failed to delete old analytics buckets: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return deleted, nil
}

// TrimToLimit deletes the oldest buckets until at most limit remain.
func (r *analyticsRepository) TrimToLimit(limit int64) (int64, error) {
	query := `
		DELETE FROM sms_analytics
		WHERE id NOT IN (
			SELECT id FROM sms_analytics
			ORDER BY date DESC, id DESC
			LIMIT $1
		)
	`

	result, err := r.db.Exec(query, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to trim analytics buckets: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return deleted, nil
}
