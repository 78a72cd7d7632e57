package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/teleline/smsgate/internal/models"
)

type logRepository struct {
	db *sqlx.DB
}

func NewLogRepository(db *sqlx.DB) LogRepository {
	return &logRepository{
		db: db,
	}
}

const logColumns = `id, recipient, message, language, message_length, status, provider_handle,
	sender_handle, provider_message_id, provider_response, error, source_plugin,
	source_reference, created_at, sent_at, updated_at`

// Create persists a new delivery log entry and returns its id. Entries are
// written in pending state before any network call happens.
func (r *logRepository) Create(entry *models.DeliveryLog) (int64, error) {
	query := `
		INSERT INTO sms_logs (recipient, message, language, message_length, status,
			provider_handle, sender_handle, source_plugin, source_reference, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.Get(&id, query,
		entry.Recipient, entry.Message, entry.Language, entry.MessageLength, entry.Status,
		entry.ProviderHandle, entry.SenderHandle, entry.SourcePlugin, entry.SourceReference, now, now)
	if err != nil {
		return 0, fmt.Errorf("failed to create delivery log: %w", err)
	}

	entry.ID = id
	entry.CreatedAt = now
	entry.UpdatedAt = now
	return id, nil
}

// MarkResult moves a log entry to its terminal state.
func (r *logRepository) MarkResult(id int64, status models.DeliveryStatus, messageID, response, errorMsg *string) error {
	query := `
		UPDATE sms_logs
		SET status = $2,
		    provider_message_id = $3,
		    provider_response = $4,
		    error = $5,
		    sent_at = $6,
		    updated_at = $7
		WHERE id = $1
	`

	var sentAt sql.NullTime
	if status == models.DeliveryStatusSent || status == models.DeliveryStatusDelivered {
		sentAt = sql.NullTime{
			Time:  time.Now(),
			Valid: true,
		}
	}

	_, err := r.db.Exec(query, id, status,
		nullString(messageID), nullString(response), nullString(errorMsg), sentAt, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update delivery log: %w", err)
	}

	return nil
}

// List returns delivery log entries, newest first, with pagination.
func (r *logRepository) List(offset, limit int) ([]*models.DeliveryLog, error) {
	query := `
		SELECT ` + logColumns + `
		FROM sms_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	var entries []*models.DeliveryLog
	if err := r.db.Select(&entries, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list delivery logs: %w", err)
	}

	return entries, nil
}

// Count returns the total number of delivery log entries.
func (r *logRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM sms_logs`); err != nil {
		return 0, fmt.Errorf("failed to count delivery logs: %w", err)
	}
	return count, nil
}

// DeleteOlderThan removes entries created before the cutoff and reports how
// many were deleted.
func (r *logRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM sms_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old delivery logs: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return deleted, nil
}

// TrimToLimit deletes the oldest entries until at most limit remain.
func (r *logRepository) TrimToLimit(limit int64) (int64, error) {
	query := `
		DELETE FROM sms_logs
		WHERE id NOT IN (
			SELECT id FROM sms_logs
			ORDER BY created_at DESC, id DESC
			LIMIT $1
		)
	`

	result, err := r.db.Exec(query, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to trim delivery logs: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return deleted, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
