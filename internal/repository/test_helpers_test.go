package repository_test

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

func insertTestLog(db *sqlx.DB, recipient, status string, createdAt time.Time) (int64, error) {
	var id int64
	query := `
		INSERT INTO sms_logs (recipient, message, language, message_length, status, created_at, updated_at)
		VALUES ($1, 'test message', 'en', 12, $2, $3, $3)
		RETURNING id
	`

	err := db.QueryRow(query, recipient, status, createdAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test log: %w", err)
	}

	return id, nil
}

func insertBulkTestLogs(db *sqlx.DB, count int, status string, baseTime time.Time, timeIncrement time.Duration) error {
	for i := 0; i < count; i++ {
		recipient := fmt.Sprintf("9659440%04d", i)
		createdAt := baseTime.Add(time.Duration(i) * timeIncrement)

		if _, err := insertTestLog(db, recipient, status, createdAt); err != nil {
			return err
		}
	}
	return nil
}

func insertTestAnalyticsBucket(db *sqlx.DB, date time.Time, providerHandle string, sent int64) error {
	query := `
		INSERT INTO sms_analytics (date, provider_handle, sender_handle, source_plugin, total_sent, created_at, updated_at)
		VALUES ($1, $2, 'main', '', $3, NOW(), NOW())
	`

	if _, err := db.Exec(query, date.Format("2006-01-02"), providerHandle, sent); err != nil {
		return fmt.Errorf("failed to insert test analytics bucket: %w", err)
	}
	return nil
}
