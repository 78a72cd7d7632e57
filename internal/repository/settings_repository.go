package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/teleline/smsgate/internal/models"
)

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get returns the singleton settings record, or an empty record if none has
// been saved yet.
func (r *settingsRepository) Get() (*models.StoreSettings, error) {
	query := `SELECT id, default_provider, default_sender, updated_at FROM sms_settings WHERE id = 1`

	var settings models.StoreSettings
	err := r.db.Get(&settings, query)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.StoreSettings{ID: 1}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &settings, nil
}

// Save upserts the singleton settings record.
func (r *settingsRepository) Save(settings *models.StoreSettings) error {
	query := `
		INSERT INTO sms_settings (id, default_provider, default_sender, updated_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET
			default_provider = EXCLUDED.default_provider,
			default_sender = EXCLUDED.default_sender,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.Exec(query, settings.DefaultProvider, settings.DefaultSender, time.Now()); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
