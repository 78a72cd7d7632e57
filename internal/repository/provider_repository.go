package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/teleline/smsgate/internal/models"
)

type providerRepository struct {
	db *sqlx.DB
}

func NewProviderRepository(db *sqlx.DB) ProviderRepository {
	return &providerRepository{
		db: db,
	}
}

// providerRow carries the raw settings blob alongside the scanned columns.
type providerRow struct {
	ID         int64           `db:"id"`
	Handle     string          `db:"handle"`
	Name       string          `db:"name"`
	TypeHandle string          `db:"type_handle"`
	Enabled    bool            `db:"enabled"`
	Settings   json.RawMessage `db:"settings"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

func (row *providerRow) toModel() (*models.Provider, error) {
	settings := map[string]string{}
	if len(row.Settings) > 0 {
		if err := json.Unmarshal(row.Settings, &settings); err != nil {
			return nil, fmt.Errorf("failed to decode provider settings: %w", err)
		}
	}

	return &models.Provider{
		ID:         row.ID,
		Handle:     row.Handle,
		Name:       row.Name,
		TypeHandle: row.TypeHandle,
		Enabled:    row.Enabled,
		Settings:   settings,
		Origin:     models.OriginStore,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

// GetByHandle returns the store-origin provider for a handle, or nil if none
// exists.
func (r *providerRepository) GetByHandle(handle string) (*models.Provider, error) {
	query := `
		SELECT id, handle, name, type_handle, enabled, settings, created_at, updated_at
		FROM sms_providers
		WHERE handle = $1
	`

	var row providerRow
	err := r.db.Get(&row, query, handle)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}

	return row.toModel()
}

// List returns all store-origin providers ordered by display name.
func (r *providerRepository) List() ([]*models.Provider, error) {
	query := `
		SELECT id, handle, name, type_handle, enabled, settings, created_at, updated_at
		FROM sms_providers
		ORDER BY name ASC
	`

	var rows []providerRow
	if err := r.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	providers := make([]*models.Provider, 0, len(rows))
	for i := range rows {
		provider, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}

	return providers, nil
}

// Create inserts a new store-origin provider.
func (r *providerRepository) Create(provider *models.Provider) error {
	settings, err := json.Marshal(provider.Settings)
	if err != nil {
		return fmt.Errorf("failed to encode provider settings: %w", err)
	}

	query := `
		INSERT INTO sms_providers (handle, name, type_handle, enabled, settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	now := time.Now()
	if err := r.db.Get(&provider.ID, query,
		provider.Handle, provider.Name, provider.TypeHandle, provider.Enabled, settings, now, now); err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}

	provider.Origin = models.OriginStore
	return nil
}

// Update rewrites an existing store-origin provider, matched by handle.
func (r *providerRepository) Update(provider *models.Provider) error {
	settings, err := json.Marshal(provider.Settings)
	if err != nil {
		return fmt.Errorf("failed to encode provider settings: %w", err)
	}

	query := `
		UPDATE sms_providers
		SET name = $2,
		    type_handle = $3,
		    enabled = $4,
		    settings = $5,
		    updated_at = $6
		WHERE handle = $1
	`

	if _, err := r.db.Exec(query,
		provider.Handle, provider.Name, provider.TypeHandle, provider.Enabled, settings, time.Now()); err != nil {
		return fmt.Errorf("failed to update provider: %w", err)
	}

	return nil
}

// Delete removes a store-origin provider by handle.
func (r *providerRepository) Delete(handle string) error {
	if _, err := r.db.Exec(`DELETE FROM sms_providers WHERE handle = $1`, handle); err != nil {
		return fmt.Errorf("failed to delete provider: %w", err)
	}
	return nil
}
