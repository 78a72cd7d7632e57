package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/teleline/smsgate/internal/models"
)

type senderRepository struct {
	db *sqlx.DB
}

func NewSenderRepository(db *sqlx.DB) SenderRepository {
	return &senderRepository{
		db: db,
	}
}

const senderColumns = `id, handle, name, provider_handle, sender_value, enabled, is_development, created_at, updated_at`

// GetByHandle returns the store-origin sender identity for a handle, or nil
// if none exists.
func (r *senderRepository) GetByHandle(handle string) (*models.SenderIdentity, error) {
	query := `SELECT ` + senderColumns + ` FROM sms_senders WHERE handle = $1`

	var sender models.SenderIdentity
	err := r.db.Get(&sender, query, handle)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sender identity: %w", err)
	}

	sender.Origin = models.OriginStore
	return &sender, nil
}

// List returns all store-origin sender identities ordered by display name.
func (r *senderRepository) List() ([]*models.SenderIdentity, error) {
	query := `SELECT ` + senderColumns + ` FROM sms_senders ORDER BY name ASC`

	var senders []*models.SenderIdentity
	if err := r.db.Select(&senders, query); err != nil {
		return nil, fmt.Errorf("failed to list sender identities: %w", err)
	}

	for _, sender := range senders {
		sender.Origin = models.OriginStore
	}
	return senders, nil
}

// ListByProvider returns the store-origin sender identities scoped to one
// provider, ordered by display name.
func (r *senderRepository) ListByProvider(providerHandle string) ([]*models.SenderIdentity, error) {
	query := `SELECT ` + senderColumns + ` FROM sms_senders WHERE provider_handle = $1 ORDER BY name ASC`

	var senders []*models.SenderIdentity
	if err := r.db.Select(&senders, query, providerHandle); err != nil {
		return nil, fmt.Errorf("failed to list sender identities by provider: %w", err)
	}

	for _, sender := range senders {
		sender.Origin = models.OriginStore
	}
	return senders, nil
}

// Create inserts a new store-origin sender identity.
func (r *senderRepository) Create(sender *models.SenderIdentity) error {
	query := `
		INSERT INTO sms_senders (handle, name, provider_handle, sender_value, enabled, is_development, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	now := time.Now()
	if err := r.db.Get(&sender.ID, query,
		sender.Handle, sender.Name, sender.ProviderHandle, sender.SenderValue,
		sender.Enabled, sender.IsDevelopment, now, now); err != nil {
		return fmt.Errorf("failed to create sender identity: %w", err)
	}

	sender.Origin = models.OriginStore
	return nil
}

// Update rewrites an existing store-origin sender identity, matched by handle.
func (r *senderRepository) Update(sender *models.SenderIdentity) error {
	query := `
		UPDATE sms_senders
		SET name = $2,
		    provider_handle = $3,
		    sender_value = $4,
		    enabled = $5,
		    is_development = $6,
		    updated_at = $7
		WHERE handle = $1
	`

	if _, err := r.db.Exec(query,
		sender.Handle, sender.Name, sender.ProviderHandle, sender.SenderValue,
		sender.Enabled, sender.IsDevelopment, time.Now()); err != nil {
		return fmt.Errorf("failed to update sender identity: %w", err)
	}

	return nil
}

// Delete removes a store-origin sender identity by handle.
func (r *senderRepository) Delete(handle string) error {
	if _, err := r.db.Exec(`DELETE FROM sms_senders WHERE handle = $1`, handle); err != nil {
		return fmt.Errorf("failed to delete sender identity: %w", err)
	}
	return nil
}
