// Package repository provides PostgreSQL-backed storage for providers,
// sender identities, delivery logs and daily analytics.
package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db        *sqlx.DB
	providers ProviderRepository
	senders   SenderRepository
	logs      LogRepository
	analytics AnalyticsRepository
	settings  SettingsRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:        db,
		providers: NewProviderRepository(db),
		senders:   NewSenderRepository(db),
		logs:      NewLogRepository(db),
		analytics: NewAnalyticsRepository(db),
		settings:  NewSettingsRepository(db),
	}
}

func (r *repositoryImpl) Providers() ProviderRepository  { return r.providers }
func (r *repositoryImpl) Senders() SenderRepository      { return r.senders }
func (r *repositoryImpl) Logs() LogRepository            { return r.logs }
func (r *repositoryImpl) Analytics() AnalyticsRepository { return r.analytics }
func (r *repositoryImpl) Settings() SettingsRepository   { return r.settings }

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
