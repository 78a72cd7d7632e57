package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"time"

	"github.com/teleline/smsgate/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// Providers returns the store-origin provider repository
	Providers() ProviderRepository

	// Senders returns the store-origin sender identity repository
	Senders() SenderRepository

	// Logs returns the delivery log repository
	Logs() LogRepository

	// Analytics returns the daily analytics repository
	Analytics() AnalyticsRepository

	// Settings returns the singleton settings repository
	Settings() SettingsRepository
}

// ProviderRepository manages store-origin providers. Config-origin records
// never pass through this interface.
type ProviderRepository interface {
	GetByHandle(handle string) (*models.Provider, error)
	List() ([]*models.Provider, error)
	Create(provider *models.Provider) error
	Update(provider *models.Provider) error
	Delete(handle string) error
}

// SenderRepository manages store-origin sender identities.
type SenderRepository interface {
	GetByHandle(handle string) (*models.SenderIdentity, error)
	List() ([]*models.SenderIdentity, error)
	ListByProvider(providerHandle string) ([]*models.SenderIdentity, error)
	Create(sender *models.SenderIdentity) error
	Update(sender *models.SenderIdentity) error
	Delete(handle string) error
}

// LogRepository manages delivery log entries.
type LogRepository interface {
	Create(entry *models.DeliveryLog) (int64, error)
	MarkResult(id int64, status models.DeliveryStatus, messageID, response, errorMsg *string) error
	List(offset, limit int) ([]*models.DeliveryLog, error)
	Count() (int64, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
	TrimToLimit(limit int64) (int64, error)
}

// AnalyticsRepository manages daily analytics buckets. Apply must be an
// atomic upsert-and-increment so concurrent senders cannot lose updates or
// violate the tuple uniqueness.
type AnalyticsRepository interface {
	Apply(delta models.AnalyticsDelta) error
	List(offset, limit int) ([]*models.AnalyticsBucket, error)
	Count() (int64, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
	TrimToLimit(limit int64) (int64, error)
}

// SettingsRepository manages the singleton mutable settings record.
type SettingsRepository interface {
	Get() (*models.StoreSettings, error)
	Save(settings *models.StoreSettings) error
}
