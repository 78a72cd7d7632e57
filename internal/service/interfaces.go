package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import "context"

// DispatchService orchestrates single sends.
type DispatchService interface {
	// Send dispatches one message and reports whether the gateway accepted
	// it. Expected failures come back as taxonomy errors.
	Send(ctx context.Context, input SendInput) (bool, error)

	// SendWithDetails runs the same state machine but also reports elapsed
	// wall-clock time and resolved display names for diagnostic callers.
	SendWithDetails(ctx context.Context, input SendInput) (*SendDetails, error)

	// SendByHandle dispatches through a specific sender identity; the
	// provider is resolved from the identity's provider handle.
	SendByHandle(ctx context.Context, to, message, senderHandle, language, sourcePlugin string) (bool, error)

	// GetMessages returns one page of delivery log entries, newest first.
	GetMessages(page, limit int) (*MessageListResult, error)
}

// RetentionService bounds the log and analytics tables.
type RetentionService interface {
	// RunCleanup applies the age-based retention windows and, when the trim
	// flags are set, the count-based limits. Per-table failures are logged
	// and do not stop the remaining work.
	RunCleanup(ctx context.Context) error

	// TrimLogsIfOverLimit deletes the oldest log rows down to the limit.
	// Cheap count check first; no-op when under the limit.
	TrimLogsIfOverLimit() (int64, error)

	// TrimAnalyticsIfOverLimit is the analytics-table counterpart.
	TrimAnalyticsIfOverLimit() (int64, error)
}

// SchedulerService controls the recurring retention run.
type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

// HealthService reports component health.
type HealthService interface {
	GetHealth() *HealthStatus
}
