package service

import "github.com/teleline/smsgate/internal/models"

// SendInput is one dispatch request. Provider and sender handles are
// optional; empty values fall back to the resolved defaults.
type SendInput struct {
	To              string
	Message         string
	Language        string
	ProviderHandle  string
	SenderHandle    string
	SourcePlugin    string
	SourceReference string
}

// SendDetails is the diagnostic variant's result. Side effects are identical
// to the boolean-returning path.
type SendDetails struct {
	Success         bool   `json:"success"`
	MessageID       string `json:"message_id,omitempty"`
	Response        string `json:"response,omitempty"`
	Error           string `json:"error,omitempty"`
	ExecutionTimeMs int64  `json:"execution_time_ms"`
	ProviderName    string `json:"provider_name,omitempty"`
	SenderName      string `json:"sender_name,omitempty"`
	SenderValue     string `json:"sender_value,omitempty"`
	Recipient       string `json:"recipient,omitempty"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// MessageListResult is one page of delivery log entries.
type MessageListResult struct {
	Data       []*models.DeliveryLog `json:"data"`
	Pagination Pagination            `json:"pagination"`
}

// Component statuses reported by the health service.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	HealthStatusUnhealthy = "unhealthy"

	ComponentConnected    = "connected"
	ComponentDisconnected = "disconnected"

	SchedulerStatusRunning = "running"
	SchedulerStatusStopped = "stopped"
)

type HealthStatus struct {
	Status          string `json:"status"`
	SchedulerStatus string `json:"scheduler_status"`
	DatabaseStatus  string `json:"database_status"`
	RedisStatus     string `json:"redis_status"`
}
