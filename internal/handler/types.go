package handler

import (
	"time"

	"github.com/teleline/smsgate/internal/models"
)

// SendMessageRequest is the body for both send endpoints. Provider and
// Sender are optional handles; empty values use the resolved defaults.
type SendMessageRequest struct {
	To              string `json:"to"`
	Message         string `json:"message"`
	Language        string `json:"language,omitempty"`
	Provider        string `json:"provider,omitempty"`
	Sender          string `json:"sender,omitempty"`
	SourcePlugin    string `json:"source_plugin,omitempty"`
	SourceReference string `json:"source_reference,omitempty"`
}

// SendMessageResponse is the plain send endpoint's answer.
type SendMessageResponse struct {
	Success bool `json:"success"`
}

// ProviderSummary is the listing view of a provider. The settings blob
// holds credentials and never leaves the service.
type ProviderSummary struct {
	Handle  string        `json:"handle"`
	Name    string        `json:"name"`
	Type    string        `json:"type"`
	Enabled bool          `json:"enabled"`
	Origin  models.Origin `json:"origin"`
}

// ProviderListResponse wraps resolver provider listings.
type ProviderListResponse struct {
	Data []ProviderSummary `json:"data"`
}

func newProviderSummaries(providers []*models.Provider) []ProviderSummary {
	summaries := make([]ProviderSummary, 0, len(providers))
	for _, p := range providers {
		summaries = append(summaries, ProviderSummary{
			Handle:  p.Handle,
			Name:    p.Name,
			Type:    p.TypeHandle,
			Enabled: p.Enabled,
			Origin:  p.Origin,
		})
	}
	return summaries
}

// SenderListResponse wraps resolver sender identity listings.
type SenderListResponse struct {
	Data []*models.SenderIdentity `json:"data"`
}

// SchedulerResponse reports a scheduler control action.
type SchedulerResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthResponse is the health endpoint's body.
type HealthResponse struct {
	Status          string    `json:"status"`
	SchedulerStatus string    `json:"scheduler_status,omitempty"`
	DatabaseStatus  string    `json:"database_status,omitempty"`
	RedisStatus     string    `json:"redis_status,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
