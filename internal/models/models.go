// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"
)

// Origin says where a resolved record came from. Config-origin records are
// read-only through the store's write path.
type Origin string

const (
	OriginConfig Origin = "config"
	OriginStore  Origin = "store"
)

// DeliveryStatus is the lifecycle state of a delivery log entry.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusSent      DeliveryStatus = "sent"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

// Provider is a configured gateway account. Handle is the stable identifier
// shared between static configuration and the database.
type Provider struct {
	ID         int64             `db:"id" json:"id,omitempty"`
	Handle     string            `db:"handle" json:"handle"`
	Name       string            `db:"name" json:"name"`
	TypeHandle string            `db:"type_handle" json:"type"`
	Enabled    bool              `db:"enabled" json:"enabled"`
	Settings   map[string]string `db:"-" json:"settings,omitempty"`
	Origin     Origin            `db:"-" json:"origin"`
	CreatedAt  time.Time         `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt  time.Time         `db:"updated_at" json:"updated_at,omitempty"`
}

// SenderIdentity is an outbound caller ID scoped to one provider. SenderValue
// is the literal string handed to the gateway.
type SenderIdentity struct {
	ID             int64     `db:"id" json:"id,omitempty"`
	Handle         string    `db:"handle" json:"handle"`
	Name           string    `db:"name" json:"name"`
	ProviderHandle string    `db:"provider_handle" json:"provider"`
	SenderValue    string    `db:"sender_value" json:"sender_value"`
	Enabled        bool      `db:"enabled" json:"enabled"`
	IsDevelopment  bool      `db:"is_development" json:"is_development"`
	Origin         Origin    `db:"-" json:"origin"`
	CreatedAt      time.Time `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// DeliveryLog is one record per send attempt. Recipient holds the raw input
// as submitted, before normalization.
type DeliveryLog struct {
	ID                int64          `db:"id" json:"id"`
	Recipient         string         `db:"recipient" json:"recipient"`
	Message           string         `db:"message" json:"message"`
	Language          string         `db:"language" json:"language"`
	MessageLength     int            `db:"message_length" json:"message_length"`
	Status            DeliveryStatus `db:"status" json:"status"`
	ProviderHandle    string         `db:"provider_handle" json:"provider"`
	SenderHandle      string         `db:"sender_handle" json:"sender"`
	ProviderMessageID sql.NullString `db:"provider_message_id" json:"provider_message_id,omitempty"`
	ProviderResponse  sql.NullString `db:"provider_response" json:"provider_response,omitempty"`
	Error             sql.NullString `db:"error" json:"error,omitempty"`
	SourcePlugin      string         `db:"source_plugin" json:"source_plugin,omitempty"`
	SourceReference   string         `db:"source_reference" json:"source_reference,omitempty"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	SentAt            sql.NullTime   `db:"sent_at" json:"sent_at,omitempty"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

// AnalyticsBucket is the daily aggregate row. The tuple
// (date, provider_handle, sender_handle, source_plugin) is unique.
type AnalyticsBucket struct {
	ID             int64     `db:"id" json:"id"`
	Date           time.Time `db:"date" json:"date"`
	ProviderHandle string    `db:"provider_handle" json:"provider"`
	SenderHandle   string    `db:"sender_handle" json:"sender"`
	SourcePlugin   string    `db:"source_plugin" json:"source_plugin"`
	TotalSent      int64     `db:"total_sent" json:"total_sent"`
	TotalFailed    int64     `db:"total_failed" json:"total_failed"`
	TotalPending   int64     `db:"total_pending" json:"total_pending"`
	TotalDelivered int64     `db:"total_delivered" json:"total_delivered"`
	EnglishCount   int64     `db:"english_count" json:"english_count"`
	ArabicCount    int64     `db:"arabic_count" json:"arabic_count"`
	OtherCount     int64     `db:"other_count" json:"other_count"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// StoreSettings is the singleton mutable settings record. Defaults set here
// lose to defaults pinned in static configuration.
type StoreSettings struct {
	ID              int64     `db:"id" json:"id"`
	DefaultProvider string    `db:"default_provider" json:"default_provider"`
	DefaultSender   string    `db:"default_sender" json:"default_sender"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// AnalyticsDelta is a single send's contribution to a bucket, applied with an
// atomic upsert-and-increment.
type AnalyticsDelta struct {
	Date           time.Time
	ProviderHandle string
	SenderHandle   string
	SourcePlugin   string
	Sent           int64
	Failed         int64
	Pending        int64
	Delivered      int64
	English        int64
	Arabic         int64
	Other          int64
}
