// Package gateway defines the SMS gateway capability set and the registry
// that maps provider type handles to concrete implementations.
package gateway

import "context"

// SendRequest carries everything a gateway needs for one outbound message.
// To is the normalized, validated destination; Message is sanitized text that
// the implementation encodes for its own transport.
type SendRequest struct {
	To          string
	Message     string
	SenderValue string
	Language    string
	Development bool
	Settings    map[string]string
}

// SendResult is the gateway's answer for one send attempt.
type SendResult struct {
	Success   bool
	MessageID string
	Response  string
	Err       string
}

// Gateway is the capability set every provider implementation exposes. New
// gateway types are added by registering a factory, not by changing the
// dispatch core.
type Gateway interface {
	Handle() string
	DisplayName() string
	Description() string

	SupportsConnectionTest() bool
	// ValidateSettings returns per-field errors for a settings blob; an
	// empty map means the settings are acceptable.
	ValidateSettings(settings map[string]string) map[string]string
	TestConnection(ctx context.Context, settings map[string]string) bool

	Send(ctx context.Context, req SendRequest) SendResult
}

// Base provides default capability answers for implementations that do not
// support a connection test.
type Base struct{}

func (Base) SupportsConnectionTest() bool { return false }

func (Base) ValidateSettings(map[string]string) map[string]string {
	return map[string]string{}
}

// TestConnection succeeds trivially unless the implementation overrides it.
func (Base) TestConnection(context.Context, map[string]string) bool { return true }
