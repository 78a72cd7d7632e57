package service

import (
	"errors"
	"fmt"
	"strings"
)

// Expected dispatch outcomes. These are recoverable and surfaced to the
// caller; only unexpected gateway transport failures are converted into a
// failed log entry with a generic error string.
var (
	ErrProviderNotConfigured = errors.New("no SMS provider is configured")
	ErrProviderDisabled      = errors.New("SMS provider is disabled")
	ErrSenderNotConfigured   = errors.New("no sender identity is configured")
	ErrSenderDisabled        = errors.New("sender identity is disabled")
	ErrUnknownProviderType   = errors.New("unknown provider type")
)

// PhoneValidationError carries the offending number and the allowed-country
// list alongside the normalizer's reason.
type PhoneValidationError struct {
	Number           string
	AllowedCountries []string
	Reason           string
}

func (e *PhoneValidationError) Error() string {
	if len(e.AllowedCountries) == 0 {
		return fmt.Sprintf("phone validation failed for %q: %s", e.Number, e.Reason)
	}
	return fmt.Sprintf("phone validation failed for %q (allowed: %s): %s",
		e.Number, strings.Join(e.AllowedCountries, ", "), e.Reason)
}
