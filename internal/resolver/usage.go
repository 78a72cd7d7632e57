package resolver

import "sync"

// Usage is one reference to a provider or sender identity held by an
// external integration.
type Usage struct {
	Label   string `json:"label"`
	EditURL string `json:"edit_url,omitempty"`
}

// UsageReporter answers which usages an integration holds for a handle.
type UsageReporter func(handle string) []Usage

// UsageRegistry lets integrations report references to providers and sender
// identities without the core knowing about them at compile time. Reported
// usages block destructive deletes.
type UsageRegistry struct {
	mu              sync.RWMutex
	providerReports []UsageReporter
	senderReports   []UsageReporter
}

func NewUsageRegistry() *UsageRegistry {
	return &UsageRegistry{}
}

// RegisterProviderReporter adds a callback consulted before provider deletes.
func (u *UsageRegistry) RegisterProviderReporter(reporter UsageReporter) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.providerReports = append(u.providerReports, reporter)
}

// RegisterSenderReporter adds a callback consulted before sender deletes.
func (u *UsageRegistry) RegisterSenderReporter(reporter UsageReporter) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.senderReports = append(u.senderReports, reporter)
}

// ProviderUsages collects every reported reference to a provider handle.
func (u *UsageRegistry) ProviderUsages(handle string) []Usage {
	u.mu.RLock()
	defer u.mu.RUnlock()

	var usages []Usage
	for _, reporter := range u.providerReports {
		usages = append(usages, reporter(handle)...)
	}
	return usages
}

// SenderUsages collects every reported reference to a sender identity handle.
func (u *UsageRegistry) SenderUsages(handle string) []Usage {
	u.mu.RLock()
	defer u.mu.RUnlock()

	var usages []Usage
	for _, reporter := range u.senderReports {
		usages = append(usages, reporter(handle)...)
	}
	return usages
}
