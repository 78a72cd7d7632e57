package resolver

import (
	"strings"

	"go.uber.org/zap"

	"github.com/teleline/smsgate/internal/config"
	"github.com/teleline/smsgate/internal/models"
	"github.com/teleline/smsgate/internal/repository"
)

// Resolver answers provider and sender identity lookups across both origins.
// Config-origin records are loaded once from the active configuration and
// shadow store-origin records with the same handle.
type Resolver struct {
	cfg    *config.SMSConfig
	repo   repository.Repository
	logger *zap.Logger

	usages *UsageRegistry
}

func New(cfg *config.SMSConfig, repo repository.Repository, logger *zap.Logger) *Resolver {
	return &Resolver{
		cfg:    cfg,
		repo:   repo,
		logger: logger,
		usages: NewUsageRegistry(),
	}
}

// Usages exposes the usage-tracking registry for external integrations.
func (r *Resolver) Usages() *UsageRegistry {
	return r.usages
}

// FindProviderByHandle checks static configuration first and falls back to
// the store on a miss. Returns nil when neither origin knows the handle.
func (r *Resolver) FindProviderByHandle(handle string) (*models.Provider, error) {
	for _, provider := range r.cfg.ProviderRecords() {
		if provider.Handle == handle {
			return provider, nil
		}
	}
	return r.repo.Providers().GetByHandle(handle)
}

// FindAllProviders returns config-origin providers first, then store-origin
// providers whose handles are not shadowed by configuration. Each group is
// ordered by display name.
func (r *Resolver) FindAllProviders() ([]*models.Provider, error) {
	configRecords := r.cfg.ProviderRecords()

	shadowed := make(map[string]struct{}, len(configRecords))
	for _, provider := range configRecords {
		shadowed[provider.Handle] = struct{}{}
	}

	storeRecords, err := r.repo.Providers().List()
	if err != nil {
		return nil, err
	}

	all := make([]*models.Provider, 0, len(configRecords)+len(storeRecords))
	all = append(all, configRecords...)
	for _, provider := range storeRecords {
		if _, ok := shadowed[provider.Handle]; ok {
			continue
		}
		all = append(all, provider)
	}
	return all, nil
}

// FindEnabledProviders filters FindAllProviders down to enabled records.
func (r *Resolver) FindEnabledProviders() ([]*models.Provider, error) {
	all, err := r.FindAllProviders()
	if err != nil {
		return nil, err
	}

	enabled := make([]*models.Provider, 0, len(all))
	for _, provider := range all {
		if provider.Enabled {
			enabled = append(enabled, provider)
		}
	}
	return enabled, nil
}

// FindSenderByHandle checks static configuration first and falls back to the
// store on a miss.
func (r *Resolver) FindSenderByHandle(handle string) (*models.SenderIdentity, error) {
	for _, sender := range r.cfg.SenderRecords() {
		if sender.Handle == handle {
			return sender, nil
		}
	}
	return r.repo.Senders().GetByHandle(handle)
}

// FindAllSenders returns config-origin sender identities first, then
// unshadowed store-origin ones, each group ordered by display name.
func (r *Resolver) FindAllSenders() ([]*models.SenderIdentity, error) {
	configRecords := r.cfg.SenderRecords()

	shadowed := make(map[string]struct{}, len(configRecords))
	for _, sender := range configRecords {
		shadowed[sender.Handle] = struct{}{}
	}

	storeRecords, err := r.repo.Senders().List()
	if err != nil {
		return nil, err
	}

	all := make([]*models.SenderIdentity, 0, len(configRecords)+len(storeRecords))
	all = append(all, configRecords...)
	for _, sender := range storeRecords {
		if _, ok := shadowed[sender.Handle]; ok {
			continue
		}
		all = append(all, sender)
	}
	return all, nil
}

// FindEnabledSenders filters FindAllSenders down to enabled records,
// optionally scoped to one provider handle.
func (r *Resolver) FindEnabledSenders(providerHandle string) ([]*models.SenderIdentity, error) {
	all, err := r.FindAllSenders()
	if err != nil {
		return nil, err
	}

	enabled := make([]*models.SenderIdentity, 0, len(all))
	for _, sender := range all {
		if !sender.Enabled {
			continue
		}
		if providerHandle != "" && sender.ProviderHandle != providerHandle {
			continue
		}
		enabled = append(enabled, sender)
	}
	return enabled, nil
}

// IsDefaultProviderFromConfig reports whether the default provider handle is
// pinned by static configuration. A config-pinned default cannot be changed
// through the administrative path.
func (r *Resolver) IsDefaultProviderFromConfig() bool {
	return r.cfg.DefaultProvider != ""
}

// IsDefaultSenderFromConfig reports whether the default sender handle is
// pinned by static configuration.
func (r *Resolver) IsDefaultSenderFromConfig() bool {
	return r.cfg.DefaultSender != ""
}

// defaultProviderHandle reads the explicitly-configured default, preferring
// the config tier over the mutable settings record.
func (r *Resolver) defaultProviderHandle() string {
	if r.cfg.DefaultProvider != "" {
		return r.cfg.DefaultProvider
	}

	settings, err := r.repo.Settings().Get()
	if err != nil {
		r.logger.Warn("Failed to read settings record for default provider", zap.Error(err))
		return ""
	}
	return settings.DefaultProvider
}

func (r *Resolver) defaultSenderHandle() string {
	if r.cfg.DefaultSender != "" {
		return r.cfg.DefaultSender
	}

	settings, err := r.repo.Settings().Get()
	if err != nil {
		r.logger.Warn("Failed to read settings record for default sender", zap.Error(err))
		return ""
	}
	return settings.DefaultSender
}

// GetDefaultProvider resolves the provider to use when a caller does not
// name one: the configured default handle if it still resolves to an enabled
// provider, otherwise the first enabled provider in config-then-store order.
func (r *Resolver) GetDefaultProvider() (*models.Provider, error) {
	if handle := r.defaultProviderHandle(); handle != "" {
		provider, err := r.FindProviderByHandle(handle)
		if err != nil {
			return nil, err
		}
		if provider != nil && provider.Enabled {
			return provider, nil
		}
	}

	enabled, err := r.FindEnabledProviders()
	if err != nil {
		return nil, err
	}
	if len(enabled) == 0 {
		return nil, nil
	}
	return enabled[0], nil
}

// GetDefaultSender resolves the sender identity to use when a caller does
// not name one. When providerHandle is non-empty the default must belong to
// that provider; a configured default outside the scope is skipped.
func (r *Resolver) GetDefaultSender(providerHandle string) (*models.SenderIdentity, error) {
	if handle := r.defaultSenderHandle(); handle != "" {
		sender, err := r.FindSenderByHandle(handle)
		if err != nil {
			return nil, err
		}
		if sender != nil && sender.Enabled &&
			(providerHandle == "" || sender.ProviderHandle == providerHandle) {
			return sender, nil
		}
	}

	enabled, err := r.FindEnabledSenders(providerHandle)
	if err != nil {
		return nil, err
	}
	if len(enabled) == 0 {
		return nil, nil
	}
	return enabled[0], nil
}

// SaveProvider creates or updates a store-origin provider. Config-origin
// handles are rejected before anything touches the store.
func (r *Resolver) SaveProvider(provider *models.Provider) error {
	if provider.Origin == models.OriginConfig || r.isConfigProviderHandle(provider.Handle) {
		return ErrReadOnlyConfigRecord
	}

	if err := validateProvider(provider); err != nil {
		return err
	}

	existing, err := r.repo.Providers().GetByHandle(provider.Handle)
	if err != nil {
		return err
	}

	if existing == nil {
		return r.repo.Providers().Create(provider)
	}
	return r.repo.Providers().Update(provider)
}

// DeleteProvider removes a store-origin provider. Deletion is blocked while
// the provider is the resolved default or referenced elsewhere.
func (r *Resolver) DeleteProvider(handle string) error {
	if r.isConfigProviderHandle(handle) {
		return ErrReadOnlyConfigRecord
	}

	usages := r.usages.ProviderUsages(handle)

	senders, err := r.repo.Senders().ListByProvider(handle)
	if err != nil {
		return err
	}
	for _, sender := range senders {
		usages = append(usages, Usage{Label: "Sender identity: " + sender.Name})
	}

	if handle == r.defaultProviderHandle() {
		usages = append(usages, Usage{Label: "Default provider"})
	}

	if len(usages) > 0 {
		return &InUseError{Handle: handle, Usages: usages}
	}

	return r.repo.Providers().Delete(handle)
}

// SaveSender creates or updates a store-origin sender identity.
func (r *Resolver) SaveSender(sender *models.SenderIdentity) error {
	if sender.Origin == models.OriginConfig || r.isConfigSenderHandle(sender.Handle) {
		return ErrReadOnlyConfigRecord
	}

	if err := validateSender(sender); err != nil {
		return err
	}

	existing, err := r.repo.Senders().GetByHandle(sender.Handle)
	if err != nil {
		return err
	}

	if existing == nil {
		return r.repo.Senders().Create(sender)
	}
	return r.repo.Senders().Update(sender)
}

// DeleteSender removes a store-origin sender identity, unless it is the
// resolved default or referenced elsewhere.
func (r *Resolver) DeleteSender(handle string) error {
	if r.isConfigSenderHandle(handle) {
		return ErrReadOnlyConfigRecord
	}

	usages := r.usages.SenderUsages(handle)

	if handle == r.defaultSenderHandle() {
		usages = append(usages, Usage{Label: "Default sender identity"})
	}

	if len(usages) > 0 {
		return &InUseError{Handle: handle, Usages: usages}
	}

	return r.repo.Senders().Delete(handle)
}

func (r *Resolver) isConfigProviderHandle(handle string) bool {
	_, ok := r.cfg.Providers[handle]
	return ok
}

func (r *Resolver) isConfigSenderHandle(handle string) bool {
	_, ok := r.cfg.Senders[handle]
	return ok
}

func validateProvider(provider *models.Provider) error {
	fields := map[string]string{}
	if strings.TrimSpace(provider.Handle) == "" {
		fields["handle"] = "handle is required"
	}
	if strings.TrimSpace(provider.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(provider.TypeHandle) == "" {
		fields["type"] = "provider type is required"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateSender(sender *models.SenderIdentity) error {
	fields := map[string]string{}
	if strings.TrimSpace(sender.Handle) == "" {
		fields["handle"] = "handle is required"
	}
	if strings.TrimSpace(sender.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(sender.ProviderHandle) == "" {
		fields["provider"] = "provider is required"
	}
	if strings.TrimSpace(sender.SenderValue) == "" {
		fields["sender_value"] = "sender value is required"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
