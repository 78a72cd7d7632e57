// Package service provides business logic implementation for the application.
package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/teleline/smsgate/internal/config"
	"github.com/teleline/smsgate/internal/gateway"
	"github.com/teleline/smsgate/internal/models"
	"github.com/teleline/smsgate/internal/phone"
	"github.com/teleline/smsgate/internal/repository"
	"github.com/teleline/smsgate/internal/resolver"
	"github.com/teleline/smsgate/internal/sms"
)

type dispatchService struct {
	cfg         *config.Config
	repo        repository.Repository
	resolver    *resolver.Resolver
	registry    *gateway.Registry
	retention   RetentionService
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewDispatchService(
	cfg *config.Config,
	repo repository.Repository,
	res *resolver.Resolver,
	registry *gateway.Registry,
	retention RetentionService,
	redisClient *redis.Client,
	logger *zap.Logger,
) DispatchService {
	return &dispatchService{
		cfg:         cfg,
		repo:        repo,
		resolver:    res,
		registry:    registry,
		retention:   retention,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Send dispatches one message.
func (s *dispatchService) Send(ctx context.Context, input SendInput) (bool, error) {
	details, err := s.SendWithDetails(ctx, input)
	if err != nil {
		return false, err
	}
	return details.Success, nil
}

// SendByHandle dispatches through a specific sender identity.
func (s *dispatchService) SendByHandle(ctx context.Context, to, message, senderHandle, language, sourcePlugin string) (bool, error) {
	return s.Send(ctx, SendInput{
		To:           to,
		Message:      message,
		Language:     language,
		SenderHandle: senderHandle,
		SourcePlugin: sourcePlugin,
	})
}

// SendWithDetails runs the dispatch state machine:
// resolving -> validating -> pending(logged) -> sending -> sent|failed.
func (s *dispatchService) SendWithDetails(ctx context.Context, input SendInput) (*SendDetails, error) {
	started := time.Now()
	details := &SendDetails{}

	fail := func(err error) (*SendDetails, error) {
		details.Error = err.Error()
		details.ExecutionTimeMs = time.Since(started).Milliseconds()
		return details, err
	}

	// Resolving
	provider, sender, err := s.resolve(input)
	if err != nil {
		return fail(err)
	}
	details.ProviderName = provider.Name
	details.SenderName = sender.Name
	details.SenderValue = sender.SenderValue

	// Validating
	if !provider.Enabled {
		return fail(fmt.Errorf("%w: %s", ErrProviderDisabled, provider.Handle))
	}
	if !sender.Enabled {
		return fail(fmt.Errorf("%w: %s", ErrSenderDisabled, sender.Handle))
	}

	allowed := gateway.AllowedCountries(provider.Settings)
	validated := phone.NormalizeAndValidate(input.To, allowed)
	if !validated.Valid {
		return fail(&PhoneValidationError{
			Number:           input.To,
			AllowedCountries: allowed,
			Reason:           validated.Err,
		})
	}
	details.Recipient = validated.Number
	if validated.Fixed {
		s.logger.Info("Corrected destination number",
			zap.String("raw", input.To),
			zap.String("corrected", validated.Number))
	}

	language := input.Language
	if language == "" {
		language = sms.LanguageEnglish
	}

	// Pending(logged)
	var logID int64
	if s.cfg.SMS.EnableLogs {
		entry := &models.DeliveryLog{
			Recipient:       input.To,
			Message:         input.Message,
			Language:        language,
			MessageLength:   len([]rune(input.Message)),
			Status:          models.DeliveryStatusPending,
			ProviderHandle:  provider.Handle,
			SenderHandle:    sender.Handle,
			SourcePlugin:    input.SourcePlugin,
			SourceReference: input.SourceReference,
		}

		logID, err = s.repo.Logs().Create(entry)
		if err != nil {
			return fail(fmt.Errorf("failed to create delivery log: %w", err))
		}

		if s.cfg.SMS.TrimLogs {
			if _, trimErr := s.retention.TrimLogsIfOverLimit(); trimErr != nil {
				s.logger.Warn("Log auto-trim failed", zap.Error(trimErr))
			}
		}
	}

	// Sending
	gw := s.registry.Create(provider.TypeHandle)
	if gw == nil {
		err = fmt.Errorf("%w: %s", ErrUnknownProviderType, provider.TypeHandle)
		s.recordFailure(logID, provider, sender, input.SourcePlugin, "", err.Error())
		return fail(err)
	}

	result := s.sendThroughGateway(ctx, gw, gateway.SendRequest{
		To:          validated.Number,
		Message:     sms.Sanitize(input.Message),
		SenderValue: sender.SenderValue,
		Language:    language,
		Development: sender.IsDevelopment,
		Settings:    provider.Settings,
	})

	details.MessageID = result.MessageID
	details.Response = result.Response
	details.ExecutionTimeMs = time.Since(started).Milliseconds()

	// Terminal
	if result.Success {
		s.recordSuccess(ctx, logID, provider, sender, input.SourcePlugin, language, result)
		details.Success = true

		s.logger.Info("Message sent",
			zap.String("provider", provider.Handle),
			zap.String("sender", sender.Handle),
			zap.String("message_id", result.MessageID),
			zap.Int64("execution_ms", details.ExecutionTimeMs))
		return details, nil
	}

	s.recordFailure(logID, provider, sender, input.SourcePlugin, result.Response, result.Err)
	details.Error = result.Err

	s.logger.Warn("Message failed",
		zap.String("provider", provider.Handle),
		zap.String("sender", sender.Handle),
		zap.String("error", result.Err))
	return details, nil
}

// sendThroughGateway contains a panicking gateway implementation. The
// registry accepts third-party factories, so a panic inside Send is treated
// as a failed attempt and the pending log entry still reaches a terminal
// state.
func (s *dispatchService) sendThroughGateway(ctx context.Context, gw gateway.Gateway, req gateway.SendRequest) (result gateway.SendResult) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("Gateway panicked during send",
				zap.String("gateway", gw.Handle()),
				zap.Any("panic", rec),
				zap.String("stack", string(debug.Stack())))
			result = gateway.SendResult{Err: "gateway failure: " + gw.Handle()}
		}
	}()

	return gw.Send(ctx, req)
}

// GetMessages returns one page of delivery log entries, newest first.
func (s *dispatchService) GetMessages(page, limit int) (*MessageListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.cfg.SMS.PageSize
		if limit < 1 {
			limit = 20
		}
	}
	offset := (page - 1) * limit

	entries, err := s.repo.Logs().List(offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery logs: %w", err)
	}

	total, err := s.repo.Logs().Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count delivery logs: %w", err)
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	if entries == nil {
		entries = []*models.DeliveryLog{}
	}

	return &MessageListResult{
		Data: entries,
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   int(total),
			ItemsPerPage: limit,
		},
	}, nil
}

// resolve looks up the provider and sender identity for a request. An
// explicit sender with no explicit provider pins the provider through the
// identity's provider handle.
func (s *dispatchService) resolve(input SendInput) (*models.Provider, *models.SenderIdentity, error) {
	var (
		provider *models.Provider
		sender   *models.SenderIdentity
		err      error
	)

	if input.SenderHandle != "" {
		sender, err = s.resolver.FindSenderByHandle(input.SenderHandle)
		if err != nil {
			return nil, nil, err
		}
		if sender == nil {
			return nil, nil, fmt.Errorf("%w: %s", ErrSenderNotConfigured, input.SenderHandle)
		}
	}

	providerHandle := input.ProviderHandle
	if providerHandle == "" && sender != nil {
		providerHandle = sender.ProviderHandle
	}

	if providerHandle != "" {
		provider, err = s.resolver.FindProviderByHandle(providerHandle)
	} else {
		provider, err = s.resolver.GetDefaultProvider()
	}
	if err != nil {
		return nil, nil, err
	}
	if provider == nil {
		return nil, nil, ErrProviderNotConfigured
	}

	if sender == nil {
		sender, err = s.resolver.GetDefaultSender(provider.Handle)
		if err != nil {
			return nil, nil, err
		}
		if sender == nil {
			return nil, nil, ErrSenderNotConfigured
		}
	}

	if sender.ProviderHandle != provider.Handle {
		return nil, nil, fmt.Errorf("%w: %s does not belong to provider %s",
			ErrSenderNotConfigured, sender.Handle, provider.Handle)
	}

	return provider, sender, nil
}

func (s *dispatchService) recordSuccess(ctx context.Context, logID int64, provider *models.Provider, sender *models.SenderIdentity, sourcePlugin, language string, result gateway.SendResult) {
	if s.cfg.SMS.EnableLogs && logID > 0 {
		var messageID, response *string
		if result.MessageID != "" {
			messageID = &result.MessageID
		}
		if result.Response != "" {
			response = &result.Response
		}

		if err := s.repo.Logs().MarkResult(logID, models.DeliveryStatusSent, messageID, response, nil); err != nil {
			s.logger.Error("Failed to mark delivery log sent",
				zap.Int64("log_id", logID),
				zap.Error(err))
		}
	}

	delta := models.AnalyticsDelta{
		Date:           time.Now(),
		ProviderHandle: provider.Handle,
		SenderHandle:   sender.Handle,
		SourcePlugin:   sourcePlugin,
		Sent:           1,
	}
	switch language {
	case sms.LanguageEnglish:
		delta.English = 1
	case sms.LanguageArabic:
		delta.Arabic = 1
	default:
		delta.Other = 1
	}
	s.applyAnalytics(delta)

	if result.MessageID != "" {
		cacheKey := fmt.Sprintf("smsgate:message:%s", result.MessageID)
		cacheValue := fmt.Sprintf("%d:%s", logID, time.Now().Format(time.RFC3339))
		if err := s.redisClient.Set(ctx, cacheKey, cacheValue, 24*time.Hour).Err(); err != nil {
			s.logger.Warn("Failed to cache gateway message ID",
				zap.String("message_id", result.MessageID),
				zap.Error(err))
		}
	}
}

func (s *dispatchService) recordFailure(logID int64, provider *models.Provider, sender *models.SenderIdentity, sourcePlugin, response, errMsg string) {
	if s.cfg.SMS.EnableLogs && logID > 0 {
		var responsePtr *string
		if response != "" {
			responsePtr = &response
		}

		if err := s.repo.Logs().MarkResult(logID, models.DeliveryStatusFailed, nil, responsePtr, &errMsg); err != nil {
			s.logger.Error("Failed to mark delivery log failed",
				zap.Int64("log_id", logID),
				zap.Error(err))
		}
	}

	s.applyAnalytics(models.AnalyticsDelta{
		Date:           time.Now(),
		ProviderHandle: provider.Handle,
		SenderHandle:   sender.Handle,
		SourcePlugin:   sourcePlugin,
		Failed:         1,
	})
}

func (s *dispatchService) applyAnalytics(delta models.AnalyticsDelta) {
	if !s.cfg.SMS.EnableAnalytics {
		return
	}

	if err := s.repo.Analytics().Apply(delta); err != nil {
		s.logger.Error("Failed to update analytics bucket", zap.Error(err))
		return
	}

	if s.cfg.SMS.TrimAnalytics {
		if _, err := s.retention.TrimAnalyticsIfOverLimit(); err != nil {
			s.logger.Warn("Analytics auto-trim failed", zap.Error(err))
		}
	}
}
