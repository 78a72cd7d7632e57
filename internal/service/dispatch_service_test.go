package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/teleline/smsgate/internal/config"
	"github.com/teleline/smsgate/internal/gateway"
	"github.com/teleline/smsgate/internal/models"
	"github.com/teleline/smsgate/internal/repository/mocks"
	"github.com/teleline/smsgate/internal/resolver"
	"github.com/teleline/smsgate/internal/service"
)

// stubGateway returns a canned result and records the last request.
type stubGateway struct {
	gateway.Base
	result  gateway.SendResult
	lastReq *gateway.SendRequest
}

func (g *stubGateway) Handle() string      { return "stub" }
func (g *stubGateway) DisplayName() string { return "Stub" }
func (g *stubGateway) Description() string { return "test gateway" }

func (g *stubGateway) Send(_ context.Context, req gateway.SendRequest) gateway.SendResult {
	g.lastReq = &req
	return g.result
}

// panicGateway stands in for a broken third-party registration.
type panicGateway struct {
	gateway.Base
}

func (g *panicGateway) Handle() string      { return "boom" }
func (g *panicGateway) DisplayName() string { return "Boom" }
func (g *panicGateway) Description() string { return "always panics" }

func (g *panicGateway) Send(_ context.Context, _ gateway.SendRequest) gateway.SendResult {
	panic("nil map write")
}

type dispatchHarness struct {
	cfg       *config.Config
	repo      *mocks.MockRepository
	providers *mocks.MockProviderRepository
	senders   *mocks.MockSenderRepository
	settings  *mocks.MockSettingsRepository
	logs      *mocks.MockLogRepository
	analytics *mocks.MockAnalyticsRepository
	gw        *stubGateway
	svc       service.DispatchService
}

func newDispatchHarness(t *testing.T, ctrl *gomock.Controller, mutate func(*config.Config)) *dispatchHarness {
	t.Helper()

	h := &dispatchHarness{
		repo:      mocks.NewMockRepository(ctrl),
		providers: mocks.NewMockProviderRepository(ctrl),
		senders:   mocks.NewMockSenderRepository(ctrl),
		settings:  mocks.NewMockSettingsRepository(ctrl),
		logs:      mocks.NewMockLogRepository(ctrl),
		analytics: mocks.NewMockAnalyticsRepository(ctrl),
		gw:        &stubGateway{result: gateway.SendResult{Success: true, MessageID: "mid-1", Response: "OK"}},
	}
	h.repo.EXPECT().Providers().Return(h.providers).AnyTimes()
	h.repo.EXPECT().Senders().Return(h.senders).AnyTimes()
	h.repo.EXPECT().Settings().Return(h.settings).AnyTimes()
	h.repo.EXPECT().Logs().Return(h.logs).AnyTimes()
	h.repo.EXPECT().Analytics().Return(h.analytics).AnyTimes()

	h.cfg = &config.Config{
		SMS: config.SMSConfig{
			EnableLogs:      true,
			EnableAnalytics: true,
			DefaultProvider: "mshastra_kw",
			DefaultSender:   "main",
			Providers: map[string]config.ProviderDef{
				"mshastra_kw": {
					Name:    "Mobishastra Kuwait",
					Type:    "stub",
					Enabled: true,
					Settings: map[string]string{
						"allowed_countries": "KW",
					},
				},
			},
			Senders: map[string]config.SenderDef{
				"main": {
					Name:        "Main",
					Provider:    "mshastra_kw",
					SenderValue: "ACME",
					Enabled:     true,
				},
			},
		},
	}
	if mutate != nil {
		mutate(h.cfg)
	}

	registry := gateway.NewRegistry()
	registry.Register("stub", func() gateway.Gateway { return h.gw })
	registry.Register("boom", func() gateway.Gateway { return &panicGateway{} })

	logger := zap.NewNop()
	res := resolver.New(&h.cfg.SMS, h.repo, logger)
	retention := service.NewRetentionService(&h.cfg.SMS, h.repo, logger)
	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:9999"})

	h.svc = service.NewDispatchService(h.cfg, h.repo, res, registry, retention, redisClient, logger)
	return h
}

func TestSend_SuccessRecordsLogAndAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, nil)

	h.logs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.DeliveryLog) (int64, error) {
		assert.Equal(t, models.DeliveryStatusPending, entry.Status)
		assert.Equal(t, "mshastra_kw", entry.ProviderHandle)
		assert.Equal(t, "main", entry.SenderHandle)
		assert.Equal(t, "+96594400999", entry.Recipient)
		return 42, nil
	})
	h.logs.EXPECT().MarkResult(int64(42), models.DeliveryStatusSent, gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ int64, _ models.DeliveryStatus, messageID, response, _ *string) error {
			require.NotNil(t, messageID)
			assert.Equal(t, "mid-1", *messageID)
			require.NotNil(t, response)
			assert.Equal(t, "OK", *response)
			return nil
		})
	h.analytics.EXPECT().Apply(gomock.Any()).DoAndReturn(func(delta models.AnalyticsDelta) error {
		assert.Equal(t, int64(1), delta.Sent)
		assert.Equal(t, int64(1), delta.English)
		assert.Equal(t, int64(0), delta.Failed)
		assert.Equal(t, "mshastra_kw", delta.ProviderHandle)
		return nil
	})

	ok, err := h.svc.Send(context.Background(), service.SendInput{
		To:      "+96594400999",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.True(t, ok)

	require.NotNil(t, h.gw.lastReq)
	assert.Equal(t, "96594400999", h.gw.lastReq.To)
	assert.Equal(t, "ACME", h.gw.lastReq.SenderValue)
}

func TestSend_GatewayFailureMarksFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, nil)
	h.gw.result = gateway.SendResult{Success: false, Response: "Invalid password", Err: "gateway rejected message"}

	h.logs.EXPECT().Create(gomock.Any()).Return(int64(7), nil)
	h.logs.EXPECT().MarkResult(int64(7), models.DeliveryStatusFailed, nil, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ int64, _ models.DeliveryStatus, _, response, errMsg *string) error {
			require.NotNil(t, errMsg)
			assert.Equal(t, "gateway rejected message", *errMsg)
			return nil
		})
	h.analytics.EXPECT().Apply(gomock.Any()).DoAndReturn(func(delta models.AnalyticsDelta) error {
		assert.Equal(t, int64(1), delta.Failed)
		assert.Equal(t, int64(0), delta.Sent)
		assert.Equal(t, int64(0), delta.English)
		return nil
	})

	details, err := h.svc.SendWithDetails(context.Background(), service.SendInput{
		To:      "96594400999",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.False(t, details.Success)
	assert.Equal(t, "gateway rejected message", details.Error)
	assert.Equal(t, "Invalid password", details.Response)
}

func TestSend_GatewayPanicMarksFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, func(cfg *config.Config) {
		def := cfg.SMS.Providers["mshastra_kw"]
		def.Type = "boom"
		cfg.SMS.Providers["mshastra_kw"] = def
	})

	h.logs.EXPECT().Create(gomock.Any()).Return(int64(11), nil)
	h.logs.EXPECT().MarkResult(int64(11), models.DeliveryStatusFailed, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ int64, _ models.DeliveryStatus, _, _, errMsg *string) error {
			require.NotNil(t, errMsg)
			assert.Equal(t, "gateway failure: boom", *errMsg)
			return nil
		})
	h.analytics.EXPECT().Apply(gomock.Any()).DoAndReturn(func(delta models.AnalyticsDelta) error {
		assert.Equal(t, int64(1), delta.Failed)
		assert.Equal(t, int64(0), delta.Sent)
		return nil
	})

	details, err := h.svc.SendWithDetails(context.Background(), service.SendInput{
		To:      "96594400999",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.False(t, details.Success)
	assert.Equal(t, "gateway failure: boom", details.Error)
}

func TestSend_InvalidPhoneSkipsLogging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, nil)
	// No log or analytics expectations: nothing is recorded.

	_, err := h.svc.Send(context.Background(), service.SendInput{
		To:      "12025550123",
		Message: "hello",
	})
	require.Error(t, err)

	var phoneErr *service.PhoneValidationError
	require.ErrorAs(t, err, &phoneErr)
	assert.Equal(t, []string{"KW"}, phoneErr.AllowedCountries)
	assert.Nil(t, h.gw.lastReq)
}

func TestSend_FixesBareLocalNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, nil)
	h.logs.EXPECT().Create(gomock.Any()).Return(int64(1), nil)
	h.logs.EXPECT().MarkResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	h.analytics.EXPECT().Apply(gomock.Any()).Return(nil)

	ok, err := h.svc.Send(context.Background(), service.SendInput{
		To:      "94400999",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.True(t, ok)

	require.NotNil(t, h.gw.lastReq)
	assert.Equal(t, "96594400999", h.gw.lastReq.To)
}

func TestSend_NoDefaultProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, func(cfg *config.Config) {
		cfg.SMS.DefaultProvider = ""
		cfg.SMS.DefaultSender = ""
		cfg.SMS.Providers = nil
		cfg.SMS.Senders = nil
	})
	h.settings.EXPECT().Get().Return(&models.StoreSettings{ID: 1}, nil).AnyTimes()
	h.providers.EXPECT().List().Return(nil, nil)

	_, err := h.svc.Send(context.Background(), service.SendInput{
		To:      "96594400999",
		Message: "hello",
	})
	assert.ErrorIs(t, err, service.ErrProviderNotConfigured)
}

func TestSend_DisabledProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, func(cfg *config.Config) {
		def := cfg.SMS.Providers["mshastra_kw"]
		def.Enabled = false
		cfg.SMS.Providers["mshastra_kw"] = def
	})

	_, err := h.svc.Send(context.Background(), service.SendInput{
		To:             "96594400999",
		Message:        "hello",
		ProviderHandle: "mshastra_kw",
	})
	assert.ErrorIs(t, err, service.ErrProviderDisabled)
}

func TestSend_UnknownProviderTypeMarksFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, func(cfg *config.Config) {
		def := cfg.SMS.Providers["mshastra_kw"]
		def.Type = "nonexistent"
		cfg.SMS.Providers["mshastra_kw"] = def
	})

	h.logs.EXPECT().Create(gomock.Any()).Return(int64(9), nil)
	h.logs.EXPECT().MarkResult(int64(9), models.DeliveryStatusFailed, nil, nil, gomock.Any()).Return(nil)
	h.analytics.EXPECT().Apply(gomock.Any()).DoAndReturn(func(delta models.AnalyticsDelta) error {
		assert.Equal(t, int64(1), delta.Failed)
		return nil
	})

	_, err := h.svc.Send(context.Background(), service.SendInput{
		To:      "96594400999",
		Message: "hello",
	})
	assert.ErrorIs(t, err, service.ErrUnknownProviderType)
}

func TestSendByHandle_ResolvesProviderFromSender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, func(cfg *config.Config) {
		// No default provider; the sender pins it.
		cfg.SMS.DefaultProvider = ""
		cfg.SMS.DefaultSender = ""
	})
	h.logs.EXPECT().Create(gomock.Any()).Return(int64(3), nil)
	h.logs.EXPECT().MarkResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	h.analytics.EXPECT().Apply(gomock.Any()).Return(nil)

	ok, err := h.svc.SendByHandle(context.Background(), "96594400999", "hello", "main", "en", "billing")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ACME", h.gw.lastReq.SenderValue)
}

func TestSendByHandle_UnknownSender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, nil)
	h.senders.EXPECT().GetByHandle("ghost").Return(nil, nil)

	_, err := h.svc.SendByHandle(context.Background(), "96594400999", "hello", "ghost", "en", "")
	assert.ErrorIs(t, err, service.ErrSenderNotConfigured)
}

func TestSend_SenderProviderMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, func(cfg *config.Config) {
		cfg.SMS.Providers["other"] = config.ProviderDef{
			Name:    "Other",
			Type:    "stub",
			Enabled: true,
		}
	})

	_, err := h.svc.Send(context.Background(), service.SendInput{
		To:             "96594400999",
		Message:        "hello",
		ProviderHandle: "other",
		SenderHandle:   "main",
	})
	assert.ErrorIs(t, err, service.ErrSenderNotConfigured)
}

func TestSend_ArabicCountsArabicBucket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, nil)
	h.logs.EXPECT().Create(gomock.Any()).Return(int64(5), nil)
	h.logs.EXPECT().MarkResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	h.analytics.EXPECT().Apply(gomock.Any()).DoAndReturn(func(delta models.AnalyticsDelta) error {
		assert.Equal(t, int64(1), delta.Arabic)
		assert.Equal(t, int64(0), delta.English)
		return nil
	})

	ok, err := h.svc.Send(context.Background(), service.SendInput{
		To:       "96594400999",
		Message:  "مرحبا",
		Language: "ar",
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ar", h.gw.lastReq.Language)
}

func TestSend_LoggingDisabledStillSends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, func(cfg *config.Config) {
		cfg.SMS.EnableLogs = false
	})
	// Only analytics; no log repository calls.
	h.analytics.EXPECT().Apply(gomock.Any()).Return(nil)

	ok, err := h.svc.Send(context.Background(), service.SendInput{
		To:      "96594400999",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSend_LogCreateErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, nil)
	h.logs.EXPECT().Create(gomock.Any()).Return(int64(0), errors.New("db down"))

	_, err := h.svc.Send(context.Background(), service.SendInput{
		To:      "96594400999",
		Message: "hello",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.Nil(t, h.gw.lastReq)
}

func TestSend_AutoTrimRunsWhenEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, func(cfg *config.Config) {
		cfg.SMS.TrimLogs = true
		cfg.SMS.LogsLimit = 100
	})

	h.logs.EXPECT().Create(gomock.Any()).Return(int64(1), nil)
	h.logs.EXPECT().Count().Return(int64(150), nil)
	h.logs.EXPECT().TrimToLimit(int64(100)).Return(int64(50), nil)
	h.logs.EXPECT().MarkResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	h.analytics.EXPECT().Apply(gomock.Any()).Return(nil)

	ok, err := h.svc.Send(context.Background(), service.SendInput{
		To:      "96594400999",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGetMessages_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, nil)
	h.logs.EXPECT().List(20, 10).Return([]*models.DeliveryLog{{ID: 1}, {ID: 2}}, nil)
	h.logs.EXPECT().Count().Return(int64(25), nil)

	result, err := h.svc.GetMessages(3, 10)
	require.NoError(t, err)
	assert.Len(t, result.Data, 2)
	assert.Equal(t, 3, result.Pagination.CurrentPage)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.Equal(t, 25, result.Pagination.TotalItems)
	assert.Equal(t, 10, result.Pagination.ItemsPerPage)
}

func TestGetMessages_DefaultsAndEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, func(cfg *config.Config) {
		cfg.SMS.PageSize = 50
	})
	h.logs.EXPECT().List(0, 50).Return(nil, nil)
	h.logs.EXPECT().Count().Return(int64(0), nil)

	result, err := h.svc.GetMessages(0, 0)
	require.NoError(t, err)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Equal(t, 1, result.Pagination.CurrentPage)
	assert.Equal(t, 0, result.Pagination.TotalPages)
}

func TestSendWithDetails_ReportsResolvedNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newDispatchHarness(t, ctrl, nil)
	h.logs.EXPECT().Create(gomock.Any()).Return(int64(1), nil)
	h.logs.EXPECT().MarkResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	h.analytics.EXPECT().Apply(gomock.Any()).Return(nil)

	details, err := h.svc.SendWithDetails(context.Background(), service.SendInput{
		To:      "+965 9440 0999",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.True(t, details.Success)
	assert.Equal(t, "Mobishastra Kuwait", details.ProviderName)
	assert.Equal(t, "Main", details.SenderName)
	assert.Equal(t, "ACME", details.SenderValue)
	assert.Equal(t, "96594400999", details.Recipient)
	assert.Equal(t, "mid-1", details.MessageID)
	assert.GreaterOrEqual(t, details.ExecutionTimeMs, int64(0))
}
