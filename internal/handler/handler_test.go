package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/teleline/smsgate/internal/config"
	"github.com/teleline/smsgate/internal/handler"
	"github.com/teleline/smsgate/internal/models"
	repomocks "github.com/teleline/smsgate/internal/repository/mocks"
	"github.com/teleline/smsgate/internal/resolver"
	"github.com/teleline/smsgate/internal/scheduler"
	"github.com/teleline/smsgate/internal/service"
	"github.com/teleline/smsgate/internal/service/mocks"
)

type handlerHarness struct {
	dispatch  *mocks.MockDispatchService
	scheduler *mocks.MockSchedulerService
	health    *mocks.MockHealthService
	providers *repomocks.MockProviderRepository
	senders   *repomocks.MockSenderRepository
	router    chi.Router
}

func newHandlerHarness(ctrl *gomock.Controller) *handlerHarness {
	h := &handlerHarness{
		dispatch:  mocks.NewMockDispatchService(ctrl),
		scheduler: mocks.NewMockSchedulerService(ctrl),
		health:    mocks.NewMockHealthService(ctrl),
		providers: repomocks.NewMockProviderRepository(ctrl),
		senders:   repomocks.NewMockSenderRepository(ctrl),
	}

	repo := repomocks.NewMockRepository(ctrl)
	repo.EXPECT().Providers().Return(h.providers).AnyTimes()
	repo.EXPECT().Senders().Return(h.senders).AnyTimes()

	cfg := &config.SMSConfig{
		Providers: map[string]config.ProviderDef{
			"mshastra_kw": {Name: "Mobishastra Kuwait", Type: "mshastra", Enabled: true},
		},
		Senders: map[string]config.SenderDef{
			"main": {Name: "Main", Provider: "mshastra_kw", SenderValue: "ACME", Enabled: true},
		},
	}

	svc := &service.Service{
		Dispatch:  h.dispatch,
		Scheduler: h.scheduler,
		Health:    h.health,
		Resolver:  resolver.New(cfg, repo, zap.NewNop()),
	}

	h.router = chi.NewRouter()
	handler.NewHandler(svc, zap.NewNop()).Routes(h.router)
	return h
}

func (h *handlerHarness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func TestSendMessage(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMocks     func(*handlerHarness)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "success",
			body: handler.SendMessageRequest{To: "96594400999", Message: "hello"},
			setupMocks: func(h *handlerHarness) {
				h.dispatch.EXPECT().Send(gomock.Any(), service.SendInput{
					To:      "96594400999",
					Message: "hello",
				}).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing recipient",
			body:           handler.SendMessageRequest{Message: "hello"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name:           "missing message",
			body:           handler.SendMessageRequest{To: "96594400999"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "invalid phone",
			body: handler.SendMessageRequest{To: "123", Message: "hello"},
			setupMocks: func(h *handlerHarness) {
				h.dispatch.EXPECT().Send(gomock.Any(), gomock.Any()).
					Return(false, &service.PhoneValidationError{Number: "123", Reason: "unrecognized dial code"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "INVALID_PHONE_NUMBER",
		},
		{
			name: "no provider configured",
			body: handler.SendMessageRequest{To: "96594400999", Message: "hello"},
			setupMocks: func(h *handlerHarness) {
				h.dispatch.EXPECT().Send(gomock.Any(), gomock.Any()).
					Return(false, service.ErrProviderNotConfigured)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "PROVIDER_NOT_CONFIGURED",
		},
		{
			name: "sender disabled",
			body: handler.SendMessageRequest{To: "96594400999", Message: "hello", Sender: "main"},
			setupMocks: func(h *handlerHarness) {
				h.dispatch.EXPECT().Send(gomock.Any(), gomock.Any()).
					Return(false, service.ErrSenderDisabled)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "SENDER_DISABLED",
		},
		{
			name: "unexpected error",
			body: handler.SendMessageRequest{To: "96594400999", Message: "hello"},
			setupMocks: func(h *handlerHarness) {
				h.dispatch.EXPECT().Send(gomock.Any(), gomock.Any()).
					Return(false, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := newHandlerHarness(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(h)
			}

			rec := h.do(t, http.MethodPost, "/api/v1/messages", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedError != "" {
				var resp handler.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestSendMessage_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHandlerHarness(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessageDetailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHandlerHarness(ctrl)
	h.dispatch.EXPECT().SendWithDetails(gomock.Any(), gomock.Any()).Return(&service.SendDetails{
		Success:         true,
		MessageID:       "mid-1",
		ProviderName:    "Mobishastra Kuwait",
		SenderName:      "Main",
		SenderValue:     "ACME",
		Recipient:       "96594400999",
		ExecutionTimeMs: 120,
	}, nil)

	rec := h.do(t, http.MethodPost, "/api/v1/messages/detailed",
		handler.SendMessageRequest{To: "96594400999", Message: "hello"})

	require.Equal(t, http.StatusOK, rec.Code)

	var details service.SendDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
	assert.True(t, details.Success)
	assert.Equal(t, "mid-1", details.MessageID)
	assert.Equal(t, "Mobishastra Kuwait", details.ProviderName)
}

func TestGetMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHandlerHarness(ctrl)
	h.dispatch.EXPECT().GetMessages(2, 10).Return(&service.MessageListResult{
		Data: []*models.DeliveryLog{{ID: 11, Recipient: "96594400999", Status: models.DeliveryStatusSent}},
		Pagination: service.Pagination{
			CurrentPage:  2,
			TotalPages:   3,
			TotalItems:   25,
			ItemsPerPage: 10,
		},
	}, nil)

	rec := h.do(t, http.MethodGet, "/api/v1/messages?page=2&limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result service.MessageListResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Data, 1)
	assert.Equal(t, 25, result.Pagination.TotalItems)
}

func TestGetMessages_DefaultsBadParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHandlerHarness(ctrl)
	// page=0 and limit=9999 fall back to defaults.
	h.dispatch.EXPECT().GetMessages(1, 20).Return(&service.MessageListResult{}, nil)

	rec := h.do(t, http.MethodGet, "/api/v1/messages?page=0&limit=9999", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHandlerHarness(ctrl)
	h.providers.EXPECT().List().Return([]*models.Provider{
		{
			Handle:  "backup",
			Name:    "Backup",
			Origin:  models.OriginStore,
			Enabled: true,
			Settings: map[string]string{
				"user":         "acct",
				"password":     "s3cret-primary",
				"dev_password": "s3cret-dev",
			},
		},
	}, nil)

	rec := h.do(t, http.MethodGet, "/api/v1/providers", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.ProviderListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, models.OriginConfig, resp.Data[0].Origin)
	assert.Equal(t, models.OriginStore, resp.Data[1].Origin)

	// Gateway credentials stay out of the listing body.
	body := rec.Body.String()
	assert.NotContains(t, body, "settings")
	assert.NotContains(t, body, "s3cret-primary")
	assert.NotContains(t, body, "s3cret-dev")
}

func TestGetSenders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHandlerHarness(ctrl)
	h.senders.EXPECT().List().Return(nil, nil)

	rec := h.do(t, http.MethodGet, "/api/v1/senders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.SenderListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "main", resp.Data[0].Handle)
}

func TestStartScheduler(t *testing.T) {
	tests := []struct {
		name           string
		startErr       error
		expectedStatus int
		expectedError  string
	}{
		{name: "success", expectedStatus: http.StatusOK},
		{
			name:           "already running",
			startErr:       scheduler.ErrSchedulerAlreadyRunning,
			expectedStatus: http.StatusConflict,
			expectedError:  "SCHEDULER_ALREADY_RUNNING",
		},
		{
			name:           "internal error",
			startErr:       errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := newHandlerHarness(ctrl)
			h.scheduler.EXPECT().Start().Return(tt.startErr)

			rec := h.do(t, http.MethodPost, "/api/v1/scheduler/start", nil)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedError != "" {
				var resp handler.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp handler.SchedulerResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "started", resp.Status)
			}
		})
	}
}

func TestStopScheduler_NotRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHandlerHarness(ctrl)
	h.scheduler.EXPECT().Stop().Return(scheduler.ErrSchedulerNotRunning)

	rec := h.do(t, http.MethodPost, "/api/v1/scheduler/stop", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name           string
		health         *service.HealthStatus
		expectedStatus int
	}{
		{
			name: "healthy",
			health: &service.HealthStatus{
				Status:          service.HealthStatusHealthy,
				SchedulerStatus: service.SchedulerStatusRunning,
				DatabaseStatus:  service.ComponentConnected,
				RedisStatus:     service.ComponentConnected,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "degraded still serves",
			health: &service.HealthStatus{
				Status:         service.HealthStatusDegraded,
				DatabaseStatus: service.ComponentConnected,
				RedisStatus:    service.ComponentDisconnected,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unhealthy",
			health: &service.HealthStatus{
				Status:         service.HealthStatusUnhealthy,
				DatabaseStatus: service.ComponentDisconnected,
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := newHandlerHarness(ctrl)
			h.health.EXPECT().GetHealth().Return(tt.health)

			rec := h.do(t, http.MethodGet, "/health", nil)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp handler.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.health.Status, resp.Status)
		})
	}
}
