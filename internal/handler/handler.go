// Package handler provides HTTP request handlers for the application.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/teleline/smsgate/internal/middleware"
	"github.com/teleline/smsgate/internal/scheduler"
	"github.com/teleline/smsgate/internal/service"
)

const (
	errorCodeValidation              = "VALIDATION_ERROR"
	errorCodeInvalidPhone            = "INVALID_PHONE_NUMBER"
	errorCodeProviderNotConfigured   = "PROVIDER_NOT_CONFIGURED"
	errorCodeProviderDisabled        = "PROVIDER_DISABLED"
	errorCodeSenderNotConfigured     = "SENDER_NOT_CONFIGURED"
	errorCodeSenderDisabled          = "SENDER_DISABLED"
	errorCodeUnknownProviderType     = "UNKNOWN_PROVIDER_TYPE"
	errorCodeSchedulerAlreadyRunning = "SCHEDULER_ALREADY_RUNNING"
	errorCodeSchedulerNotRunning     = "SCHEDULER_NOT_RUNNING"
)

const (
	maxPageLimit     = 100
	defaultPageLimit = 20
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Routes registers all API routes on the given router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/messages", h.SendMessage)
		r.Post("/messages/detailed", h.SendMessageDetailed)
		r.Get("/messages", h.GetMessages)

		r.Get("/providers", h.GetProviders)
		r.Get("/senders", h.GetSenders)

		r.Post("/scheduler/start", h.StartScheduler)
		r.Post("/scheduler/stop", h.StopScheduler)
	})
}

// SendMessage dispatches one message and reports only the outcome.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeSendRequest(w, r)
	if !ok {
		return
	}

	success, err := h.service.Dispatch.Send(r.Context(), input)
	if err != nil {
		h.sendDispatchError(w, r, err)
		return
	}

	render.JSON(w, r, SendMessageResponse{Success: success})
}

// SendMessageDetailed dispatches one message and reports resolved names,
// gateway response and timing.
func (h *Handler) SendMessageDetailed(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeSendRequest(w, r)
	if !ok {
		return
	}

	details, err := h.service.Dispatch.SendWithDetails(r.Context(), input)
	if err != nil {
		h.sendDispatchError(w, r, err)
		return
	}

	render.JSON(w, r, details)
}

// GetMessages returns a page of delivery log entries.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := defaultPageLimit

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v >= 1 && v <= maxPageLimit {
		limit = v
	}

	result, err := h.service.Dispatch.GetMessages(page, limit)
	if err != nil {
		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error("Failed to get delivery logs",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to retrieve messages")
		return
	}

	render.JSON(w, r, result)
}

// GetProviders lists all resolvable providers, config and store origin.
func (h *Handler) GetProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.service.Resolver.FindAllProviders()
	if err != nil {
		h.logger.Error("Failed to list providers", zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to retrieve providers")
		return
	}

	render.JSON(w, r, ProviderListResponse{Data: newProviderSummaries(providers)})
}

// GetSenders lists all resolvable sender identities.
func (h *Handler) GetSenders(w http.ResponseWriter, r *http.Request) {
	senders, err := h.service.Resolver.FindAllSenders()
	if err != nil {
		h.logger.Error("Failed to list senders", zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to retrieve senders")
		return
	}

	render.JSON(w, r, SenderListResponse{Data: senders})
}

// StartScheduler starts the retention scheduler.
func (h *Handler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Scheduler.Start(); err != nil {
		if errors.Is(err, scheduler.ErrSchedulerAlreadyRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerAlreadyRunning, "Scheduler is already running")
			return
		}

		h.logger.Error("Failed to start scheduler",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to start scheduler")
		return
	}

	render.JSON(w, r, SchedulerResponse{Status: "started", Message: "Scheduler started successfully"})
}

// StopScheduler stops the retention scheduler.
func (h *Handler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Scheduler.Stop(); err != nil {
		if errors.Is(err, scheduler.ErrSchedulerNotRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerNotRunning, "Scheduler is not running")
			return
		}

		h.logger.Error("Failed to stop scheduler",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to stop scheduler")
		return
	}

	render.JSON(w, r, SchedulerResponse{Status: "stopped", Message: "Scheduler stopped successfully"})
}

// HealthCheck reports component health. Unhealthy maps to 503; degraded
// stays 200 so monitoring sees the state while the service keeps serving.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	if health.Status == service.HealthStatusUnhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, HealthResponse{
		Status:          health.Status,
		SchedulerStatus: health.SchedulerStatus,
		DatabaseStatus:  health.DatabaseStatus,
		RedisStatus:     health.RedisStatus,
		Timestamp:       time.Now(),
	})
}

func (h *Handler) decodeSendRequest(w http.ResponseWriter, r *http.Request) (service.SendInput, bool) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Invalid request body")
		return service.SendInput{}, false
	}

	if req.To == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Field 'to' is required")
		return service.SendInput{}, false
	}
	if req.Message == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Field 'message' is required")
		return service.SendInput{}, false
	}

	return service.SendInput{
		To:              req.To,
		Message:         req.Message,
		Language:        req.Language,
		ProviderHandle:  req.Provider,
		SenderHandle:    req.Sender,
		SourcePlugin:    req.SourcePlugin,
		SourceReference: req.SourceReference,
	}, true
}

// sendDispatchError maps the dispatch error taxonomy onto status codes.
// Unexpected errors are logged and hidden behind a generic 500.
func (h *Handler) sendDispatchError(w http.ResponseWriter, r *http.Request, err error) {
	var phoneErr *service.PhoneValidationError
	if errors.As(err, &phoneErr) {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidPhone, phoneErr.Error())
		return
	}

	switch {
	case errors.Is(err, service.ErrProviderNotConfigured):
		h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeProviderNotConfigured, err.Error())
	case errors.Is(err, service.ErrProviderDisabled):
		h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeProviderDisabled, err.Error())
	case errors.Is(err, service.ErrSenderNotConfigured):
		h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeSenderNotConfigured, err.Error())
	case errors.Is(err, service.ErrSenderDisabled):
		h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeSenderDisabled, err.Error())
	case errors.Is(err, service.ErrUnknownProviderType):
		h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeUnknownProviderType, err.Error())
	default:
		h.logger.Error("Message dispatch failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to send message")
	}
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: time.Now(),
	})
}
