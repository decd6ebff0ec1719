// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/khairulanwar/birthday-engine/internal/middleware"
	"github.com/khairulanwar/birthday-engine/internal/models"
	"github.com/khairulanwar/birthday-engine/internal/scheduler"
	"github.com/khairulanwar/birthday-engine/internal/service"
)

const (
	errorCodeSchedulerAlreadyRunning = "SCHEDULER_ALREADY_RUNNING"
	errorCodeSchedulerNotRunning     = "SCHEDULER_NOT_RUNNING"
	errorCodeInvalidRequest          = "INVALID_REQUEST"
	errorCodeNoActiveConnection      = "NO_ACTIVE_CONNECTION"
	errorCodeCustomerNotFound        = "CUSTOMER_NOT_FOUND"
)

const (
	errorMessageSchedulerAlreadyRunning  = "Scheduler is already running"
	errorMessageSchedulerNotRunning      = "Scheduler is not running"
	errorMessageFailedToStartScheduler   = "Failed to start scheduler"
	errorMessageFailedToStopScheduler    = "Failed to stop scheduler"
	errorMessageFailedToRetrieveMessages = "Failed to retrieve birthday messages"
	errorMessageAutomationRunFailed      = "Birthday automation run failed"
	errorMessageSendFailed               = "Failed to send birthday message"
	errorMessageInvalidBody              = "Invalid request body"
	errorMessageNoCustomerIDs            = "customer_ids must not be empty"
	errorMessageNoActiveConnection       = "No active gateway connection for this tenant"
	errorMessageCustomerNotFound         = "Customer not found"
)

const (
	schedulerMessageStarted = "Scheduler started successfully"
	schedulerMessageStopped = "Scheduler stopped successfully"
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

// RunBirthdayAutomation triggers a full automation run. The default is the
// gated hourly check; mode=daily forces every matched tenant regardless of
// its configured send time.
func (h *Handler) RunBirthdayAutomation(w http.ResponseWriter, r *http.Request) {
	var (
		report *models.AutomationReport
		err    error
	)

	if r.URL.Query().Get("mode") == "daily" {
		report, err = h.service.Automation.RunDaily(r.Context())
	} else {
		report, err = h.service.Automation.RunHourlyCheck(r.Context())
	}
	if err != nil {
		h.logger.Error("Birthday automation run failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageAutomationRunFailed)
		return
	}

	render.JSON(w, r, report)
}

// SendBirthdayMessage sends one birthday message for the authenticated
// tenant's customer, regardless of whether today is the birthday.
func (h *Handler) SendBirthdayMessage(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	var req models.SendBirthdayRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}

	result, err := h.service.Automation.SendToCustomer(r.Context(), tenantID, req.CustomerID)
	if err != nil {
		h.sendSendError(w, r, err)
		return
	}

	render.JSON(w, r, result)
}

// SendBirthdayMessagesBulk sends to an explicit list of the tenant's
// customers, sequentially, and reports the per-customer breakdown.
func (h *Handler) SendBirthdayMessagesBulk(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	var req models.SendBirthdayBulkRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}
	if len(req.CustomerIDs) == 0 {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, errorMessageNoCustomerIDs)
		return
	}

	report, err := h.service.Automation.SendToCustomers(r.Context(), tenantID, req.CustomerIDs)
	if err != nil {
		h.sendSendError(w, r, err)
		return
	}

	render.JSON(w, r, report)
}

// GetMessages lists the authenticated tenant's birthday message history.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := queryInt(r, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	result, err := h.service.Automation.ListMessages(r.Context(), tenantID, page, limit)
	if err != nil {
		h.logger.Error("Failed to list birthday messages",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToRetrieveMessages)
		return
	}

	render.JSON(w, r, result)
}

// StartScheduler starts the recurring automation trigger.
func (h *Handler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	err := h.service.Scheduler.Start()
	if err != nil {
		if errors.Is(err, scheduler.ErrSchedulerAlreadyRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerAlreadyRunning, errorMessageSchedulerAlreadyRunning)
			return
		}

		h.logger.Error("Failed to start scheduler",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStartScheduler)
		return
	}

	render.JSON(w, r, models.SchedulerResponse{
		Status:  models.SchedulerStatusStarted,
		Message: schedulerMessageStarted,
	})
}

// StopScheduler stops the recurring automation trigger.
func (h *Handler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	err := h.service.Scheduler.Stop()
	if err != nil {
		if errors.Is(err, scheduler.ErrSchedulerNotRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerNotRunning, errorMessageSchedulerNotRunning)
			return
		}

		h.logger.Error("Failed to stop scheduler",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStopScheduler)
		return
	}

	render.JSON(w, r, models.SchedulerResponse{
		Status:  models.SchedulerStatusStopped,
		Message: schedulerMessageStopped,
	})
}

// HealthCheck reports component status. An open circuit breaker degrades
// the response but keeps it 200 so monitoring can still reach it.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := models.HealthResponse{
		Status:               health.Status,
		SchedulerStatus:      health.SchedulerStatus,
		DatabaseStatus:       health.DatabaseStatus,
		RedisStatus:          health.RedisStatus,
		CircuitBreakerStatus: health.CircuitBreakerStatus,
		CircuitBreakerState:  string(health.CircuitBreakerState),
		Timestamp:            time.Now(),
	}

	if health.Status == service.HealthStatusUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

// sendSendError maps manual-send service errors to HTTP responses.
func (h *Handler) sendSendError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNoActiveConnection):
		h.sendError(w, r, http.StatusNotFound, errorCodeNoActiveConnection, errorMessageNoActiveConnection)
	case errors.Is(err, service.ErrCustomerNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeCustomerNotFound, errorMessageCustomerNotFound)
	case errors.Is(err, service.ErrNoCustomers):
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, errorMessageNoCustomerIDs)
	default:
		h.logger.Error("Failed to send birthday message",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageSendFailed)
	}
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, models.ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: time.Now(),
	})
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
