package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khairulanwar/birthday-engine/internal/birthday"
	"github.com/khairulanwar/birthday-engine/internal/config"
	"github.com/khairulanwar/birthday-engine/internal/models"
	"github.com/khairulanwar/birthday-engine/internal/repository"
)

type automationService struct {
	cfg      *config.Config
	repo     repository.Repository
	sender   SenderService
	wait     WaitPolicy
	logger   *zap.Logger
	location *time.Location
	now      func() time.Time
}

func NewAutomationService(
	cfg *config.Config,
	repo repository.Repository,
	sender SenderService,
	wait WaitPolicy,
	logger *zap.Logger,
) AutomationService {
	location, err := time.LoadLocation(cfg.Automation.Timezone)
	if err != nil {
		logger.Warn("Invalid automation timezone, falling back to UTC",
			zap.String("timezone", cfg.Automation.Timezone),
			zap.Error(err))
		location = time.UTC
	}

	return &automationService{
		cfg:      cfg,
		repo:     repo,
		sender:   sender,
		wait:     wait,
		logger:   logger,
		location: location,
		now:      time.Now,
	}
}

func (s *automationService) RunDaily(ctx context.Context) (*models.AutomationReport, error) {
	return s.run(ctx, false)
}

func (s *automationService) RunHourlyCheck(ctx context.Context) (*models.AutomationReport, error) {
	return s.run(ctx, true)
}

// run fans out over every tenant with a matching customer. The reference
// date is computed once, in the canonical timezone, for the whole run.
// One tenant's failure never aborts the others.
func (s *automationService) run(ctx context.Context, gated bool) (*models.AutomationReport, error) {
	ref := s.now().In(s.location)
	report := &models.AutomationReport{
		ReferenceDate: ref.Format("2006-01-02"),
	}

	candidates, err := s.repo.Customer().GetBirthdayCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load birthday candidates: %w", err)
	}

	byTenant := make(map[uuid.UUID][]*models.Customer)
	for _, c := range candidates {
		if birthday.Matches(c.BirthDate.Time, ref) {
			byTenant[c.TenantID] = append(byTenant[c.TenantID], c)
		}
	}

	s.logger.Info("Birthday automation run starting",
		zap.String("reference_date", report.ReferenceDate),
		zap.Bool("gated", gated),
		zap.Int("tenants", len(byTenant)))

	for tenantID, customers := range byTenant {
		tenantReport, err := s.runTenant(ctx, tenantID, customers, ref, gated)
		if err != nil {
			s.appendError(report, fmt.Sprintf("tenant %s: %v", tenantID, err))
			continue
		}
		if tenantReport == nil {
			// Gated out: auto-send disabled or outside the send window.
			continue
		}

		report.TenantsProcessed++
		report.TotalSent += tenantReport.Sent
		report.TotalFailed += tenantReport.Failed
		for _, e := range tenantReport.Errors {
			s.appendError(report, fmt.Sprintf("tenant %s: %s", tenantID, e))
		}
		report.Tenants = append(report.Tenants, *tenantReport)
	}

	s.logger.Info("Birthday automation run finished",
		zap.Int("tenants_processed", report.TenantsProcessed),
		zap.Int("total_sent", report.TotalSent),
		zap.Int("total_failed", report.TotalFailed),
		zap.Int("errors", len(report.Errors)))

	return report, nil
}

// runTenant processes one tenant's matched customers strictly sequentially
// with the configured inter-message delay.
func (s *automationService) runTenant(ctx context.Context, tenantID uuid.UUID, customers []*models.Customer, ref time.Time, gated bool) (*models.TenantReport, error) {
	conn, err := s.repo.Connection().GetActive(ctx, tenantID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoActiveConnection
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load gateway connection: %w", err)
	}

	settings, err := s.repo.Settings().Get(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load message settings: %w", err)
	}

	if gated {
		if !settings.AutoSendEnabled {
			return nil, nil
		}
		if !s.sendTimeDue(settings) {
			return nil, nil
		}
	}

	tenantReport := &models.TenantReport{TenantID: tenantID}
	for i, c := range customers {
		result := s.sender.SendBirthdayMessage(ctx, SendInput{
			Customer:   c,
			Connection: conn,
			Settings:   settings,
			Ref:        ref,
		})
		s.tally(tenantReport, c, result)

		if i < len(customers)-1 {
			if err := s.wait.Wait(ctx, s.cfg.Scheduler.SendDelay()); err != nil {
				tenantReport.Errors = append(tenantReport.Errors, fmt.Sprintf("batch interrupted: %v", err))
				break
			}
		}
	}

	return tenantReport, nil
}

func (s *automationService) tally(tr *models.TenantReport, c *models.Customer, result *models.CustomerSendResult) {
	switch result.Outcome {
	case models.OutcomeSent:
		tr.Sent++
	case models.OutcomeFailed:
		tr.Failed++
		tr.Errors = append(tr.Errors, fmt.Sprintf("customer %s: %s", c.Name, result.Reason))
	case models.OutcomeAlreadySent:
		tr.AlreadySent++
	case models.OutcomeSkipped:
		tr.Skipped++
	}
	tr.Results = append(tr.Results, *result)
}

// sendTimeDue reports whether the tenant's configured send time matches
// the current minute in the tenant's timezone, with a one-minute tolerance
// to absorb scheduler jitter.
func (s *automationService) sendTimeDue(settings *models.MessageSettings) bool {
	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		s.logger.Warn("Invalid tenant timezone, using canonical",
			zap.String("tenant_id", settings.TenantID.String()),
			zap.String("timezone", settings.Timezone))
		loc = s.location
	}

	configured, err := time.Parse("15:04", settings.SendTime)
	if err != nil {
		s.logger.Warn("Invalid tenant send time, using default",
			zap.String("tenant_id", settings.TenantID.String()),
			zap.String("send_time", settings.SendTime))
		configured, _ = time.Parse("15:04", models.DefaultSendTime)
	}

	local := s.now().In(loc)
	diff := (local.Hour()*60 + local.Minute()) - (configured.Hour()*60 + configured.Minute())
	return diff == 0 || diff == 1
}

func (s *automationService) appendError(report *models.AutomationReport, msg string) {
	maxErrors := s.cfg.Scheduler.MaxErrors
	if maxErrors > 0 && len(report.Errors) >= maxErrors {
		if report.Errors[len(report.Errors)-1] != "further errors truncated" {
			report.Errors = append(report.Errors, "further errors truncated")
		}
		return
	}
	report.Errors = append(report.Errors, msg)
}

// SendToCustomer is the manual single-customer path. The reference date is
// the tenant's local civil day, not the canonical automation timezone.
func (s *automationService) SendToCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*models.CustomerSendResult, error) {
	conn, settings, err := s.tenantSendContext(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	customer, err := s.repo.Customer().GetByID(ctx, tenantID, customerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	return s.sender.SendBirthdayMessage(ctx, SendInput{
		Customer:   customer,
		Connection: conn,
		Settings:   settings,
		Ref:        s.tenantRef(settings),
	}), nil
}

// SendToCustomers is the manual bulk path: an explicit customer list,
// processed sequentially with the same delay as the automated batch.
func (s *automationService) SendToCustomers(ctx context.Context, tenantID uuid.UUID, customerIDs []uuid.UUID) (*models.TenantReport, error) {
	conn, settings, err := s.tenantSendContext(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	customers, err := s.repo.Customer().GetByIDs(ctx, tenantID, customerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	if len(customers) == 0 {
		return nil, ErrNoCustomers
	}

	ref := s.tenantRef(settings)
	tenantReport := &models.TenantReport{TenantID: tenantID}
	for i, c := range customers {
		result := s.sender.SendBirthdayMessage(ctx, SendInput{
			Customer:   c,
			Connection: conn,
			Settings:   settings,
			Ref:        ref,
		})
		s.tally(tenantReport, c, result)

		if i < len(customers)-1 {
			if err := s.wait.Wait(ctx, s.cfg.Scheduler.SendDelay()); err != nil {
				tenantReport.Errors = append(tenantReport.Errors, fmt.Sprintf("batch interrupted: %v", err))
				break
			}
		}
	}

	return tenantReport, nil
}

func (s *automationService) tenantSendContext(ctx context.Context, tenantID uuid.UUID) (*models.GatewayConnection, *models.MessageSettings, error) {
	conn, err := s.repo.Connection().GetActive(ctx, tenantID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, ErrNoActiveConnection
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load gateway connection: %w", err)
	}

	settings, err := s.repo.Settings().Get(ctx, tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load message settings: %w", err)
	}

	return conn, settings, nil
}

func (s *automationService) tenantRef(settings *models.MessageSettings) time.Time {
	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		loc = s.location
	}
	return s.now().In(loc)
}

// ListMessages pages through a tenant's birthday message history.
func (s *automationService) ListMessages(ctx context.Context, tenantID uuid.UUID, page, limit int) (*models.MessageListResponse, error) {
	offset := (page - 1) * limit

	messages, err := s.repo.BirthdayMessage().ListByTenant(ctx, tenantID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list birthday messages: %w", err)
	}

	totalCount, err := s.repo.BirthdayMessage().CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count birthday messages: %w", err)
	}

	totalPages := int(totalCount) / limit
	if int(totalCount)%limit > 0 {
		totalPages++
	}

	response := &models.MessageListResponse{
		Messages: make([]models.BirthdayMessage, 0, len(messages)),
		Pagination: models.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   int(totalCount),
			ItemsPerPage: limit,
		},
	}
	for _, msg := range messages {
		response.Messages = append(response.Messages, *msg)
	}

	return response, nil
}
