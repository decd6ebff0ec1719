package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/khairulanwar/birthday-engine/internal/birthday"
	"github.com/khairulanwar/birthday-engine/internal/config"
	"github.com/khairulanwar/birthday-engine/internal/gateway"
	"github.com/khairulanwar/birthday-engine/internal/models"
	"github.com/khairulanwar/birthday-engine/internal/repository"
)

const alreadySentReason = "already sent this year"

type senderService struct {
	cfg         *config.Config
	repo        repository.Repository
	gateway     gateway.Client
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewSenderService(
	cfg *config.Config,
	repo repository.Repository,
	gatewayClient gateway.Client,
	redisClient *redis.Client,
	logger *zap.Logger,
) SenderService {
	return &senderService{
		cfg:         cfg,
		repo:        repo,
		gateway:     gatewayClient,
		redisClient: redisClient,
		logger:      logger,
	}
}

// SendBirthdayMessage runs one customer through the send state machine:
// skipped (no phone) and already-sent are terminal before any dispatch;
// otherwise the message is rendered, dispatched, and recorded as sent or
// failed. The duplicate check runs before dispatch so a repeat attempt in
// the same year never reaches the gateway.
func (s *senderService) SendBirthdayMessage(ctx context.Context, in SendInput) *models.CustomerSendResult {
	c := in.Customer
	result := &models.CustomerSendResult{
		CustomerID:   c.ID,
		CustomerName: c.Name,
	}

	if !c.HasUsablePhone() {
		result.Outcome = models.OutcomeSkipped
		result.Reason = "no usable phone number"
		return result
	}
	if !c.BirthDate.Valid {
		result.Outcome = models.OutcomeSkipped
		result.Reason = "no birth date on record"
		return result
	}

	birthdayDate := birthday.DateFor(c.BirthDate.Time, in.Ref)
	year := in.Ref.Year()
	cacheKey := s.dedupeCacheKey(c, year)

	// Redis fast path. The database unique constraint stays authoritative;
	// a cache miss or Redis outage just falls through to the lookup.
	if n, err := s.redisClient.Exists(ctx, cacheKey).Result(); err == nil && n > 0 {
		result.Outcome = models.OutcomeAlreadySent
		result.Reason = alreadySentReason
		return result
	}

	existing, err := s.repo.BirthdayMessage().Find(ctx, c.TenantID, c.ID, birthdayDate, year)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("Failed to check for existing birthday message",
			zap.String("tenant_id", c.TenantID.String()),
			zap.String("customer_id", c.ID.String()),
			zap.Error(err))
		result.Outcome = models.OutcomeFailed
		result.Reason = fmt.Sprintf("duplicate check failed: %v", err)
		return result
	}
	if existing != nil {
		s.cacheDedupeKey(ctx, cacheKey)
		result.Outcome = models.OutcomeAlreadySent
		result.Reason = alreadySentReason
		return result
	}

	content := birthday.RenderTemplate(in.Settings.Template, c)
	to := birthday.NormalizePhone(c.Phone.String, s.cfg.Gateway.CountryCode)

	record := &models.BirthdayMessage{
		TenantID:     c.TenantID,
		CustomerID:   c.ID,
		ConnectionID: in.Connection.ID,
		PhoneNumber:  to,
		Content:      content,
		BirthdayDate: birthdayDate,
		Year:         year,
	}

	creds := gateway.Credentials{
		APIKey: in.Connection.APIKey,
		Sender: in.Connection.SenderID,
	}

	dispatch, err := s.gateway.Send(ctx, creds, to, content)
	if err != nil {
		return s.recordFailure(ctx, record, cacheKey, err.Error(), result)
	}
	if !dispatch.Sent {
		return s.recordFailure(ctx, record, cacheKey, dispatch.Reason, result)
	}

	record.Status = models.MessageStatusSent
	if err := s.repo.BirthdayMessage().Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicateMessage) {
			// A concurrent run won the insert; its record stands.
			result.Outcome = models.OutcomeAlreadySent
			result.Reason = alreadySentReason
			return result
		}
		// The message went out; losing the record is logged, not fatal.
		s.logger.Error("Failed to persist sent birthday message",
			zap.String("tenant_id", c.TenantID.String()),
			zap.String("customer_id", c.ID.String()),
			zap.Error(err))
	} else if err := s.repo.Connection().IncrementMessagesSent(ctx, in.Connection.ID); err != nil {
		s.logger.Warn("Failed to increment connection counter",
			zap.String("connection_id", in.Connection.ID.String()),
			zap.Error(err))
	}

	s.cacheDedupeKey(ctx, cacheKey)

	s.logger.Info("Birthday message sent",
		zap.String("tenant_id", c.TenantID.String()),
		zap.String("customer_id", c.ID.String()),
		zap.String("phone_number", to))

	result.Outcome = models.OutcomeSent
	return result
}

// recordFailure persists a failed attempt best-effort and resolves the
// state machine to Failed. A duplicate insert means another run already
// recorded this birthday, which wins.
func (s *senderService) recordFailure(ctx context.Context, record *models.BirthdayMessage, cacheKey, reason string, result *models.CustomerSendResult) *models.CustomerSendResult {
	record.Status = models.MessageStatusFailed
	record.Error = nullString(reason)

	if err := s.repo.BirthdayMessage().Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicateMessage) {
			result.Outcome = models.OutcomeAlreadySent
			result.Reason = alreadySentReason
			return result
		}
		s.logger.Error("Failed to persist failed birthday message",
			zap.String("tenant_id", record.TenantID.String()),
			zap.String("customer_id", record.CustomerID.String()),
			zap.Error(err))
	} else {
		s.cacheDedupeKey(ctx, cacheKey)
	}

	s.logger.Warn("Birthday message failed",
		zap.String("tenant_id", record.TenantID.String()),
		zap.String("customer_id", record.CustomerID.String()),
		zap.String("reason", reason))

	result.Outcome = models.OutcomeFailed
	result.Reason = reason
	return result
}

func (s *senderService) dedupeCacheKey(c *models.Customer, year int) string {
	return fmt.Sprintf("bday:%s:%s:%d", c.TenantID, c.ID, year)
}

func (s *senderService) cacheDedupeKey(ctx context.Context, key string) {
	if err := s.redisClient.Set(ctx, key, time.Now().Format(time.RFC3339), 48*time.Hour).Err(); err != nil {
		s.logger.Warn("Failed to cache dedupe key in Redis",
			zap.String("key", key),
			zap.Error(err))
	}
}
