package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/khairulanwar/birthday-engine/internal/config"
	"github.com/khairulanwar/birthday-engine/internal/models"
)

// Credentials identify the sending tenant device at the gateway.
type Credentials struct {
	APIKey string
	Sender string
}

// Result classifies one dispatch attempt. Sent is true only when the
// gateway accepted the message: HTTP success and no explicit status=false
// in the body. Reason carries the gateway's own error description for
// failed attempts.
type Result struct {
	Sent   bool
	Reason string
}

// Client sends one message per call to the external gateway. A non-nil
// error means the gateway could not be reached at all (or the breaker is
// open); a reachable gateway refusing a message comes back as a Result
// with Sent=false. Persistence and counters are the caller's concern.
type Client interface {
	Send(ctx context.Context, creds Credentials, to, message string) (*Result, error)
	BreakerState() (state BreakerState, requests, failures uint32)
}

type client struct {
	cfg        *config.GatewayConfig
	httpClient *http.Client
	logger     *zap.Logger
	breaker    *CircuitBreaker
}

func NewClient(cfg *config.GatewayConfig, logger *zap.Logger) Client {
	return &client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger:  logger,
		breaker: NewCircuitBreaker(&cfg.CircuitBreaker, logger),
	}
}

func (c *client) Send(ctx context.Context, creds Credentials, to, message string) (*Result, error) {
	return c.breaker.Do(ctx, func() (*Result, error) {
		reqBody := models.GatewaySendRequest{
			APIKey:  creds.APIKey,
			Sender:  creds.Sender,
			Number:  to,
			Message: message,
		}

		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewBuffer(jsonData))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				c.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		var gwResp models.GatewaySendResponse
		decodeErr := json.NewDecoder(resp.Body).Decode(&gwResp)

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			reason := gwResp.Reason()
			if reason == "" {
				reason = fmt.Sprintf("gateway returned status %d", resp.StatusCode)
			}
			return &Result{Sent: false, Reason: reason}, nil
		}

		// The gateway can answer 200 with an empty or non-JSON body;
		// absence of an explicit status=false still counts as sent.
		if decodeErr != nil {
			c.logger.Warn("Failed to decode gateway response, treating as sent",
				zap.Error(decodeErr))
			return &Result{Sent: true}, nil
		}

		if gwResp.Status != nil && !*gwResp.Status {
			reason := gwResp.Reason()
			if reason == "" {
				reason = "gateway rejected message"
			}
			return &Result{Sent: false, Reason: reason}, nil
		}

		return &Result{Sent: true}, nil
	})
}

func (c *client) BreakerState() (BreakerState, uint32, uint32) {
	requests, failures := c.breaker.Counts()
	return c.breaker.State(), requests, failures
}
