package models

import "github.com/google/uuid"

// SendOutcome is the terminal state of a single-customer send.
type SendOutcome string

const (
	OutcomeSent        SendOutcome = "sent"
	OutcomeFailed      SendOutcome = "failed"
	OutcomeAlreadySent SendOutcome = "already_sent"
	OutcomeSkipped     SendOutcome = "skipped"
)

// CustomerSendResult is the per-customer outcome detail returned by the
// manual endpoints and embedded in batch reports.
type CustomerSendResult struct {
	CustomerID   uuid.UUID   `json:"customer_id"`
	CustomerName string      `json:"customer_name"`
	Outcome      SendOutcome `json:"outcome"`
	Reason       string      `json:"reason,omitempty"`
}

// TenantReport aggregates one tenant's batch run.
type TenantReport struct {
	TenantID    uuid.UUID            `json:"tenant_id"`
	Sent        int                  `json:"sent"`
	Failed      int                  `json:"failed"`
	AlreadySent int                  `json:"already_sent"`
	Skipped     int                  `json:"skipped"`
	Errors      []string             `json:"errors,omitempty"`
	Results     []CustomerSendResult `json:"results,omitempty"`
}

// AutomationReport is the summary returned by the automation trigger.
type AutomationReport struct {
	ReferenceDate    string         `json:"reference_date"`
	TenantsProcessed int            `json:"tenants_processed"`
	TotalSent        int            `json:"total_sent"`
	TotalFailed      int            `json:"total_failed"`
	Errors           []string       `json:"errors,omitempty"`
	Tenants          []TenantReport `json:"tenants,omitempty"`
}
