package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/khairulanwar/birthday-engine/internal/config"
	"github.com/khairulanwar/birthday-engine/internal/models"
	"github.com/khairulanwar/birthday-engine/internal/repository"
	"github.com/khairulanwar/birthday-engine/internal/repository/mocks"
	"github.com/khairulanwar/birthday-engine/internal/service"
	servicemocks "github.com/khairulanwar/birthday-engine/internal/service/mocks"
)

// nopWait removes the inter-message delay so batch behavior can be
// asserted without wall-clock sleeps.
type nopWait struct{}

func (nopWait) Wait(context.Context, time.Duration) error { return nil }

// countingWait records how many delays the batch runner requested.
type countingWait struct {
	calls int
}

func (w *countingWait) Wait(context.Context, time.Duration) error {
	w.calls++
	return nil
}

func automationConfig() *config.Config {
	cfg := testConfig("http://localhost:1")
	cfg.Automation.Timezone = "UTC"
	return cfg
}

// birthdayToday returns a customer whose birthday matches the current UTC
// date, so automation runs pick it up regardless of when the test runs.
func birthdayToday(tenantID uuid.UUID, name string) *models.Customer {
	now := time.Now().UTC()
	return &models.Customer{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Name:      name,
		Phone:     sql.NullString{String: "0123456789", Valid: true},
		BirthDate: sql.NullTime{Time: time.Date(1990, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), Valid: true},
	}
}

func sentResult(c *models.Customer) *models.CustomerSendResult {
	return &models.CustomerSendResult{
		CustomerID:   c.ID,
		CustomerName: c.Name,
		Outcome:      models.OutcomeSent,
	}
}

func TestAutomationService_RunDaily_TenantIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantA := uuid.New()
	tenantB := uuid.New()
	customerA := birthdayToday(tenantA, "Ali")
	customerB := birthdayToday(tenantB, "Siti")
	connB := testConnection(tenantB)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
	mockConnRepo := mocks.NewMockConnectionRepository(ctrl)
	mockSettingsRepo := mocks.NewMockSettingsRepository(ctrl)
	mockRepo.EXPECT().Customer().Return(mockCustomerRepo).AnyTimes()
	mockRepo.EXPECT().Connection().Return(mockConnRepo).AnyTimes()
	mockRepo.EXPECT().Settings().Return(mockSettingsRepo).AnyTimes()

	mockCustomerRepo.EXPECT().
		GetBirthdayCandidates(gomock.Any()).
		Return([]*models.Customer{customerA, customerB}, nil)

	// Tenant A has no connected device; tenant B sends normally.
	mockConnRepo.EXPECT().GetActive(gomock.Any(), tenantA).Return(nil, repository.ErrNotFound)
	mockConnRepo.EXPECT().GetActive(gomock.Any(), tenantB).Return(connB, nil)
	mockSettingsRepo.EXPECT().Get(gomock.Any(), tenantB).Return(models.DefaultMessageSettings(tenantB), nil)

	mockSender := servicemocks.NewMockSenderService(ctrl)
	mockSender.EXPECT().
		SendBirthdayMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in service.SendInput) *models.CustomerSendResult {
			assert.Equal(t, customerB.ID, in.Customer.ID)
			assert.Equal(t, connB.ID, in.Connection.ID)
			return sentResult(in.Customer)
		})

	automation := service.NewAutomationService(automationConfig(), mockRepo, mockSender, nopWait{}, zap.NewNop())

	report, err := automation.RunDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.TenantsProcessed, "a tenant without a connection is not processed")
	assert.Equal(t, 1, report.TotalSent)
	assert.Equal(t, 0, report.TotalFailed)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], tenantA.String())
	assert.Contains(t, report.Errors[0], "no active gateway connection")
	require.Len(t, report.Tenants, 1)
	assert.Equal(t, tenantB, report.Tenants[0].TenantID)
}

func TestAutomationService_RunDaily_NoMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
	mockRepo.EXPECT().Customer().Return(mockCustomerRepo).AnyTimes()

	// A candidate whose birthday is not today never reaches a tenant run.
	notToday := birthdayToday(uuid.New(), "Ravi")
	notToday.BirthDate.Time = notToday.BirthDate.Time.AddDate(0, 0, -35)

	mockCustomerRepo.EXPECT().
		GetBirthdayCandidates(gomock.Any()).
		Return([]*models.Customer{notToday}, nil)

	mockSender := servicemocks.NewMockSenderService(ctrl)

	automation := service.NewAutomationService(automationConfig(), mockRepo, mockSender, nopWait{}, zap.NewNop())

	report, err := automation.RunDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.TenantsProcessed)
	assert.Equal(t, 0, report.TotalSent)
	assert.Empty(t, report.Errors)
}

func TestAutomationService_RunHourlyCheck_Gating(t *testing.T) {
	dueNow := time.Now().UTC().Format("15:04")
	offHour := time.Now().UTC().Add(3 * time.Hour).Format("15:04")

	tests := []struct {
		name              string
		settings          func(tenantID uuid.UUID) *models.MessageSettings
		expectSend        bool
		expectedProcessed int
	}{
		{
			name: "send time due",
			settings: func(tenantID uuid.UUID) *models.MessageSettings {
				s := models.DefaultMessageSettings(tenantID)
				s.Timezone = "UTC"
				s.SendTime = dueNow
				return s
			},
			expectSend:        true,
			expectedProcessed: 1,
		},
		{
			name: "outside send window",
			settings: func(tenantID uuid.UUID) *models.MessageSettings {
				s := models.DefaultMessageSettings(tenantID)
				s.Timezone = "UTC"
				s.SendTime = offHour
				return s
			},
			expectSend:        false,
			expectedProcessed: 0,
		},
		{
			name: "auto send disabled",
			settings: func(tenantID uuid.UUID) *models.MessageSettings {
				s := models.DefaultMessageSettings(tenantID)
				s.Timezone = "UTC"
				s.SendTime = dueNow
				s.AutoSendEnabled = false
				return s
			},
			expectSend:        false,
			expectedProcessed: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tenantID := uuid.New()
			customer := birthdayToday(tenantID, "Mei Ling")
			conn := testConnection(tenantID)

			mockRepo := mocks.NewMockRepository(ctrl)
			mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
			mockConnRepo := mocks.NewMockConnectionRepository(ctrl)
			mockSettingsRepo := mocks.NewMockSettingsRepository(ctrl)
			mockRepo.EXPECT().Customer().Return(mockCustomerRepo).AnyTimes()
			mockRepo.EXPECT().Connection().Return(mockConnRepo).AnyTimes()
			mockRepo.EXPECT().Settings().Return(mockSettingsRepo).AnyTimes()

			mockCustomerRepo.EXPECT().
				GetBirthdayCandidates(gomock.Any()).
				Return([]*models.Customer{customer}, nil)
			mockConnRepo.EXPECT().GetActive(gomock.Any(), tenantID).Return(conn, nil)
			mockSettingsRepo.EXPECT().Get(gomock.Any(), tenantID).Return(tt.settings(tenantID), nil)

			mockSender := servicemocks.NewMockSenderService(ctrl)
			if tt.expectSend {
				mockSender.EXPECT().
					SendBirthdayMessage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in service.SendInput) *models.CustomerSendResult {
						return sentResult(in.Customer)
					})
			}

			automation := service.NewAutomationService(automationConfig(), mockRepo, mockSender, nopWait{}, zap.NewNop())

			report, err := automation.RunHourlyCheck(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expectedProcessed, report.TenantsProcessed)
			assert.Empty(t, report.Errors, "a gated-out tenant is skipped silently")
		})
	}
}

func TestAutomationService_RunDaily_DelayBetweenMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	customers := []*models.Customer{
		birthdayToday(tenantID, "Farah"),
		birthdayToday(tenantID, "Hafiz"),
		birthdayToday(tenantID, "Nurul"),
	}
	conn := testConnection(tenantID)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
	mockConnRepo := mocks.NewMockConnectionRepository(ctrl)
	mockSettingsRepo := mocks.NewMockSettingsRepository(ctrl)
	mockRepo.EXPECT().Customer().Return(mockCustomerRepo).AnyTimes()
	mockRepo.EXPECT().Connection().Return(mockConnRepo).AnyTimes()
	mockRepo.EXPECT().Settings().Return(mockSettingsRepo).AnyTimes()

	mockCustomerRepo.EXPECT().GetBirthdayCandidates(gomock.Any()).Return(customers, nil)
	mockConnRepo.EXPECT().GetActive(gomock.Any(), tenantID).Return(conn, nil)
	mockSettingsRepo.EXPECT().Get(gomock.Any(), tenantID).Return(models.DefaultMessageSettings(tenantID), nil)

	mockSender := servicemocks.NewMockSenderService(ctrl)
	mockSender.EXPECT().
		SendBirthdayMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in service.SendInput) *models.CustomerSendResult {
			return sentResult(in.Customer)
		}).
		Times(3)

	wait := &countingWait{}
	automation := service.NewAutomationService(automationConfig(), mockRepo, mockSender, wait, zap.NewNop())

	report, err := automation.RunDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalSent)
	assert.Equal(t, 2, wait.calls, "delay runs between messages, not after the last")
}

func TestAutomationService_SendToCustomer(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(tenantID, customerID uuid.UUID, repo *mocks.MockRepository, connRepo *mocks.MockConnectionRepository, settingsRepo *mocks.MockSettingsRepository, customerRepo *mocks.MockCustomerRepository, sender *servicemocks.MockSenderService)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(tenantID, customerID uuid.UUID, repo *mocks.MockRepository, connRepo *mocks.MockConnectionRepository, settingsRepo *mocks.MockSettingsRepository, customerRepo *mocks.MockCustomerRepository, sender *servicemocks.MockSenderService) {
				conn := testConnection(tenantID)
				customer := birthdayToday(tenantID, "Aminah")
				customer.ID = customerID
				connRepo.EXPECT().GetActive(gomock.Any(), tenantID).Return(conn, nil)
				settingsRepo.EXPECT().Get(gomock.Any(), tenantID).Return(models.DefaultMessageSettings(tenantID), nil)
				customerRepo.EXPECT().GetByID(gomock.Any(), tenantID, customerID).Return(customer, nil)
				sender.EXPECT().
					SendBirthdayMessage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in service.SendInput) *models.CustomerSendResult {
						return sentResult(in.Customer)
					})
			},
		},
		{
			name: "no active connection",
			setupMocks: func(tenantID, customerID uuid.UUID, repo *mocks.MockRepository, connRepo *mocks.MockConnectionRepository, settingsRepo *mocks.MockSettingsRepository, customerRepo *mocks.MockCustomerRepository, sender *servicemocks.MockSenderService) {
				connRepo.EXPECT().GetActive(gomock.Any(), tenantID).Return(nil, repository.ErrNotFound)
			},
			expectedErr: service.ErrNoActiveConnection,
		},
		{
			name: "customer not found",
			setupMocks: func(tenantID, customerID uuid.UUID, repo *mocks.MockRepository, connRepo *mocks.MockConnectionRepository, settingsRepo *mocks.MockSettingsRepository, customerRepo *mocks.MockCustomerRepository, sender *servicemocks.MockSenderService) {
				connRepo.EXPECT().GetActive(gomock.Any(), tenantID).Return(testConnection(tenantID), nil)
				settingsRepo.EXPECT().Get(gomock.Any(), tenantID).Return(models.DefaultMessageSettings(tenantID), nil)
				customerRepo.EXPECT().GetByID(gomock.Any(), tenantID, customerID).Return(nil, repository.ErrNotFound)
			},
			expectedErr: service.ErrCustomerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tenantID := uuid.New()
			customerID := uuid.New()

			mockRepo := mocks.NewMockRepository(ctrl)
			mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
			mockConnRepo := mocks.NewMockConnectionRepository(ctrl)
			mockSettingsRepo := mocks.NewMockSettingsRepository(ctrl)
			mockRepo.EXPECT().Customer().Return(mockCustomerRepo).AnyTimes()
			mockRepo.EXPECT().Connection().Return(mockConnRepo).AnyTimes()
			mockRepo.EXPECT().Settings().Return(mockSettingsRepo).AnyTimes()

			mockSender := servicemocks.NewMockSenderService(ctrl)
			tt.setupMocks(tenantID, customerID, mockRepo, mockConnRepo, mockSettingsRepo, mockCustomerRepo, mockSender)

			automation := service.NewAutomationService(automationConfig(), mockRepo, mockSender, nopWait{}, zap.NewNop())

			result, err := automation.SendToCustomer(context.Background(), tenantID, customerID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, models.OutcomeSent, result.Outcome)
			}
		})
	}
}

func TestAutomationService_SendToCustomers_NoCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
	mockConnRepo := mocks.NewMockConnectionRepository(ctrl)
	mockSettingsRepo := mocks.NewMockSettingsRepository(ctrl)
	mockRepo.EXPECT().Customer().Return(mockCustomerRepo).AnyTimes()
	mockRepo.EXPECT().Connection().Return(mockConnRepo).AnyTimes()
	mockRepo.EXPECT().Settings().Return(mockSettingsRepo).AnyTimes()

	mockConnRepo.EXPECT().GetActive(gomock.Any(), tenantID).Return(testConnection(tenantID), nil)
	mockSettingsRepo.EXPECT().Get(gomock.Any(), tenantID).Return(models.DefaultMessageSettings(tenantID), nil)
	mockCustomerRepo.EXPECT().
		GetByIDs(gomock.Any(), tenantID, gomock.Any()).
		Return([]*models.Customer{}, nil)

	mockSender := servicemocks.NewMockSenderService(ctrl)
	automation := service.NewAutomationService(automationConfig(), mockRepo, mockSender, nopWait{}, zap.NewNop())

	_, err := automation.SendToCustomers(context.Background(), tenantID, []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, service.ErrNoCustomers)
}

func TestAutomationService_SendToCustomers_MixedOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	sent := birthdayToday(tenantID, "Farah")
	failed := birthdayToday(tenantID, "Hafiz")
	skipped := birthdayToday(tenantID, "Nurul")
	skipped.Phone = sql.NullString{}

	mockRepo := mocks.NewMockRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
	mockConnRepo := mocks.NewMockConnectionRepository(ctrl)
	mockSettingsRepo := mocks.NewMockSettingsRepository(ctrl)
	mockRepo.EXPECT().Customer().Return(mockCustomerRepo).AnyTimes()
	mockRepo.EXPECT().Connection().Return(mockConnRepo).AnyTimes()
	mockRepo.EXPECT().Settings().Return(mockSettingsRepo).AnyTimes()

	mockConnRepo.EXPECT().GetActive(gomock.Any(), tenantID).Return(testConnection(tenantID), nil)
	mockSettingsRepo.EXPECT().Get(gomock.Any(), tenantID).Return(models.DefaultMessageSettings(tenantID), nil)
	mockCustomerRepo.EXPECT().
		GetByIDs(gomock.Any(), tenantID, gomock.Any()).
		Return([]*models.Customer{sent, failed, skipped}, nil)

	mockSender := servicemocks.NewMockSenderService(ctrl)
	mockSender.EXPECT().
		SendBirthdayMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in service.SendInput) *models.CustomerSendResult {
			result := &models.CustomerSendResult{
				CustomerID:   in.Customer.ID,
				CustomerName: in.Customer.Name,
			}
			switch in.Customer.ID {
			case sent.ID:
				result.Outcome = models.OutcomeSent
			case failed.ID:
				result.Outcome = models.OutcomeFailed
				result.Reason = "device offline"
			default:
				result.Outcome = models.OutcomeSkipped
				result.Reason = "no usable phone number"
			}
			return result
		}).
		Times(3)

	automation := service.NewAutomationService(automationConfig(), mockRepo, mockSender, nopWait{}, zap.NewNop())

	report, err := automation.SendToCustomers(context.Background(), tenantID, []uuid.UUID{sent.ID, failed.ID, skipped.ID})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "Hafiz")
	assert.Contains(t, report.Errors[0], "device offline")
	assert.Len(t, report.Results, 3)
}

func TestAutomationService_ListMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockMessageRepo := mocks.NewMockBirthdayMessageRepository(ctrl)
	mockRepo.EXPECT().BirthdayMessage().Return(mockMessageRepo).AnyTimes()

	messages := []*models.BirthdayMessage{
		{ID: 11, TenantID: tenantID, Status: models.MessageStatusSent},
		{ID: 12, TenantID: tenantID, Status: models.MessageStatusFailed},
	}
	mockMessageRepo.EXPECT().ListByTenant(gomock.Any(), tenantID, 10, 10).Return(messages, nil)
	mockMessageRepo.EXPECT().CountByTenant(gomock.Any(), tenantID).Return(int64(25), nil)

	mockSender := servicemocks.NewMockSenderService(ctrl)
	automation := service.NewAutomationService(automationConfig(), mockRepo, mockSender, nopWait{}, zap.NewNop())

	resp, err := automation.ListMessages(context.Background(), tenantID, 2, 10)
	require.NoError(t, err)

	assert.Len(t, resp.Messages, 2)
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, 25, resp.Pagination.TotalItems)
	assert.Equal(t, 10, resp.Pagination.ItemsPerPage)
}
