package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/anaconecta/conecta-api/internal/entity"
	"github.com/anaconecta/conecta-api/internal/infra/database"
	"github.com/anaconecta/conecta-api/internal/infra/integration/cardpay"
	"github.com/anaconecta/conecta-api/internal/infra/integration/pixdireto"
	"github.com/anaconecta/conecta-api/internal/infra/queue"
)

// MockClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) List(ctx context.Context, status string) ([]entity.Client, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Client), args.Error(1)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) Create(ctx context.Context, c *entity.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *entity.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMentorshipRepository
type MockMentorshipRepository struct {
	mock.Mock
}

func (m *MockMentorshipRepository) List(ctx context.Context, clientID, status string) ([]entity.Mentorship, error) {
	args := m.Called(ctx, clientID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Mentorship), args.Error(1)
}

func (m *MockMentorshipRepository) FindByID(ctx context.Context, id string) (*entity.Mentorship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Mentorship), args.Error(1)
}

func (m *MockMentorshipRepository) Create(ctx context.Context, mt *entity.Mentorship) error {
	args := m.Called(ctx, mt)
	return args.Error(0)
}

func (m *MockMentorshipRepository) Update(ctx context.Context, mt *entity.Mentorship) error {
	args := m.Called(ctx, mt)
	return args.Error(0)
}

func (m *MockMentorshipRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) List(ctx context.Context, clientID string) ([]entity.ClientService, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ClientService), args.Error(1)
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id string) (*entity.ClientService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ClientService), args.Error(1)
}

func (m *MockServiceRepository) Create(ctx context.Context, svc *entity.ClientService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockServiceRepository) Save(ctx context.Context, svc *entity.ClientService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

// MockPodcastRepository
type MockPodcastRepository struct {
	mock.Mock
}

func (m *MockPodcastRepository) List(ctx context.Context) ([]entity.PodcastEpisode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PodcastEpisode), args.Error(1)
}

func (m *MockPodcastRepository) FindByID(ctx context.Context, id string) (*entity.PodcastEpisode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PodcastEpisode), args.Error(1)
}

func (m *MockPodcastRepository) Create(ctx context.Context, e *entity.PodcastEpisode) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// MockPaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreatePixCharge(ctx context.Context, charge *entity.PixCharge) error {
	args := m.Called(ctx, charge)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPixChargeByReference(ctx context.Context, reference string) (*entity.PixCharge, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PixCharge), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePixChargeStatus(ctx context.Context, reference, status string) error {
	args := m.Called(ctx, reference, status)
	return args.Error(0)
}

func (m *MockPaymentRepository) CreateCardTransaction(ctx context.Context, tx *entity.CardTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) CountClientsByStatus(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockReportRepository) CountMentorshipsByStatus(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockReportRepository) CountInitiativesByStatus(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockReportRepository) FinancialTotals(ctx context.Context) (database.FinancialTotals, error) {
	args := m.Called(ctx)
	return args.Get(0).(database.FinancialTotals), args.Error(1)
}

// MockMessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *entity.ScheduledMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockPixGateway
type MockPixGateway struct {
	mock.Mock
}

func (m *MockPixGateway) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockPixGateway) CreateCharge(input pixdireto.CreateChargeInput) (*pixdireto.ChargeOutput, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pixdireto.ChargeOutput), args.Error(1)
}

func (m *MockPixGateway) ChargeStatus(reference string) (*pixdireto.ChargeStatusOutput, error) {
	args := m.Called(reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pixdireto.ChargeStatusOutput), args.Error(1)
}

// MockCardGateway
type MockCardGateway struct {
	mock.Mock
}

func (m *MockCardGateway) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockCardGateway) Charge(input cardpay.ChargeInput) (*cardpay.ChargeOutput, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardpay.ChargeOutput), args.Error(1)
}

// MockWhatsAppSender
type MockWhatsAppSender struct {
	mock.Mock
}

func (m *MockWhatsAppSender) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockWhatsAppSender) SendText(phone, message string) error {
	args := m.Called(phone, message)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishMessage(ctx context.Context, payload queue.MessagePayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockReceiptMailer
type MockReceiptMailer struct {
	mock.Mock
}

func (m *MockReceiptMailer) SendReceipt(to, name, description, amount string) error {
	args := m.Called(to, name, description, amount)
	return args.Error(0)
}
