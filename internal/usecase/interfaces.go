package usecase

import (
	"context"

	"github.com/anaconecta/conecta-api/internal/entity"
	"github.com/anaconecta/conecta-api/internal/infra/database"
	"github.com/anaconecta/conecta-api/internal/infra/integration/cardpay"
	"github.com/anaconecta/conecta-api/internal/infra/integration/pixdireto"
	"github.com/anaconecta/conecta-api/internal/infra/queue"
)

type ClientRepository interface {
	List(ctx context.Context, status string) ([]entity.Client, error)
	FindByID(ctx context.Context, id string) (*entity.Client, error)
	Create(ctx context.Context, c *entity.Client) error
	Update(ctx context.Context, c *entity.Client) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type InitiativeRepository interface {
	List(ctx context.Context, category, status string) ([]entity.Initiative, error)
	FindByID(ctx context.Context, id string) (*entity.Initiative, error)
	Create(ctx context.Context, i *entity.Initiative) error
	Update(ctx context.Context, i *entity.Initiative) error
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
}

type MentorshipRepository interface {
	List(ctx context.Context, clientID, status string) ([]entity.Mentorship, error)
	FindByID(ctx context.Context, id string) (*entity.Mentorship, error)
	Create(ctx context.Context, m *entity.Mentorship) error
	Update(ctx context.Context, m *entity.Mentorship) error
	Delete(ctx context.Context, id string) error
}

type ServiceRepository interface {
	List(ctx context.Context, clientID string) ([]entity.ClientService, error)
	FindByID(ctx context.Context, id string) (*entity.ClientService, error)
	Create(ctx context.Context, svc *entity.ClientService) error
	Save(ctx context.Context, svc *entity.ClientService) error
}

type PodcastRepository interface {
	List(ctx context.Context) ([]entity.PodcastEpisode, error)
	FindByID(ctx context.Context, id string) (*entity.PodcastEpisode, error)
	Create(ctx context.Context, e *entity.PodcastEpisode) error
}

type PaymentRepository interface {
	CreatePixCharge(ctx context.Context, charge *entity.PixCharge) error
	FindPixChargeByReference(ctx context.Context, reference string) (*entity.PixCharge, error)
	UpdatePixChargeStatus(ctx context.Context, reference, status string) error
	CreateCardTransaction(ctx context.Context, tx *entity.CardTransaction) error
}

type ReportRepository interface {
	CountClientsByStatus(ctx context.Context) (map[string]int, error)
	CountMentorshipsByStatus(ctx context.Context) (map[string]int, error)
	CountInitiativesByStatus(ctx context.Context) (map[string]int, error)
	FinancialTotals(ctx context.Context) (database.FinancialTotals, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *entity.ScheduledMessage) error
	UpdateStatus(ctx context.Context, id, status string) error
}

type PixGateway interface {
	Configured() bool
	CreateCharge(input pixdireto.CreateChargeInput) (*pixdireto.ChargeOutput, error)
	ChargeStatus(reference string) (*pixdireto.ChargeStatusOutput, error)
}

type CardGateway interface {
	Configured() bool
	Charge(input cardpay.ChargeInput) (*cardpay.ChargeOutput, error)
}

type WhatsAppSender interface {
	Configured() bool
	SendText(phone, message string) error
}

type QueueProducer interface {
	PublishMessage(ctx context.Context, payload queue.MessagePayload) error
}

type ReceiptMailer interface {
	SendReceipt(to, name, description, amount string) error
}
