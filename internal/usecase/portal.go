package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anaconecta/conecta-api/internal/entity"
)

// ServiceView é o payload do portal: a entidade mais as regras de
// exibição derivadas do status, para o cliente não reimplementar
// transição nenhuma.
type ServiceView struct {
	entity.ClientService
	Documents         []DocumentView `json:"documents"`
	StatusLabel       string         `json:"status_label"`
	StatusClass       string         `json:"status_class"`
	ShowScopeApproval bool           `json:"show_scope_approval"`
	ShowPaymentPanel  bool           `json:"show_payment_panel"`
}

// DocumentView anexa ícone e rótulo de exibição ao documento.
type DocumentView struct {
	entity.Document
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

type ChatMessageInput struct {
	Sender        string `json:"sender"`
	Message       string `json:"message"`
	WithAutoReply bool   `json:"with_auto_reply"`
}

type ChatMessageOutput struct {
	Message   entity.ChatMessage  `json:"message"`
	AutoReply *entity.ChatMessage `json:"auto_reply,omitempty"`
}

// Resposta padrão da mentora quando o portal pede confirmação imediata.
const mentorAutoReply = "Obrigada pela sua mensagem! Responderei em breve."

type CreateServiceInput struct {
	ClientID     string             `json:"client_id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Status       string             `json:"status"`
	Price        string             `json:"price"`
	Installments int                `json:"installments"`
	Scope        []entity.ScopeItem `json:"scope"`
}

type PodcastEpisodeInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	YoutubeLink string `json:"youtube_link"`
	Summary     string `json:"summary"`
}

type PortalUseCase struct {
	Services ServiceRepository
	Podcasts PodcastRepository
	Clients  ClientRepository
}

func NewPortalUseCase(services ServiceRepository, podcasts PodcastRepository, clients ClientRepository) *PortalUseCase {
	return &PortalUseCase{Services: services, Podcasts: podcasts, Clients: clients}
}

// CreateService registra um serviço contratado para um cliente
// existente; é por aqui que o portal ganha conteúdo.
func (uc *PortalUseCase) CreateService(ctx context.Context, input CreateServiceInput) (*ServiceView, error) {
	if _, err := uc.Clients.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &DomainError{Code: "CLIENT_NOT_FOUND", Message: "client does not exist"}
		}
		return nil, err
	}

	svc, err := entity.NewClientService(input.ClientID, input.Title, input.Description, input.Status)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_SERVICE", Message: err.Error()}
	}

	svc.Price = strings.TrimSpace(input.Price)
	if input.Installments > 0 {
		svc.Installments = input.Installments
	}
	if input.Scope != nil {
		svc.Scope = input.Scope
	}
	svc.Timeline = append(svc.Timeline, entity.TimelineEvent{
		Date:        time.Now(),
		Title:       "Serviço criado",
		Description: "Serviço registrado no portal do cliente",
	})

	if err := uc.Services.Create(ctx, svc); err != nil {
		if errors.Is(err, entity.ErrClientNotFound) {
			return nil, &DomainError{Code: "CLIENT_NOT_FOUND", Message: "client does not exist"}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist service: " + err.Error()}
	}

	view := newServiceView(*svc)
	return &view, nil
}

func (uc *PortalUseCase) ListServices(ctx context.Context, clientID string) ([]ServiceView, error) {
	services, err := uc.Services.List(ctx, clientID)
	if err != nil {
		return nil, err
	}

	views := make([]ServiceView, 0, len(services))
	for _, svc := range services {
		views = append(views, newServiceView(svc))
	}

	return views, nil
}

func (uc *PortalUseCase) GetService(ctx context.Context, id string) (*ServiceView, error) {
	svc, err := uc.Services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := newServiceView(*svc)
	return &view, nil
}

// AddChatMessage persiste a mensagem e, quando pedido, a resposta
// automática na mesma chamada. Nada fica pendurado em timer.
func (uc *PortalUseCase) AddChatMessage(ctx context.Context, serviceID string, input ChatMessageInput) (*ChatMessageOutput, error) {
	svc, err := uc.Services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	msg, err := svc.AddChatMessage(input.Sender, input.Message)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_MESSAGE", Message: err.Error()}
	}

	output := &ChatMessageOutput{Message: msg}

	if input.WithAutoReply && input.Sender == entity.ChatSenderClient {
		reply, err := svc.AddChatMessage(entity.ChatSenderMentor, mentorAutoReply)
		if err != nil {
			return nil, &TechnicalError{Code: "CHAT_ERROR", Message: err.Error()}
		}
		output.AutoReply = &reply
	}

	if err := uc.Services.Save(ctx, svc); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist chat message: " + err.Error()}
	}

	return output, nil
}

// ApproveScope só é permitido com proposta enviada; aprova e assina.
func (uc *PortalUseCase) ApproveScope(ctx context.Context, serviceID string) (*ServiceView, error) {
	svc, err := uc.Services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if !svc.CanApproveScope() {
		return nil, &DomainError{
			Code:    "SCOPE_APPROVAL_NOT_ALLOWED",
			Message: "scope can only be approved while the proposal is pending",
		}
	}

	if err := svc.UpdateStatus(entity.MentorshipStatusContractSigned); err != nil {
		return nil, &DomainError{Code: "INVALID_STATUS", Message: err.Error()}
	}

	if err := uc.Services.Save(ctx, svc); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist approval: " + err.Error()}
	}

	view := newServiceView(*svc)
	return &view, nil
}

// CreatePodcastEpisode publica um episódio na vitrine do portal.
func (uc *PortalUseCase) CreatePodcastEpisode(ctx context.Context, input PodcastEpisodeInput) (*entity.PodcastEpisode, error) {
	var errs []ValidationError
	if strings.TrimSpace(input.Title) == "" {
		errs = append(errs, ValidationError{"title", "is required"})
	}
	if strings.TrimSpace(input.YoutubeLink) == "" {
		errs = append(errs, ValidationError{"youtube_link", "is required"})
	}
	if len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	episode := entity.NewPodcastEpisode(input.Title, input.Description, input.Date, input.YoutubeLink, input.Summary)
	if err := uc.Podcasts.Create(ctx, episode); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist episode: " + err.Error()}
	}

	return episode, nil
}

func (uc *PortalUseCase) ListPodcasts(ctx context.Context) ([]entity.PodcastEpisode, error) {
	return uc.Podcasts.List(ctx)
}

func (uc *PortalUseCase) GetPodcast(ctx context.Context, id string) (*entity.PodcastEpisode, error) {
	return uc.Podcasts.FindByID(ctx, id)
}

func newServiceView(svc entity.ClientService) ServiceView {
	label, class := svc.StatusBadge()

	docs := make([]DocumentView, 0, len(svc.Documents))
	for _, doc := range svc.Documents {
		icon, docLabel := entity.DocumentBadge(doc.Type)
		docs = append(docs, DocumentView{Document: doc, Icon: icon, Label: docLabel})
	}

	return ServiceView{
		ClientService:     svc,
		Documents:         docs,
		StatusLabel:       label,
		StatusClass:       class,
		ShowScopeApproval: svc.CanApproveScope(),
		ShowPaymentPanel:  svc.CanPay(),
	}
}
