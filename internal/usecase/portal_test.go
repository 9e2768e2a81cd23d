package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anaconecta/conecta-api/internal/entity"
)

func TestPortalServiceViewFlags(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRepository)
	podcastRepo := new(MockPodcastRepository)
	clientRepo := new(MockClientRepository)

	svc, _ := entity.NewClientService("client-1", "Mentoria Premium", "Pacote", entity.MentorshipStatusProposalSent)
	serviceRepo.On("FindByID", ctx, svc.ID).Return(svc, nil)

	uc := NewPortalUseCase(serviceRepo, podcastRepo, clientRepo)

	view, err := uc.GetService(ctx, svc.ID)

	assert.NoError(t, err)
	assert.Equal(t, "Proposta Enviada", view.StatusLabel)
	assert.Equal(t, "badge-info", view.StatusClass)
	assert.True(t, view.ShowScopeApproval)
	assert.True(t, view.ShowPaymentPanel)
}

// A resposta automática entra na mesma chamada, sem timer solto.
func TestPortalChatWithAutoReply(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRepository)
	podcastRepo := new(MockPodcastRepository)
	clientRepo := new(MockClientRepository)

	svc, _ := entity.NewClientService("client-1", "Mentoria", "Pacote", entity.MentorshipStatusInProgress)
	serviceRepo.On("FindByID", ctx, svc.ID).Return(svc, nil)
	serviceRepo.On("Save", ctx, mock.MatchedBy(func(s *entity.ClientService) bool {
		return len(s.ChatHistory) == 2
	})).Return(nil)

	uc := NewPortalUseCase(serviceRepo, podcastRepo, clientRepo)

	output, err := uc.AddChatMessage(ctx, svc.ID, ChatMessageInput{
		Sender:        entity.ChatSenderClient,
		Message:       "Quando será o próximo encontro?",
		WithAutoReply: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.ChatSenderClient, output.Message.Sender)
	assert.NotNil(t, output.AutoReply)
	assert.Equal(t, entity.ChatSenderMentor, output.AutoReply.Sender)
	serviceRepo.AssertNumberOfCalls(t, "Save", 1)
}

func TestPortalChatMentorNoAutoReply(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRepository)
	podcastRepo := new(MockPodcastRepository)
	clientRepo := new(MockClientRepository)

	svc, _ := entity.NewClientService("client-1", "Mentoria", "Pacote", entity.MentorshipStatusInProgress)
	serviceRepo.On("FindByID", ctx, svc.ID).Return(svc, nil)
	serviceRepo.On("Save", ctx, mock.Anything).Return(nil)

	uc := NewPortalUseCase(serviceRepo, podcastRepo, clientRepo)

	output, err := uc.AddChatMessage(ctx, svc.ID, ChatMessageInput{
		Sender:        entity.ChatSenderMentor,
		Message:       "Encontro confirmado para sexta.",
		WithAutoReply: true,
	})

	assert.NoError(t, err)
	assert.Nil(t, output.AutoReply)
}

func TestPortalChatInvalidSender(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRepository)
	podcastRepo := new(MockPodcastRepository)
	clientRepo := new(MockClientRepository)

	svc, _ := entity.NewClientService("client-1", "Mentoria", "Pacote", entity.MentorshipStatusInProgress)
	serviceRepo.On("FindByID", ctx, svc.ID).Return(svc, nil)

	uc := NewPortalUseCase(serviceRepo, podcastRepo, clientRepo)

	output, err := uc.AddChatMessage(ctx, svc.ID, ChatMessageInput{
		Sender:  "bot",
		Message: "olá",
	})

	assert.Nil(t, output)
	assert.True(t, IsDomainError(err))
	serviceRepo.AssertNotCalled(t, "Save")
}

func TestPortalApproveScope(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRepository)
	podcastRepo := new(MockPodcastRepository)
	clientRepo := new(MockClientRepository)

	svc, _ := entity.NewClientService("client-1", "Mentoria", "Pacote", entity.MentorshipStatusProposalSent)
	serviceRepo.On("FindByID", ctx, svc.ID).Return(svc, nil)
	serviceRepo.On("Save", ctx, mock.Anything).Return(nil)

	uc := NewPortalUseCase(serviceRepo, podcastRepo, clientRepo)

	view, err := uc.ApproveScope(ctx, svc.ID)

	assert.NoError(t, err)
	assert.Equal(t, entity.MentorshipStatusContractSigned, view.Status)
	// Transição registrada na timeline
	assert.NotEmpty(t, view.Timeline)
}

// Aprovação de escopo fora de proposta enviada é recusada.
func TestPortalApproveScopeWrongStatus(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRepository)
	podcastRepo := new(MockPodcastRepository)
	clientRepo := new(MockClientRepository)

	svc, _ := entity.NewClientService("client-1", "Mentoria", "Pacote", entity.MentorshipStatusInProgress)
	serviceRepo.On("FindByID", ctx, svc.ID).Return(svc, nil)

	uc := NewPortalUseCase(serviceRepo, podcastRepo, clientRepo)

	view, err := uc.ApproveScope(ctx, svc.ID)

	assert.Nil(t, view)

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "SCOPE_APPROVAL_NOT_ALLOWED", domainErr.Code)
	serviceRepo.AssertNotCalled(t, "Save")
}

func TestPortalCreateService(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRepository)
	podcastRepo := new(MockPodcastRepository)
	clientRepo := new(MockClientRepository)

	client := &entity.Client{ID: "client-1", Name: "Maria", Status: entity.ClientStatusActive}
	clientRepo.On("FindByID", ctx, "client-1").Return(client, nil)
	serviceRepo.On("Create", ctx, mock.MatchedBy(func(s *entity.ClientService) bool {
		return s.ClientID == "client-1" && s.Price == "R$ 1.500,00" && s.Installments == 3
	})).Return(nil)

	uc := NewPortalUseCase(serviceRepo, podcastRepo, clientRepo)

	view, err := uc.CreateService(ctx, CreateServiceInput{
		ClientID:     "client-1",
		Title:        "Mentoria em Liderança",
		Description:  "Pacote de 6 encontros",
		Status:       entity.MentorshipStatusProposalSent,
		Price:        "R$ 1.500,00",
		Installments: 3,
		Scope:        []entity.ScopeItem{{Title: "Diagnóstico", Description: "Mapeamento inicial"}},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Proposta Enviada", view.StatusLabel)
	assert.NotEmpty(t, view.Timeline)
	assert.Len(t, view.Scope, 1)
}

func TestPortalCreateServiceUnknownClient(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRepository)
	podcastRepo := new(MockPodcastRepository)
	clientRepo := new(MockClientRepository)

	clientRepo.On("FindByID", ctx, "ghost").Return(nil, entity.ErrNotFound)

	uc := NewPortalUseCase(serviceRepo, podcastRepo, clientRepo)

	view, err := uc.CreateService(ctx, CreateServiceInput{
		ClientID: "ghost",
		Title:    "Mentoria",
	})

	assert.Nil(t, view)

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CLIENT_NOT_FOUND", domainErr.Code)
	serviceRepo.AssertNotCalled(t, "Create")
}

func TestPortalCreatePodcastEpisode(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRepository)
	podcastRepo := new(MockPodcastRepository)
	clientRepo := new(MockClientRepository)

	podcastRepo.On("Create", ctx, mock.MatchedBy(func(e *entity.PodcastEpisode) bool {
		return e.ID != "" && e.Title == "Minha jornada em RH"
	})).Return(nil)

	uc := NewPortalUseCase(serviceRepo, podcastRepo, clientRepo)

	episode, err := uc.CreatePodcastEpisode(ctx, PodcastEpisodeInput{
		Title:       "Minha jornada em RH",
		Description: "Conversa sobre carreira",
		Date:        "2025-04-15",
		YoutubeLink: "https://www.youtube.com/@anaconecta",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, episode.ID)
}

func TestPortalCreatePodcastEpisodeMissingFields(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRepository)
	podcastRepo := new(MockPodcastRepository)
	clientRepo := new(MockClientRepository)

	uc := NewPortalUseCase(serviceRepo, podcastRepo, clientRepo)

	episode, err := uc.CreatePodcastEpisode(ctx, PodcastEpisodeInput{})

	assert.Nil(t, episode)
	assert.True(t, IsDomainError(err))
	podcastRepo.AssertNotCalled(t, "Create")
}

// Documentos saem com ícone e rótulo prontos para o portal.
func TestPortalServiceViewDocuments(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRepository)
	podcastRepo := new(MockPodcastRepository)
	clientRepo := new(MockClientRepository)

	svc, _ := entity.NewClientService("client-1", "Mentoria", "Pacote", entity.MentorshipStatusInProgress)
	svc.Documents = []entity.Document{
		{Type: entity.DocumentTypeContract, Name: "contrato.pdf"},
		{Type: "outro", Name: "anexo.pdf"},
	}
	serviceRepo.On("FindByID", ctx, svc.ID).Return(svc, nil)

	uc := NewPortalUseCase(serviceRepo, podcastRepo, clientRepo)

	view, err := uc.GetService(ctx, svc.ID)

	assert.NoError(t, err)
	assert.Len(t, view.Documents, 2)
	assert.Equal(t, "fa-file-signature", view.Documents[0].Icon)
	assert.Equal(t, "Contrato", view.Documents[0].Label)
	assert.Equal(t, "fa-file", view.Documents[1].Icon)
	assert.Equal(t, "Documento", view.Documents[1].Label)
}

func TestPortalListServicesEmpty(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRepository)
	podcastRepo := new(MockPodcastRepository)
	clientRepo := new(MockClientRepository)

	serviceRepo.On("List", ctx, "client-1").Return([]entity.ClientService{}, nil)

	uc := NewPortalUseCase(serviceRepo, podcastRepo, clientRepo)

	views, err := uc.ListServices(ctx, "client-1")

	assert.NoError(t, err)
	assert.NotNil(t, views)
	assert.Len(t, views, 0)
}
