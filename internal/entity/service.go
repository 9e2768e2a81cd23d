package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Remetentes de chat do portal
const (
	ChatSenderClient = "client"
	ChatSenderMentor = "mentor"
)

type ChatMessage struct {
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type TimelineEvent struct {
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

type ScopeItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ClientService é a visão do portal: uma mentoria contratada com
// timeline, escopo, chat e condições de pagamento.
type ClientService struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"client_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Status       string          `json:"status"`
	Meetings     []Meeting       `json:"meetings"`
	Documents    []Document      `json:"documents"`
	ChatHistory  []ChatMessage   `json:"chat_history"`
	Scope        []ScopeItem     `json:"scope"`
	Timeline     []TimelineEvent `json:"timeline"`
	Price        string          `json:"price"`
	Installments int             `json:"installments"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewClientService(clientID, title, description, status string) (*ClientService, error) {
	if status == "" {
		status = MentorshipStatusInitialContact
	}

	svc := &ClientService{
		ID:           uuid.New().String(),
		ClientID:     strings.TrimSpace(clientID),
		Title:        strings.TrimSpace(title),
		Description:  strings.TrimSpace(description),
		Status:       status,
		Meetings:     []Meeting{},
		Documents:    []Document{},
		ChatHistory:  []ChatMessage{},
		Scope:        []ScopeItem{},
		Timeline:     []TimelineEvent{},
		Installments: 1,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if svc.ClientID == "" {
		return nil, errors.New("client_id is required")
	}
	if svc.Title == "" {
		return nil, errors.New("title is required")
	}
	if !IsValidMentorshipStatus(svc.Status) {
		return nil, errors.New("invalid service status")
	}

	return svc, nil
}

func (s *ClientService) AddChatMessage(sender, message string) (ChatMessage, error) {
	if sender != ChatSenderClient && sender != ChatSenderMentor {
		return ChatMessage{}, errors.New("sender must be client or mentor")
	}
	if strings.TrimSpace(message) == "" {
		return ChatMessage{}, errors.New("message is required")
	}

	msg := ChatMessage{
		Sender:    sender,
		Message:   message,
		Timestamp: time.Now(),
	}
	s.ChatHistory = append(s.ChatHistory, msg)
	s.UpdatedAt = time.Now()
	return msg, nil
}

// UpdateStatus troca o status e registra o evento na timeline,
// como o portal original fazia a cada transição.
func (s *ClientService) UpdateStatus(status string) error {
	if !IsValidMentorshipStatus(status) {
		return errors.New("invalid service status")
	}

	s.Status = status
	s.Timeline = append(s.Timeline, TimelineEvent{
		Date:        time.Now(),
		Title:       "Status: " + status,
		Description: statusTimelineDescription(status),
	})
	s.UpdatedAt = time.Now()
	return nil
}

// CanApproveScope: painel de aprovação só aparece com proposta enviada.
func (s *ClientService) CanApproveScope() bool {
	return s.Status == MentorshipStatusProposalSent
}

// CanPay: pagamento liberado entre proposta enviada e contrato assinado.
func (s *ClientService) CanPay() bool {
	return s.Status == MentorshipStatusProposalSent || s.Status == MentorshipStatusContractSigned
}

// StatusBadge devolve rótulo e classe de exibição; status desconhecido
// cai no próprio valor com classe neutra.
func (s *ClientService) StatusBadge() (label, class string) {
	switch s.Status {
	case MentorshipStatusInitialContact:
		return "Contato Inicial", "badge-secondary"
	case MentorshipStatusProposalSent:
		return "Proposta Enviada", "badge-info"
	case MentorshipStatusContractSigned:
		return "Contrato Assinado", "badge-primary"
	case MentorshipStatusInProgress:
		return "Em Andamento", "badge-warning"
	case MentorshipStatusCompleted:
		return "Concluído", "badge-success"
	}
	return s.Status, "badge-light"
}

// DocumentBadge mapeia tipo de documento para ícone/rótulo fixos;
// tipo desconhecido cai no genérico.
func DocumentBadge(docType string) (icon, label string) {
	switch docType {
	case DocumentTypeProposal:
		return "fa-file-invoice", "Proposta"
	case DocumentTypeContract:
		return "fa-file-signature", "Contrato"
	case DocumentTypeReceipt:
		return "fa-file-invoice-dollar", "Recibo"
	case DocumentTypeContent:
		return "fa-file-alt", "Conteúdo"
	}
	return "fa-file", "Documento"
}

func statusTimelineDescription(status string) string {
	switch status {
	case MentorshipStatusInitialContact:
		return "Contato inicial realizado"
	case MentorshipStatusProposalSent:
		return "Proposta enviada ao cliente"
	case MentorshipStatusContractSigned:
		return "Contrato assinado"
	case MentorshipStatusInProgress:
		return "Serviço em andamento"
	case MentorshipStatusCompleted:
		return "Serviço concluído"
	}
	return "Status atualizado para " + status
}
