package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusBadgeKnownAndUnknown(t *testing.T) {
	svc := &ClientService{Status: MentorshipStatusProposalSent}
	label, class := svc.StatusBadge()
	assert.Equal(t, "Proposta Enviada", label)
	assert.Equal(t, "badge-info", class)

	// Status fora da tabela cai no próprio valor com classe neutra
	svc.Status = "legacy_state"
	label, class = svc.StatusBadge()
	assert.Equal(t, "legacy_state", label)
	assert.Equal(t, "badge-light", class)
}

func TestDocumentBadgeUnknownFallback(t *testing.T) {
	icon, label := DocumentBadge(DocumentTypeContract)
	assert.Equal(t, "fa-file-signature", icon)
	assert.Equal(t, "Contrato", label)

	icon, label = DocumentBadge("zip")
	assert.Equal(t, "fa-file", icon)
	assert.Equal(t, "Documento", label)
}

func TestAddChatMessageRejectsUnknownSender(t *testing.T) {
	svc, err := NewClientService("client-1", "Mentoria", "Pacote", "")
	assert.NoError(t, err)

	_, err = svc.AddChatMessage("mascote", "oi")
	assert.Error(t, err)
	assert.Empty(t, svc.ChatHistory)

	msg, err := svc.AddChatMessage(ChatSenderClient, "oi")
	assert.NoError(t, err)
	assert.Equal(t, ChatSenderClient, msg.Sender)
	assert.Len(t, svc.ChatHistory, 1)
}

func TestUpdateStatusAppendsTimeline(t *testing.T) {
	svc, _ := NewClientService("client-1", "Mentoria", "Pacote", MentorshipStatusProposalSent)

	assert.NoError(t, svc.UpdateStatus(MentorshipStatusContractSigned))
	assert.Len(t, svc.Timeline, 1)
	assert.Equal(t, "Status: contract_signed", svc.Timeline[0].Title)

	assert.Error(t, svc.UpdateStatus("flying"))
	assert.Len(t, svc.Timeline, 1)
}

func TestCanPayWindow(t *testing.T) {
	svc := &ClientService{Status: MentorshipStatusInitialContact}
	assert.False(t, svc.CanPay())

	svc.Status = MentorshipStatusProposalSent
	assert.True(t, svc.CanPay())
	assert.True(t, svc.CanApproveScope())

	svc.Status = MentorshipStatusContractSigned
	assert.True(t, svc.CanPay())
	assert.False(t, svc.CanApproveScope())

	svc.Status = MentorshipStatusCompleted
	assert.False(t, svc.CanPay())
}
