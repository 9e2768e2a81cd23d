package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anaconecta/conecta-api/internal/entity"
)

func TestWhatsAppSendConfigured(t *testing.T) {
	ctx := context.Background()
	sender := new(MockWhatsAppSender)
	messageRepo := new(MockMessageRepository)

	sender.On("Configured").Return(true)
	sender.On("SendText", "5511999999999", "Olá! Tudo certo para amanhã?").Return(nil)

	uc := NewWhatsAppUseCase(sender, messageRepo)

	output, err := uc.Send(ctx, SendWhatsAppInput{
		Phone:   "+55 (11) 99999-9999",
		Message: "Olá! Tudo certo para amanhã?",
	})

	assert.NoError(t, err)
	assert.True(t, output.Sent)
	// O deep link vai junto mesmo com envio pela API
	assert.Contains(t, output.DeepLink, "https://wa.me/5511999999999?text=")
	sender.AssertCalled(t, "SendText", "5511999999999", "Olá! Tudo certo para amanhã?")
}

// Sem credenciais o envio não acontece; o deep link é o fallback.
func TestWhatsAppSendUnconfigured(t *testing.T) {
	ctx := context.Background()
	sender := new(MockWhatsAppSender)
	messageRepo := new(MockMessageRepository)

	sender.On("Configured").Return(false)

	uc := NewWhatsAppUseCase(sender, messageRepo)

	output, err := uc.Send(ctx, SendWhatsAppInput{
		Phone:   "11988887777",
		Message: "Novo episódio no ar!",
	})

	assert.NoError(t, err)
	assert.False(t, output.Sent)
	assert.Contains(t, output.DeepLink, "wa.me/11988887777")
	sender.AssertNotCalled(t, "SendText")
}

func TestWhatsAppSendFailure(t *testing.T) {
	ctx := context.Background()
	sender := new(MockWhatsAppSender)
	messageRepo := new(MockMessageRepository)

	sender.On("Configured").Return(true)
	sender.On("SendText", mock.Anything, mock.Anything).Return(errors.New("api error"))

	uc := NewWhatsAppUseCase(sender, messageRepo)

	output, err := uc.Send(ctx, SendWhatsAppInput{
		Phone:   "11988887777",
		Message: "Olá",
	})

	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))
}

func TestWhatsAppSendMissingFields(t *testing.T) {
	uc := NewWhatsAppUseCase(new(MockWhatsAppSender), new(MockMessageRepository))

	output, err := uc.Send(context.Background(), SendWhatsAppInput{Phone: "abc"})

	assert.Nil(t, output)
	assert.True(t, IsDomainError(err))
}

func TestWhatsAppSchedule(t *testing.T) {
	ctx := context.Background()
	sender := new(MockWhatsAppSender)
	messageRepo := new(MockMessageRepository)

	messageRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewWhatsAppUseCase(sender, messageRepo)

	msg, err := uc.Schedule(ctx, ScheduleWhatsAppInput{
		Phone:         "(11) 98888-7777",
		Message:       "Lembrete: sessão amanhã às 10h",
		ScheduledDate: time.Now().Add(24 * time.Hour),
	})

	assert.NoError(t, err)
	assert.NotNil(t, msg)
	assert.Equal(t, "11988887777", msg.Phone)
	assert.Equal(t, entity.MessageStatusScheduled, msg.Status)
	messageRepo.AssertCalled(t, "Create", ctx, mock.Anything)
}

// Agendar no passado é recusado.
func TestWhatsAppSchedulePastDate(t *testing.T) {
	ctx := context.Background()
	messageRepo := new(MockMessageRepository)

	uc := NewWhatsAppUseCase(new(MockWhatsAppSender), messageRepo)

	msg, err := uc.Schedule(ctx, ScheduleWhatsAppInput{
		Phone:         "11988887777",
		Message:       "tarde demais",
		ScheduledDate: time.Now().Add(-time.Hour),
	})

	assert.Nil(t, msg)
	assert.True(t, IsDomainError(err))
	messageRepo.AssertNotCalled(t, "Create")
}
