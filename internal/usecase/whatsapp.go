package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/anaconecta/conecta-api/internal/entity"
	"github.com/anaconecta/conecta-api/internal/infra/integration/whatsapp"
)

type SendWhatsAppInput struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type SendWhatsAppOutput struct {
	Sent     bool   `json:"sent"`
	DeepLink string `json:"deep_link"`
}

type ScheduleWhatsAppInput struct {
	Phone         string    `json:"phone"`
	Message       string    `json:"message"`
	ScheduledDate time.Time `json:"scheduled_date"`
}

type WhatsAppUseCase struct {
	Sender      WhatsAppSender
	MessageRepo MessageRepository
}

func NewWhatsAppUseCase(sender WhatsAppSender, messageRepo MessageRepository) *WhatsAppUseCase {
	return &WhatsAppUseCase{Sender: sender, MessageRepo: messageRepo}
}

// Send dispara a mensagem pela API oficial quando há credenciais; a
// resposta sempre inclui o link wa.me para o caminho sem credenciais.
func (uc *WhatsAppUseCase) Send(ctx context.Context, input SendWhatsAppInput) (*SendWhatsAppOutput, error) {
	phone := entity.NormalizePhone(input.Phone)
	if errs := validateWhatsAppInput(phone, input.Message); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	out := &SendWhatsAppOutput{
		DeepLink: whatsapp.DeepLink(phone, input.Message),
	}

	if !uc.Sender.Configured() {
		log.Printf("📱 WhatsApp não configurado; devolvendo só o deep link para %s", phone)
		return out, nil
	}

	if err := uc.Sender.SendText(phone, input.Message); err != nil {
		return nil, &TechnicalError{Code: "WHATSAPP_ERROR", Message: "failed to send whatsapp message: " + err.Error()}
	}

	out.Sent = true
	return out, nil
}

// Schedule persiste a mensagem; o scheduler publica na fila quando o
// horário chega e o worker da fila faz o envio.
func (uc *WhatsAppUseCase) Schedule(ctx context.Context, input ScheduleWhatsAppInput) (*entity.ScheduledMessage, error) {
	phone := entity.NormalizePhone(input.Phone)
	errs := validateWhatsAppInput(phone, input.Message)
	if input.ScheduledDate.IsZero() {
		errs = append(errs, ValidationError{"scheduled_date", "is required"})
	}
	if len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	msg, err := entity.NewScheduledMessage(phone, input.Message, input.ScheduledDate)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_SCHEDULE", Message: err.Error()}
	}

	if err := uc.MessageRepo.Create(ctx, msg); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist scheduled message: " + err.Error()}
	}

	return msg, nil
}

func validateWhatsAppInput(phone, message string) []ValidationError {
	var errs []ValidationError
	if phone == "" {
		errs = append(errs, ValidationError{"phone", "is required"})
	}
	if strings.TrimSpace(message) == "" {
		errs = append(errs, ValidationError{"message", "is required"})
	}
	return errs
}
