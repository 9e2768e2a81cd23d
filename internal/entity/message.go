package entity

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status de mensagem agendada
const (
	MessageStatusScheduled = "scheduled"
	MessageStatusQueued    = "queued"
	MessageStatusSent      = "sent"
	MessageStatusFailed    = "failed"
)

var nonDigits = regexp.MustCompile(`\D`)

// ScheduledMessage é um WhatsApp a ser disparado em horário futuro.
type ScheduledMessage struct {
	ID          string    `json:"id"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewScheduledMessage(phone, message string, scheduledAt time.Time) (*ScheduledMessage, error) {
	phone = NormalizePhone(phone)
	if phone == "" {
		return nil, errors.New("phone is required")
	}
	if strings.TrimSpace(message) == "" {
		return nil, errors.New("message is required")
	}
	if scheduledAt.Before(time.Now()) {
		return nil, errors.New("scheduled_date must be in the future")
	}

	return &ScheduledMessage{
		ID:          uuid.New().String(),
		Phone:       phone,
		Message:     message,
		ScheduledAt: scheduledAt,
		Status:      MessageStatusScheduled,
		CreatedAt:   time.Now(),
	}, nil
}

// NormalizePhone remove tudo que não for dígito, como o wa.me espera.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}
