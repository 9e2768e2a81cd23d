package worker

import (
	"context"
	"log"
	"time"

	"github.com/anaconecta/conecta-api/internal/entity"
	"github.com/anaconecta/conecta-api/internal/infra/queue"
)

type DueMessageStore interface {
	ClaimDue(ctx context.Context) ([]entity.ScheduledMessage, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type MessagePublisher interface {
	PublishMessage(ctx context.Context, payload queue.MessagePayload) error
}

// WhatsAppScheduler publica na fila as mensagens agendadas cujo horário
// chegou; a entrega em si fica com o consumidor da fila.
type WhatsAppScheduler struct {
	store        DueMessageStore
	producer     MessagePublisher
	tickInterval time.Duration
}

func NewWhatsAppScheduler(store DueMessageStore, producer MessagePublisher) *WhatsAppScheduler {
	return &WhatsAppScheduler{
		store:        store,
		producer:     producer,
		tickInterval: 30 * time.Second,
	}
}

func (w *WhatsAppScheduler) Start(ctx context.Context) {
	log.Println("🕒 WhatsApp Scheduler iniciado")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.dispatchDue(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ WhatsApp Scheduler encerrado")
			return
		case <-ticker.C:
			w.dispatchDue(ctx)
		}
	}
}

func (w *WhatsAppScheduler) dispatchDue(ctx context.Context) {
	messages, err := w.store.ClaimDue(ctx)
	if err != nil {
		log.Printf("❌ Erro ao buscar mensagens agendadas: %v", err)
		return
	}

	for _, m := range messages {
		payload := queue.MessagePayload{
			MessageID: m.ID,
			Phone:     m.Phone,
			Message:   m.Message,
			Origin:    "scheduled",
		}

		if err := w.producer.PublishMessage(ctx, payload); err != nil {
			log.Printf("❌ Erro ao publicar mensagem %s: %v", m.ID, err)
			// Volta para scheduled; o próximo tick tenta de novo.
			if err := w.store.UpdateStatus(ctx, m.ID, entity.MessageStatusScheduled); err != nil {
				log.Printf("⚠️ Falha ao devolver mensagem %s para a agenda: %v", m.ID, err)
			}
		}
	}
}
