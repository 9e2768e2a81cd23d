package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// MessageSender é o contrato de entrega (WhatsApp Business hoje).
type MessageSender interface {
	SendText(phone, message string) error
}

// MessageStatusStore atualiza o status da mensagem após a tentativa.
type MessageStatusStore interface {
	UpdateStatus(ctx context.Context, id, status string) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  MessageSender
	Store   MessageStatusStore
}

func NewWorker(ch *amqp.Channel, sender MessageSender, store MessageStatusStore) *Worker {
	return &Worker{Channel: ch, Sender: sender, Store: store}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	for d := range msgs {
		var payload MessagePayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			log.Printf("❌ [WORKER] JSON inválido: %s", err)
			// Mensagem malformada: rejeita sem requeue para não travar a fila.
			d.Nack(false, false)
			continue
		}

		ctx := context.Background()

		if err := w.Sender.SendText(payload.Phone, payload.Message); err != nil {
			log.Printf("❌ [WORKER] Falha ao enviar WhatsApp para %s: %s", payload.Phone, err)
			w.markStatus(ctx, payload.MessageID, "failed")
			d.Nack(false, false)
			continue
		}

		log.Printf("✅ [WORKER] WhatsApp entregue para %s (origem: %s)", payload.Phone, payload.Origin)
		w.markStatus(ctx, payload.MessageID, "sent")
		d.Ack(false)
	}
}

func (w *Worker) markStatus(ctx context.Context, id, status string) {
	if w.Store == nil || id == "" {
		return
	}
	if err := w.Store.UpdateStatus(ctx, id, status); err != nil {
		log.Printf("⚠️ [WORKER] Falha ao atualizar status da mensagem %s: %s", id, err)
	}
}
