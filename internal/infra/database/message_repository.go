package database

import (
	"context"
	"database/sql"

	"github.com/anaconecta/conecta-api/internal/entity"
)

type MessageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *entity.ScheduledMessage) error {
	query := `
		INSERT INTO scheduled_messages (id, phone, message, scheduled_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		m.ID, m.Phone, m.Message, m.ScheduledAt, m.Status, m.CreatedAt,
	)
	return err
}

// ClaimDue marca as mensagens vencidas como enfileiradas e as devolve.
// O UPDATE com RETURNING evita que dois scans peguem a mesma linha.
func (r *MessageRepository) ClaimDue(ctx context.Context) ([]entity.ScheduledMessage, error) {
	query := `
		UPDATE scheduled_messages
		SET status = 'queued'
		WHERE status = 'scheduled' AND scheduled_at <= NOW()
		RETURNING id, phone, message, scheduled_at, status, created_at
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []entity.ScheduledMessage{}
	for rows.Next() {
		var m entity.ScheduledMessage
		if err := rows.Scan(&m.ID, &m.Phone, &m.Message, &m.ScheduledAt, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func (r *MessageRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE scheduled_messages SET status = $1 WHERE id = $2`
	_, err := r.DB.ExecContext(ctx, query, status, id)
	return err
}
