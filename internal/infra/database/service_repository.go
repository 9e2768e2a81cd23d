package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/anaconecta/conecta-api/internal/entity"
)

type ServiceRepository struct {
	DB *sql.DB
}

func NewServiceRepository(db *sql.DB) *ServiceRepository {
	return &ServiceRepository{DB: db}
}

const serviceColumns = `id, client_id, title, description, status,
	meetings, documents, chat_history, scope, timeline,
	price, installments, created_at, updated_at`

const serviceSelectColumns = `id, COALESCE(client_id::text, ''), title, description, status,
	meetings, documents, chat_history, scope, timeline,
	price, installments, created_at, updated_at`

func (r *ServiceRepository) List(ctx context.Context, clientID string) ([]entity.ClientService, error) {
	builder := sq.Select(
		"id", "COALESCE(client_id::text, '') AS client_id", "title", "description", "status",
		"meetings", "documents", "chat_history", "scope", "timeline",
		"price", "installments", "created_at", "updated_at",
	).
		From("client_services").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if clientID != "" {
		builder = builder.Where(sq.Eq{"client_id": clientID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []entity.ClientService{}
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, *svc)
	}

	return services, rows.Err()
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*entity.ClientService, error) {
	query := `SELECT ` + serviceSelectColumns + ` FROM client_services WHERE id = $1`

	svc, err := scanService(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	return svc, nil
}

func (r *ServiceRepository) Create(ctx context.Context, svc *entity.ClientService) error {
	blobs, err := marshalServiceGroups(svc)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO client_services (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = r.DB.ExecContext(ctx, query,
		svc.ID, svc.ClientID, svc.Title, svc.Description, svc.Status,
		blobs.meetings, blobs.documents, blobs.chat, blobs.scope, blobs.timeline,
		svc.Price, svc.Installments, svc.CreatedAt, svc.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return entity.ErrClientNotFound
		}
		return err
	}

	return nil
}

// Save regrava todos os grupos aninhados de uma vez; o usecase carrega,
// muta a entidade e persiste o estado inteiro.
func (r *ServiceRepository) Save(ctx context.Context, svc *entity.ClientService) error {
	blobs, err := marshalServiceGroups(svc)
	if err != nil {
		return err
	}

	query := `
		UPDATE client_services
		SET title = $1, description = $2, status = $3,
			meetings = $4, documents = $5, chat_history = $6, scope = $7, timeline = $8,
			price = $9, installments = $10, updated_at = NOW()
		WHERE id = $11
	`

	res, err := r.DB.ExecContext(ctx, query,
		svc.Title, svc.Description, svc.Status,
		blobs.meetings, blobs.documents, blobs.chat, blobs.scope, blobs.timeline,
		svc.Price, svc.Installments, svc.ID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}

	return nil
}

type serviceBlobs struct {
	meetings, documents, chat, scope, timeline []byte
}

func marshalServiceGroups(svc *entity.ClientService) (serviceBlobs, error) {
	var (
		blobs serviceBlobs
		err   error
	)

	if blobs.meetings, err = json.Marshal(orEmpty(svc.Meetings)); err != nil {
		return blobs, err
	}
	if blobs.documents, err = json.Marshal(orEmpty(svc.Documents)); err != nil {
		return blobs, err
	}
	if blobs.chat, err = json.Marshal(orEmpty(svc.ChatHistory)); err != nil {
		return blobs, err
	}
	if blobs.scope, err = json.Marshal(orEmpty(svc.Scope)); err != nil {
		return blobs, err
	}
	if blobs.timeline, err = json.Marshal(orEmpty(svc.Timeline)); err != nil {
		return blobs, err
	}

	return blobs, nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func scanService(row rowScanner) (*entity.ClientService, error) {
	var (
		svc                                        entity.ClientService
		meetings, documents, chat, scope, timeline []byte
	)

	err := row.Scan(
		&svc.ID, &svc.ClientID, &svc.Title, &svc.Description, &svc.Status,
		&meetings, &documents, &chat, &scope, &timeline,
		&svc.Price, &svc.Installments, &svc.CreatedAt, &svc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(meetings, &svc.Meetings); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(documents, &svc.Documents); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(chat, &svc.ChatHistory); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(scope, &svc.Scope); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(timeline, &svc.Timeline); err != nil {
		return nil, err
	}

	return &svc, nil
}
