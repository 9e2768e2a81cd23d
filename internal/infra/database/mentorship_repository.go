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

type MentorshipRepository struct {
	DB *sql.DB
}

func NewMentorshipRepository(db *sql.DB) *MentorshipRepository {
	return &MentorshipRepository{DB: db}
}

// List junta o nome do cliente para exibição; FK pendurada vira
// "Unknown Client", como o serviço original fazia.
func (r *MentorshipRepository) List(ctx context.Context, clientID, status string) ([]entity.Mentorship, error) {
	builder := sq.Select(
		"m.id", "COALESCE(m.client_id::text, '')", "COALESCE(c.name, 'Unknown Client')",
		"m.title", "m.description", "m.status", "m.meetings", "m.documents",
		"m.created_at", "m.updated_at",
	).
		From("mentorships m").
		LeftJoin("clients c ON c.id = m.client_id").
		OrderBy("m.created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if clientID != "" {
		builder = builder.Where(sq.Eq{"m.client_id": clientID})
	}
	if status != "" {
		builder = builder.Where(sq.Eq{"m.status": status})
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

	mentorships := []entity.Mentorship{}
	for rows.Next() {
		m, err := scanMentorship(rows)
		if err != nil {
			return nil, err
		}
		mentorships = append(mentorships, *m)
	}

	return mentorships, rows.Err()
}

func (r *MentorshipRepository) FindByID(ctx context.Context, id string) (*entity.Mentorship, error) {
	query := `
		SELECT m.id, COALESCE(m.client_id::text, ''), COALESCE(c.name, 'Unknown Client'),
			m.title, m.description, m.status, m.meetings, m.documents,
			m.created_at, m.updated_at
		FROM mentorships m
		LEFT JOIN clients c ON c.id = m.client_id
		WHERE m.id = $1
	`

	row := r.DB.QueryRowContext(ctx, query, id)
	m, err := scanMentorship(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	return m, nil
}

func (r *MentorshipRepository) Create(ctx context.Context, m *entity.Mentorship) error {
	meetings, documents, err := marshalNestedGroups(m)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO mentorships (id, client_id, title, description, status, meetings, documents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.DB.ExecContext(ctx, query,
		m.ID, m.ClientID, m.Title, m.Description, m.Status, meetings, documents, m.CreatedAt, m.UpdatedAt,
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

func (r *MentorshipRepository) Update(ctx context.Context, m *entity.Mentorship) error {
	meetings, documents, err := marshalNestedGroups(m)
	if err != nil {
		return err
	}

	query := `
		UPDATE mentorships
		SET client_id = NULLIF($1, '')::uuid, title = $2, description = $3, status = $4,
			meetings = $5, documents = $6, updated_at = NOW()
		WHERE id = $7
	`

	res, err := r.DB.ExecContext(ctx, query,
		m.ClientID, m.Title, m.Description, m.Status, meetings, documents, m.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return entity.ErrClientNotFound
		}
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

func (r *MentorshipRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM mentorships WHERE id = $1`, id)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMentorship(row rowScanner) (*entity.Mentorship, error) {
	var (
		m                   entity.Mentorship
		meetings, documents []byte
	)

	err := row.Scan(
		&m.ID, &m.ClientID, &m.ClientName,
		&m.Title, &m.Description, &m.Status, &meetings, &documents,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(meetings, &m.Meetings); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(documents, &m.Documents); err != nil {
		return nil, err
	}

	return &m, nil
}

func marshalNestedGroups(m *entity.Mentorship) (meetings, documents []byte, err error) {
	if m.Meetings == nil {
		m.Meetings = []entity.Meeting{}
	}
	if m.Documents == nil {
		m.Documents = []entity.Document{}
	}

	meetings, err = json.Marshal(m.Meetings)
	if err != nil {
		return nil, nil, err
	}

	documents, err = json.Marshal(m.Documents)
	if err != nil {
		return nil, nil, err
	}

	return meetings, documents, nil
}
