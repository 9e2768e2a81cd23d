package database

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/anaconecta/conecta-api/internal/entity"
)

type InitiativeRepository struct {
	DB *sql.DB
}

func NewInitiativeRepository(db *sql.DB) *InitiativeRepository {
	return &InitiativeRepository{DB: db}
}

func (r *InitiativeRepository) List(ctx context.Context, category, status string) ([]entity.Initiative, error) {
	builder := sq.Select("id", "title", "description", "category", "status", "priority", "created_at", "updated_at").
		From("initiatives").
		OrderBy("priority ASC", "created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}
	if status != "" {
		builder = builder.Where(sq.Eq{"status": status})
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

	initiatives := []entity.Initiative{}
	for rows.Next() {
		var i entity.Initiative
		if err := rows.Scan(&i.ID, &i.Title, &i.Description, &i.Category, &i.Status, &i.Priority, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		initiatives = append(initiatives, i)
	}

	return initiatives, rows.Err()
}

func (r *InitiativeRepository) FindByID(ctx context.Context, id string) (*entity.Initiative, error) {
	query := `
		SELECT id, title, description, category, status, priority, created_at, updated_at
		FROM initiatives
		WHERE id = $1
	`

	var i entity.Initiative
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&i.ID, &i.Title, &i.Description, &i.Category, &i.Status, &i.Priority, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	return &i, nil
}

func (r *InitiativeRepository) Create(ctx context.Context, i *entity.Initiative) error {
	query := `
		INSERT INTO initiatives (id, title, description, category, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		i.ID, i.Title, i.Description, i.Category, i.Status, i.Priority, i.CreatedAt, i.UpdatedAt,
	)
	return err
}

func (r *InitiativeRepository) Update(ctx context.Context, i *entity.Initiative) error {
	query := `
		UPDATE initiatives
		SET title = $1, description = $2, category = $3, status = $4, priority = $5, updated_at = NOW()
		WHERE id = $6
	`

	res, err := r.DB.ExecContext(ctx, query, i.Title, i.Description, i.Category, i.Status, i.Priority, i.ID)
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

func (r *InitiativeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM initiatives WHERE id = $1`, id)
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

// Categories devolve o conjunto aberto de categorias mantido no banco.
func (r *InitiativeRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT name FROM initiative_categories ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		categories = append(categories, name)
	}

	return categories, rows.Err()
}
