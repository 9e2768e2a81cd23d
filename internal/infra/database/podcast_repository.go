package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/anaconecta/conecta-api/internal/entity"
)

type PodcastRepository struct {
	DB *sql.DB
}

func NewPodcastRepository(db *sql.DB) *PodcastRepository {
	return &PodcastRepository{DB: db}
}

func (r *PodcastRepository) List(ctx context.Context) ([]entity.PodcastEpisode, error) {
	query := `
		SELECT id, title, description, date, youtube_link, summary, created_at
		FROM podcast_episodes
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	episodes := []entity.PodcastEpisode{}
	for rows.Next() {
		var e entity.PodcastEpisode
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.YoutubeLink, &e.Summary, &e.CreatedAt); err != nil {
			return nil, err
		}
		episodes = append(episodes, e)
	}

	return episodes, rows.Err()
}

func (r *PodcastRepository) FindByID(ctx context.Context, id string) (*entity.PodcastEpisode, error) {
	query := `
		SELECT id, title, description, date, youtube_link, summary, created_at
		FROM podcast_episodes
		WHERE id = $1
	`

	var e entity.PodcastEpisode
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.YoutubeLink, &e.Summary, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	return &e, nil
}

func (r *PodcastRepository) Create(ctx context.Context, e *entity.PodcastEpisode) error {
	query := `
		INSERT INTO podcast_episodes (id, title, description, date, youtube_link, summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Description, e.Date, e.YoutubeLink, e.Summary, e.CreatedAt,
	)
	return err
}
