package entity

import (
	"time"

	"github.com/google/uuid"
)

// PodcastEpisode alimenta a vitrine de conteúdo do portal.
type PodcastEpisode struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	YoutubeLink string    `json:"youtube_link"`
	Summary     string    `json:"summary"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewPodcastEpisode(title, description, date, youtubeLink, summary string) *PodcastEpisode {
	return &PodcastEpisode{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Date:        date,
		YoutubeLink: youtubeLink,
		Summary:     summary,
		CreatedAt:   time.Now(),
	}
}
