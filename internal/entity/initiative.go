package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status de iniciativa
const (
	InitiativeStatusPending    = "pending"
	InitiativeStatusInProgress = "in_progress"
	InitiativeStatusCompleted  = "completed"
	InitiativeStatusCancelled  = "cancelled"
)

// Initiative é uma oferta de serviço (mentoria, podcast, palestra...).
// A categoria vem de um conjunto aberto mantido pelo servidor.
type Initiative struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Priority    int       `json:"priority"` // 1-5, 1 é a mais alta
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewInitiative(title, description, category, status string, priority int) (*Initiative, error) {
	if status == "" {
		status = InitiativeStatusPending
	}
	if priority == 0 {
		priority = 3
	}

	initiative := &Initiative{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Category:    strings.TrimSpace(category),
		Status:      status,
		Priority:    priority,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := initiative.Validate(); err != nil {
		return nil, err
	}

	return initiative, nil
}

func (i *Initiative) Validate() error {
	if i.Title == "" {
		return errors.New("title is required")
	}
	if i.Description == "" {
		return errors.New("description is required")
	}
	if i.Category == "" {
		return errors.New("category is required")
	}
	if !IsValidInitiativeStatus(i.Status) {
		return errors.New("status must be pending, in_progress, completed or cancelled")
	}
	if i.Priority < 1 || i.Priority > 5 {
		return errors.New("priority must be between 1 and 5")
	}
	return nil
}

func IsValidInitiativeStatus(s string) bool {
	switch s {
	case InitiativeStatusPending, InitiativeStatusInProgress,
		InitiativeStatusCompleted, InitiativeStatusCancelled:
		return true
	}
	return false
}
