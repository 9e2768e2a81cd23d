package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status de cliente
const (
	ClientStatusProspect  = "prospect"
	ClientStatusActive    = "active"
	ClientStatusCompleted = "completed"
)

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewClient(name, email, phone, status, notes string) (*Client, error) {
	if status == "" {
		status = ClientStatusProspect
	}

	client := &Client{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		Status:    status,
		Notes:     notes,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}

	return client, nil
}

func (c *Client) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	if c.Phone == "" {
		return errors.New("phone is required")
	}
	if !IsValidClientStatus(c.Status) {
		return errors.New("status must be prospect, active or completed")
	}
	return nil
}

func IsValidClientStatus(s string) bool {
	switch s {
	case ClientStatusProspect, ClientStatusActive, ClientStatusCompleted:
		return true
	}
	return false
}
