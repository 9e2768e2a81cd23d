package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status de mentoria (mesmo funil do portal do cliente)
const (
	MentorshipStatusInitialContact = "initial_contact"
	MentorshipStatusProposalSent   = "proposal_sent"
	MentorshipStatusContractSigned = "contract_signed"
	MentorshipStatusInProgress     = "in_progress"
	MentorshipStatusCompleted      = "completed"
)

// Tipos de documento anexados a uma mentoria
const (
	DocumentTypeProposal = "proposal"
	DocumentTypeContract = "contract"
	DocumentTypeReceipt  = "receipt"
	DocumentTypeContent  = "content"
	DocumentTypeOther    = "other"
)

type Meeting struct {
	Date  string `json:"date"`
	Topic string `json:"topic"`
	Notes string `json:"notes,omitempty"`
}

type Document struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type Mentorship struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"client_id"`
	ClientName  string     `json:"client_name,omitempty"` // preenchido na leitura
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Meetings    []Meeting  `json:"meetings"`
	Documents   []Document `json:"documents"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewMentorship(clientID, title, description, status string) (*Mentorship, error) {
	if status == "" {
		status = MentorshipStatusInitialContact
	}

	mentorship := &Mentorship{
		ID:          uuid.New().String(),
		ClientID:    strings.TrimSpace(clientID),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      status,
		Meetings:    []Meeting{},
		Documents:   []Document{},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := mentorship.Validate(); err != nil {
		return nil, err
	}

	return mentorship, nil
}

func (m *Mentorship) Validate() error {
	if m.ClientID == "" {
		return errors.New("client_id is required")
	}
	if m.Title == "" {
		return errors.New("title is required")
	}
	if m.Description == "" {
		return errors.New("description is required")
	}
	if !IsValidMentorshipStatus(m.Status) {
		return errors.New("invalid mentorship status")
	}
	for _, d := range m.Documents {
		if !IsValidDocumentType(d.Type) {
			return errors.New("invalid document type: " + d.Type)
		}
	}
	return nil
}

func IsValidMentorshipStatus(s string) bool {
	switch s {
	case MentorshipStatusInitialContact, MentorshipStatusProposalSent,
		MentorshipStatusContractSigned, MentorshipStatusInProgress,
		MentorshipStatusCompleted:
		return true
	}
	return false
}

func IsValidDocumentType(t string) bool {
	switch t {
	case DocumentTypeProposal, DocumentTypeContract, DocumentTypeReceipt,
		DocumentTypeContent, DocumentTypeOther:
		return true
	}
	return false
}
