package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/anaconecta/conecta-api/internal/entity"
)

type MentorshipInput struct {
	ClientID    string            `json:"client_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	Meetings    []entity.Meeting  `json:"meetings"`
	Documents   []entity.Document `json:"documents"`
}

type MentorshipUseCase struct {
	Repo       MentorshipRepository
	ClientRepo ClientRepository
}

func NewMentorshipUseCase(repo MentorshipRepository, clientRepo ClientRepository) *MentorshipUseCase {
	return &MentorshipUseCase{Repo: repo, ClientRepo: clientRepo}
}

func (uc *MentorshipUseCase) List(ctx context.Context, clientID, status string) ([]entity.Mentorship, error) {
	if status != "" && !entity.IsValidMentorshipStatus(status) {
		return nil, &DomainError{Code: "INVALID_FILTER", Message: "unknown mentorship status: " + status}
	}
	return uc.Repo.List(ctx, clientID, status)
}

func (uc *MentorshipUseCase) Get(ctx context.Context, id string) (*entity.Mentorship, error) {
	return uc.Repo.FindByID(ctx, id)
}

func (uc *MentorshipUseCase) Create(ctx context.Context, input MentorshipInput) (*entity.Mentorship, error) {
	if errs := validateMentorshipInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	client, err := uc.ClientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &DomainError{Code: "CLIENT_NOT_FOUND", Message: "client does not exist"}
		}
		return nil, err
	}

	mentorship, err := entity.NewMentorship(input.ClientID, input.Title, input.Description, input.Status)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_MENTORSHIP", Message: err.Error()}
	}
	if input.Meetings != nil {
		mentorship.Meetings = input.Meetings
	}
	if input.Documents != nil {
		mentorship.Documents = input.Documents
	}
	if err := mentorship.Validate(); err != nil {
		return nil, &DomainError{Code: "INVALID_MENTORSHIP", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, mentorship); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist mentorship: " + err.Error()}
	}

	// Prospect que fecha mentoria vira cliente ativo.
	if client.Status == entity.ClientStatusProspect {
		if err := uc.ClientRepo.UpdateStatus(ctx, client.ID, entity.ClientStatusActive); err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to promote client: " + err.Error()}
		}
	}

	mentorship.ClientName = client.Name
	return mentorship, nil
}

func (uc *MentorshipUseCase) Update(ctx context.Context, id string, input MentorshipInput) (*entity.Mentorship, error) {
	if errs := validateMentorshipInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	mentorship, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ClientID != "" && input.ClientID != mentorship.ClientID {
		if _, err := uc.ClientRepo.FindByID(ctx, input.ClientID); err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return nil, &DomainError{Code: "CLIENT_NOT_FOUND", Message: "client does not exist"}
			}
			return nil, err
		}
		mentorship.ClientID = input.ClientID
	}

	mentorship.Title = strings.TrimSpace(input.Title)
	mentorship.Description = strings.TrimSpace(input.Description)
	if input.Status != "" {
		mentorship.Status = input.Status
	}
	if input.Meetings != nil {
		mentorship.Meetings = input.Meetings
	}
	if input.Documents != nil {
		mentorship.Documents = input.Documents
	}

	if err := mentorship.Validate(); err != nil {
		return nil, &DomainError{Code: "INVALID_MENTORSHIP", Message: err.Error()}
	}

	if err := uc.Repo.Update(ctx, mentorship); err != nil {
		if errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrClientNotFound) {
			return nil, err
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to update mentorship: " + err.Error()}
	}

	// Mentoria concluída encerra o ciclo do cliente.
	if input.Status == entity.MentorshipStatusCompleted {
		if err := uc.ClientRepo.UpdateStatus(ctx, mentorship.ClientID, entity.ClientStatusCompleted); err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to complete client: " + err.Error()}
		}
	}

	return mentorship, nil
}

func (uc *MentorshipUseCase) Delete(ctx context.Context, id string) error {
	return uc.Repo.Delete(ctx, id)
}

func validateMentorshipInput(input MentorshipInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.ClientID) == "" {
		errs = append(errs, ValidationError{"client_id", "is required"})
	}
	if strings.TrimSpace(input.Title) == "" {
		errs = append(errs, ValidationError{"title", "is required"})
	}
	if strings.TrimSpace(input.Description) == "" {
		errs = append(errs, ValidationError{"description", "is required"})
	}
	if input.Status != "" && !entity.IsValidMentorshipStatus(input.Status) {
		errs = append(errs, ValidationError{"status", "is invalid"})
	}
	for _, d := range input.Documents {
		if !entity.IsValidDocumentType(d.Type) {
			errs = append(errs, ValidationError{"documents", "invalid document type: " + d.Type})
		}
	}

	return errs
}
