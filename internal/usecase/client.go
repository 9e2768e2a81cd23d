package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/anaconecta/conecta-api/internal/entity"
)

type ClientInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type ClientUseCase struct {
	Repo ClientRepository
}

func NewClientUseCase(repo ClientRepository) *ClientUseCase {
	return &ClientUseCase{Repo: repo}
}

func (uc *ClientUseCase) List(ctx context.Context, status string) ([]entity.Client, error) {
	if status != "" && !entity.IsValidClientStatus(status) {
		return nil, &DomainError{Code: "INVALID_FILTER", Message: "unknown client status: " + status}
	}
	return uc.Repo.List(ctx, status)
}

func (uc *ClientUseCase) Get(ctx context.Context, id string) (*entity.Client, error) {
	return uc.Repo.FindByID(ctx, id)
}

func (uc *ClientUseCase) Create(ctx context.Context, input ClientInput) (*entity.Client, error) {
	if errs := validateClientInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	client, err := entity.NewClient(input.Name, input.Email, input.Phone, input.Status, input.Notes)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_CLIENT", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, client); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyInUse) {
			return nil, &DomainError{Code: "EMAIL_IN_USE", Message: err.Error()}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist client: " + err.Error()}
	}

	return client, nil
}

func (uc *ClientUseCase) Update(ctx context.Context, id string, input ClientInput) (*entity.Client, error) {
	if errs := validateClientInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	client, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Name = strings.TrimSpace(input.Name)
	client.Email = strings.TrimSpace(input.Email)
	client.Phone = strings.TrimSpace(input.Phone)
	if input.Status != "" {
		client.Status = input.Status
	}
	client.Notes = input.Notes

	if err := client.Validate(); err != nil {
		return nil, &DomainError{Code: "INVALID_CLIENT", Message: err.Error()}
	}

	if err := uc.Repo.Update(ctx, client); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyInUse) {
			return nil, &DomainError{Code: "EMAIL_IN_USE", Message: err.Error()}
		}
		if errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to update client: " + err.Error()}
	}

	return client, nil
}

func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	return uc.Repo.Delete(ctx, id)
}

func validateClientInput(input ClientInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	}
	if strings.TrimSpace(input.Phone) == "" {
		errs = append(errs, ValidationError{"phone", "is required"})
	}
	if input.Status != "" && !entity.IsValidClientStatus(input.Status) {
		errs = append(errs, ValidationError{"status", "must be prospect, active or completed"})
	}

	return errs
}
