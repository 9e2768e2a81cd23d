package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/anaconecta/conecta-api/internal/entity"
)

type InitiativeInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Priority    int    `json:"priority"`
}

type InitiativeUseCase struct {
	Repo InitiativeRepository
}

func NewInitiativeUseCase(repo InitiativeRepository) *InitiativeUseCase {
	return &InitiativeUseCase{Repo: repo}
}

func (uc *InitiativeUseCase) List(ctx context.Context, category, status string) ([]entity.Initiative, error) {
	if status != "" && !entity.IsValidInitiativeStatus(status) {
		return nil, &DomainError{Code: "INVALID_FILTER", Message: "unknown initiative status: " + status}
	}
	return uc.Repo.List(ctx, category, status)
}

func (uc *InitiativeUseCase) Get(ctx context.Context, id string) (*entity.Initiative, error) {
	return uc.Repo.FindByID(ctx, id)
}

func (uc *InitiativeUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.Repo.Categories(ctx)
}

func (uc *InitiativeUseCase) Create(ctx context.Context, input InitiativeInput) (*entity.Initiative, error) {
	if errs := validateInitiativeInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	initiative, err := entity.NewInitiative(input.Title, input.Description, input.Category, input.Status, input.Priority)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_INITIATIVE", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, initiative); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist initiative: " + err.Error()}
	}

	return initiative, nil
}

func (uc *InitiativeUseCase) Update(ctx context.Context, id string, input InitiativeInput) (*entity.Initiative, error) {
	if errs := validateInitiativeInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	initiative, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	initiative.Title = strings.TrimSpace(input.Title)
	initiative.Description = strings.TrimSpace(input.Description)
	initiative.Category = strings.TrimSpace(input.Category)
	if input.Status != "" {
		initiative.Status = input.Status
	}
	if input.Priority != 0 {
		initiative.Priority = input.Priority
	}

	if err := initiative.Validate(); err != nil {
		return nil, &DomainError{Code: "INVALID_INITIATIVE", Message: err.Error()}
	}

	if err := uc.Repo.Update(ctx, initiative); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to update initiative: " + err.Error()}
	}

	return initiative, nil
}

func (uc *InitiativeUseCase) Delete(ctx context.Context, id string) error {
	return uc.Repo.Delete(ctx, id)
}

func validateInitiativeInput(input InitiativeInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Title) == "" {
		errs = append(errs, ValidationError{"title", "is required"})
	}
	if strings.TrimSpace(input.Description) == "" {
		errs = append(errs, ValidationError{"description", "is required"})
	}
	if strings.TrimSpace(input.Category) == "" {
		errs = append(errs, ValidationError{"category", "is required"})
	}
	if input.Status != "" && !entity.IsValidInitiativeStatus(input.Status) {
		errs = append(errs, ValidationError{"status", "is invalid"})
	}
	if input.Priority != 0 && (input.Priority < 1 || input.Priority > 5) {
		errs = append(errs, ValidationError{"priority", "must be between 1 and 5"})
	}

	return errs
}
