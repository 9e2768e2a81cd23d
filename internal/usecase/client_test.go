package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anaconecta/conecta-api/internal/entity"
)

func TestClientCreateSuccess(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewClientUseCase(repo)

	client, err := uc.Create(ctx, ClientInput{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Phone: "(11) 99999-9999",
	})

	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.NotEmpty(t, client.ID)
	// Sem status informado, nasce prospect
	assert.Equal(t, entity.ClientStatusProspect, client.Status)
	repo.AssertCalled(t, "Create", ctx, mock.Anything)
}

// Entrada inválida recusa antes de tocar o banco.
func TestClientCreateValidationFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)

	uc := NewClientUseCase(repo)

	client, err := uc.Create(ctx, ClientInput{Name: "Ana"})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.True(t, IsDomainError(err))
	repo.AssertNotCalled(t, "Create")
}

func TestClientCreateEmailInUse(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	repo.On("Create", ctx, mock.Anything).Return(entity.ErrEmailAlreadyInUse)

	uc := NewClientUseCase(repo)

	client, err := uc.Create(ctx, ClientInput{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Phone: "(11) 99999-9999",
	})

	assert.Error(t, err)
	assert.Nil(t, client)

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EMAIL_IN_USE", domainErr.Code)
}

// Lista vazia devolve slice vazio, não nil.
func TestClientListEmpty(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	repo.On("List", ctx, "").Return([]entity.Client{}, nil)

	uc := NewClientUseCase(repo)

	clients, err := uc.List(ctx, "")

	assert.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Len(t, clients, 0)
}

func TestClientListInvalidStatusFilter(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)

	uc := NewClientUseCase(repo)

	clients, err := uc.List(ctx, "vip")

	assert.Error(t, err)
	assert.Nil(t, clients)
	assert.True(t, IsDomainError(err))
	repo.AssertNotCalled(t, "List")
}

func TestClientUpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	repo.On("FindByID", ctx, "nope").Return(nil, entity.ErrNotFound)

	uc := NewClientUseCase(repo)

	client, err := uc.Update(ctx, "nope", ClientInput{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Phone: "(11) 99999-9999",
	})

	assert.Nil(t, client)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	repo.AssertNotCalled(t, "Update")
}

func TestClientDeleteUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	repo.On("Delete", ctx, "nope").Return(entity.ErrNotFound)

	uc := NewClientUseCase(repo)

	err := uc.Delete(ctx, "nope")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
