package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"eventlink.backend/internal/domain/entities"
	domainerrors "eventlink.backend/internal/domain/errors"
	"eventlink.backend/internal/usecases"
)

func newPersonaUsecase() (*usecases.PersonaUsecase, *MockPersonaRepository, *MockEventRepository) {
	personaRepo := new(MockPersonaRepository)
	eventRepo := new(MockEventRepository)
	return usecases.NewPersonaUsecase(personaRepo, eventRepo), personaRepo, eventRepo
}

func TestPersonaUsecase_UpsertPersona_CreatesGlobal(t *testing.T) {
	uc, personaRepo, _ := newPersonaUsecase()
	ctx := context.Background()

	personaRepo.On("GetByWallet", ctx, ucWalletAlice, (*uuid.UUID)(nil)).Return(nil, domainerrors.ErrNotFound).Once()
	personaRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	result, err := uc.UpsertPersona(ctx, ucWalletAlice, &entities.UpsertPersonaInput{
		DisplayName: "Alice",
		Bio:         "builder",
		Interests:   []string{"defi", "defi", "nfts", ""},
		LookingFor:  []string{"mentor"},
	})
	assert.NoError(t, err)
	assert.Equal(t, ucWalletAlice, result.WalletAddress)
	assert.Nil(t, result.EventID)
	// Duplicates and empties are dropped, order preserved
	assert.Equal(t, []string{"defi", "nfts"}, result.Interests)
	assert.Equal(t, "builder", result.Bio.String)
	personaRepo.AssertExpectations(t)
}

func TestPersonaUsecase_UpsertPersona_UpdatesExisting(t *testing.T) {
	uc, personaRepo, _ := newPersonaUsecase()
	ctx := context.Background()

	existing := &entities.Persona{
		ID:            uuid.New(),
		WalletAddress: ucWalletAlice,
		DisplayName:   "Old Name",
		Interests:     []string{"gaming"},
	}
	personaRepo.On("GetByWallet", ctx, ucWalletAlice, (*uuid.UUID)(nil)).Return(existing, nil).Once()
	personaRepo.On("Update", ctx, existing).Return(nil).Once()

	result, err := uc.UpsertPersona(ctx, ucWalletAlice, &entities.UpsertPersonaInput{
		DisplayName: "New Name",
		Interests:   []string{"defi"},
	})
	assert.NoError(t, err)
	assert.Equal(t, existing.ID, result.ID)
	assert.Equal(t, "New Name", result.DisplayName)
	assert.Equal(t, []string{"defi"}, result.Interests)
	personaRepo.AssertExpectations(t)
}

func TestPersonaUsecase_UpsertPersona_EventScoped(t *testing.T) {
	uc, personaRepo, eventRepo := newPersonaUsecase()
	ctx := context.Background()

	eventID := uuid.New()
	eventIDStr := eventID.String()
	eventRepo.On("GetByID", ctx, eventID).Return(&entities.Event{ID: eventID, IsActive: true}, nil).Once()
	personaRepo.On("GetByWallet", ctx, ucWalletAlice, &eventID).Return(nil, domainerrors.ErrNotFound).Once()
	personaRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	result, err := uc.UpsertPersona(ctx, ucWalletAlice, &entities.UpsertPersonaInput{
		EventID:     &eventIDStr,
		DisplayName: "Alice at DevCon",
	})
	assert.NoError(t, err)
	assert.NotNil(t, result.EventID)
	assert.Equal(t, eventID, *result.EventID)
}

func TestPersonaUsecase_UpsertPersona_EventNotFound(t *testing.T) {
	uc, personaRepo, eventRepo := newPersonaUsecase()
	ctx := context.Background()

	eventID := uuid.New()
	eventIDStr := eventID.String()
	eventRepo.On("GetByID", ctx, eventID).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.UpsertPersona(ctx, ucWalletAlice, &entities.UpsertPersonaInput{
		EventID:     &eventIDStr,
		DisplayName: "Alice",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	personaRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPersonaUsecase_UpsertPersona_InvalidWallet(t *testing.T) {
	uc, _, _ := newPersonaUsecase()

	_, err := uc.UpsertPersona(context.Background(), "0xzz", &entities.UpsertPersonaInput{DisplayName: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestPersonaUsecase_GetPersona(t *testing.T) {
	uc, personaRepo, _ := newPersonaUsecase()
	ctx := context.Background()

	existing := &entities.Persona{ID: uuid.New(), WalletAddress: ucWalletAlice, DisplayName: "Alice"}
	personaRepo.On("GetByWallet", ctx, ucWalletAlice, (*uuid.UUID)(nil)).Return(existing, nil).Once()

	result, err := uc.GetPersona(ctx, ucWalletAlice, nil)
	assert.NoError(t, err)
	assert.Equal(t, existing.ID, result.ID)
}

func TestPersonaUsecase_GetPersona_NotFound(t *testing.T) {
	uc, personaRepo, _ := newPersonaUsecase()
	ctx := context.Background()

	personaRepo.On("GetByWallet", ctx, ucWalletAlice, (*uuid.UUID)(nil)).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.GetPersona(ctx, ucWalletAlice, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPersonaUsecase_GetPersona_InvalidEventID(t *testing.T) {
	uc, _, _ := newPersonaUsecase()

	bad := "not-a-uuid"
	_, err := uc.GetPersona(context.Background(), ucWalletAlice, &bad)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
