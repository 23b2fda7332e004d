package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"eventlink.backend/internal/domain/entities"
	domainerrors "eventlink.backend/internal/domain/errors"
	"eventlink.backend/internal/domain/repositories"
	"eventlink.backend/pkg/wallet"
)

// PersonaUsecase handles attendee persona management
type PersonaUsecase struct {
	personaRepo repositories.PersonaRepository
	eventRepo   repositories.EventRepository
}

// NewPersonaUsecase creates a new persona usecase
func NewPersonaUsecase(personaRepo repositories.PersonaRepository, eventRepo repositories.EventRepository) *PersonaUsecase {
	return &PersonaUsecase{personaRepo: personaRepo, eventRepo: eventRepo}
}

// GetPersona returns a wallet's persona within a scope
func (u *PersonaUsecase) GetPersona(ctx context.Context, walletAddr string, eventID *string) (*entities.Persona, error) {
	addr, ok := wallet.NormalizeValid(walletAddr)
	if !ok {
		return nil, domainerrors.BadRequest("invalid wallet address")
	}

	scope, err := u.parseScope(eventID)
	if err != nil {
		return nil, err
	}

	persona, err := u.personaRepo.GetByWallet(ctx, addr, scope)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("persona not found")
		}
		return nil, err
	}
	return persona, nil
}

// UpsertPersona creates the caller's persona for a scope, or updates it if
// one already exists
func (u *PersonaUsecase) UpsertPersona(ctx context.Context, walletAddr string, input *entities.UpsertPersonaInput) (*entities.Persona, error) {
	addr, ok := wallet.NormalizeValid(walletAddr)
	if !ok {
		return nil, domainerrors.BadRequest("invalid wallet address")
	}

	scope, err := u.resolveScope(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	existing, err := u.personaRepo.GetByWallet(ctx, addr, scope)
	if err != nil && err != domainerrors.ErrNotFound {
		return nil, err
	}

	if existing == nil {
		persona := &entities.Persona{
			WalletAddress: addr,
			EventID:       scope,
			DisplayName:   input.DisplayName,
			Interests:     normalizeTags(input.Interests),
			LookingFor:    normalizeTags(input.LookingFor),
		}
		if input.Bio != "" {
			persona.Bio = null.StringFrom(input.Bio)
		}
		if input.AvatarIPFSHash != "" {
			persona.AvatarIPFSHash = null.StringFrom(input.AvatarIPFSHash)
		}
		if err := u.personaRepo.Create(ctx, persona); err != nil {
			return nil, err
		}
		return persona, nil
	}

	existing.DisplayName = input.DisplayName
	existing.Interests = normalizeTags(input.Interests)
	existing.LookingFor = normalizeTags(input.LookingFor)
	if input.Bio != "" {
		existing.Bio = null.StringFrom(input.Bio)
	}
	if input.AvatarIPFSHash != "" {
		existing.AvatarIPFSHash = null.StringFrom(input.AvatarIPFSHash)
	}

	if err := u.personaRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *PersonaUsecase) parseScope(eventID *string) (*uuid.UUID, error) {
	if eventID == nil || *eventID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*eventID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid event ID")
	}
	return &id, nil
}

func (u *PersonaUsecase) resolveScope(ctx context.Context, eventID *string) (*uuid.UUID, error) {
	scope, err := u.parseScope(eventID)
	if err != nil || scope == nil {
		return scope, err
	}
	if _, err := u.eventRepo.GetByID(ctx, *scope); err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("event not found")
		}
		return nil, err
	}
	return scope, nil
}

// normalizeTags trims empties and duplicates while preserving order so the
// scorer's set math and presentation stay deterministic
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
