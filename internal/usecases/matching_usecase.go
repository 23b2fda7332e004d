package usecases

import (
	"context"

	"github.com/google/uuid"
	"eventlink.backend/internal/domain/entities"
	domainerrors "eventlink.backend/internal/domain/errors"
	"eventlink.backend/internal/domain/repositories"
)

// MatchingUsecase ranks attendee personas for the suggested-connections feed
type MatchingUsecase struct {
	personaRepo repositories.PersonaRepository
}

// NewMatchingUsecase creates a new matching usecase
func NewMatchingUsecase(personaRepo repositories.PersonaRepository) *MatchingUsecase {
	return &MatchingUsecase{personaRepo: personaRepo}
}

// SuggestConnections returns ranked match suggestions for a wallet within a
// scope. Read-only: nothing is persisted.
func (u *MatchingUsecase) SuggestConnections(ctx context.Context, wallet string, eventID *uuid.UUID, limit int) ([]*entities.MatchResult, error) {
	user, err := u.personaRepo.GetByWallet(ctx, wallet, eventID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("create a persona before requesting suggestions")
		}
		return nil, err
	}

	candidates, err := u.personaRepo.ListCandidates(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return RankCandidates(user, candidates, limit), nil
}
