package repositories

import (
	"context"

	"github.com/google/uuid"
	"eventlink.backend/internal/domain/entities"
)

// PersonaRepository defines persona data operations
type PersonaRepository interface {
	Create(ctx context.Context, persona *entities.Persona) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Persona, error)
	// GetByWallet matches the wallet with structural scope equality:
	// a nil eventID only matches the wallet's global persona.
	GetByWallet(ctx context.Context, wallet string, eventID *uuid.UUID) (*entities.Persona, error)
	Update(ctx context.Context, persona *entities.Persona) error
	// ListCandidates returns the matching candidate pool for a scope in
	// stable creation order.
	ListCandidates(ctx context.Context, eventID *uuid.UUID) ([]*entities.Persona, error)
}
