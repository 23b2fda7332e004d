package repositories

import (
	"context"

	"github.com/google/uuid"
	"eventlink.backend/internal/domain/entities"
)

// ConnectionFilter narrows connection listings
type ConnectionFilter struct {
	Wallet  string
	Status  entities.ConnectionStatus
	EventID *uuid.UUID
	Limit   int
	Offset  int
}

// ConnectionRepository defines connection request data operations.
// The (unordered pair, scope) uniqueness invariant is enforced by the store
// through a unique index; callers still run check+insert inside a UnitOfWork.
type ConnectionRepository interface {
	Create(ctx context.Context, req *entities.ConnectionRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ConnectionRequest, error)
	// FindByPairAndScope matches the unordered wallet pair with structural
	// scope equality: a nil eventID only matches global records.
	FindByPairAndScope(ctx context.Context, walletA, walletB string, eventID *uuid.UUID) (*entities.ConnectionRequest, error)
	// FindBlockedBy returns a blocked record authored by blocker against
	// target in any scope, or ErrNotFound.
	FindBlockedBy(ctx context.Context, blocker, target string) (*entities.ConnectionRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ConnectionStatus) (*entities.ConnectionRequest, error)
	// Reissue rewrites an existing record (a rejected request past its
	// cooldown) as a fresh pending request, preserving the row so the
	// pair+scope unique index keeps holding.
	Reissue(ctx context.Context, id uuid.UUID, req *entities.ConnectionRequest) error
	// MarkBlocked turns an existing record into a blocked record authored
	// by blocker. Direction is rewritten so FindBlockedBy sees the blocker
	// as the record's from side.
	MarkBlocked(ctx context.Context, id uuid.UUID, blocker, target string) (*entities.ConnectionRequest, error)
	ListByWallet(ctx context.Context, filter ConnectionFilter) ([]*entities.ConnectionRequest, int64, error)
}
