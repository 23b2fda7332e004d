package repositories

import (
	"context"

	"github.com/google/uuid"
	"eventlink.backend/internal/domain/entities"
)

// EventRepository defines event data operations
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	ListActive(ctx context.Context, limit, offset int) ([]*entities.Event, int64, error)
}
