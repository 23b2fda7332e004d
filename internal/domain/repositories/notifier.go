package repositories

import (
	"context"

	"eventlink.backend/internal/domain/entities"
)

// Notifier delivers notifications to wallets. Implementations are
// fire-and-forget: the caller logs failures but never propagates them.
type Notifier interface {
	Notify(ctx context.Context, wallet string, kind entities.NotificationType, payload map[string]interface{}) error
}
