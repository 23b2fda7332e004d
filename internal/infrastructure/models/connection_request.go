package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConnectionRequest is the persistence model for connection requests.
// PairKey is the lexicographic min:max of the normalized wallet pair and
// ScopeKey is the event id or "global"; together they enforce the
// one-live-record-per-pair-and-scope invariant at the store level.
type ConnectionRequest struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FromWallet string     `gorm:"type:varchar(42);not null;index"`
	ToWallet   string     `gorm:"type:varchar(42);not null;index"`
	EventID    *uuid.UUID `gorm:"type:uuid;index"`
	IsGlobal   bool       `gorm:"not null;default:false"`
	PairKey    string     `gorm:"type:varchar(85);not null;uniqueIndex:idx_connection_pair_scope"`
	ScopeKey   string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_connection_pair_scope"`
	Status     string     `gorm:"type:varchar(20);not null;index"`
	Message    *string    `gorm:"type:varchar(500)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (ConnectionRequest) TableName() string {
	return "connection_requests"
}
