package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Persona is the persistence model for attendee personas. ScopeKey mirrors
// the connection request model.
type Persona struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	WalletAddress  string         `gorm:"type:varchar(42);not null;uniqueIndex:idx_persona_wallet_scope"`
	ScopeKey       string         `gorm:"type:varchar(36);not null;uniqueIndex:idx_persona_wallet_scope"`
	EventID        *uuid.UUID     `gorm:"type:uuid;index"`
	DisplayName    string         `gorm:"type:varchar(100);not null"`
	Bio            *string        `gorm:"type:varchar(1000)"`
	Interests      pq.StringArray `gorm:"type:text[];default:'{}'"`
	LookingFor     pq.StringArray `gorm:"type:text[];default:'{}'"`
	AvatarIPFSHash *string        `gorm:"type:varchar(100)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Persona) TableName() string {
	return "personas"
}
