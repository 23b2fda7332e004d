package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug            string    `gorm:"type:varchar(80);uniqueIndex;not null"`
	Name            string    `gorm:"type:varchar(200);not null"`
	Description     *string   `gorm:"type:text"`
	Venue           *string   `gorm:"type:varchar(200)"`
	StartsAt        time.Time `gorm:"not null;index"`
	EndsAt          time.Time `gorm:"not null"`
	OrganizerWallet string    `gorm:"type:varchar(42);not null;index"`
	ContractAddress *string   `gorm:"type:varchar(42)"`
	MetadataIPFS    *string   `gorm:"type:varchar(100)"`
	TicketSupply    int       `gorm:"not null;default:0"`
	TicketPriceWei  string    `gorm:"type:varchar(100);not null;default:'0'"`
	IsActive        bool      `gorm:"not null;default:true;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Event) TableName() string {
	return "events"
}
