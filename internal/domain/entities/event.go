package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Event represents a ticketed event whose tickets live in an on-chain contract
type Event struct {
	ID              uuid.UUID   `json:"id"`
	Slug            string      `json:"slug"`
	Name            string      `json:"name"`
	Description     null.String `json:"description,omitempty"`
	Venue           null.String `json:"venue,omitempty"`
	StartsAt        time.Time   `json:"startsAt"`
	EndsAt          time.Time   `json:"endsAt"`
	OrganizerWallet string      `json:"organizerWallet"`
	ContractAddress null.String `json:"contractAddress,omitempty"`
	MetadataIPFS    null.String `json:"metadataIpfsHash,omitempty"`
	TicketSupply    int         `json:"ticketSupply"`
	TicketPriceWei  string      `json:"ticketPriceWei"`
	IsActive        bool        `json:"isActive"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	DeletedAt       *time.Time  `json:"-"`
}

// CreateEventInput represents input for creating an event
type CreateEventInput struct {
	Slug            string    `json:"slug" binding:"required,min=3,max=80"`
	Name            string    `json:"name" binding:"required,min=1,max=200"`
	Description     string    `json:"description,omitempty" binding:"max=5000"`
	Venue           string    `json:"venue,omitempty" binding:"max=200"`
	StartsAt        time.Time `json:"startsAt" binding:"required"`
	EndsAt          time.Time `json:"endsAt" binding:"required"`
	ContractAddress string    `json:"contractAddress,omitempty"`
	MetadataIPFS    string    `json:"metadataIpfsHash,omitempty"`
	TicketSupply    int       `json:"ticketSupply" binding:"min=0"`
	TicketPriceWei  string    `json:"ticketPriceWei,omitempty"`
}
