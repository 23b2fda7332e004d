package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Persona represents a user-facing networking profile for an attendee,
// distinct from the underlying wallet identity. A persona is scoped to an
// event, or global when EventID is absent.
type Persona struct {
	ID             uuid.UUID   `json:"id"`
	WalletAddress  string      `json:"walletAddress"`
	EventID        *uuid.UUID  `json:"eventId,omitempty"`
	DisplayName    string      `json:"displayName"`
	Bio            null.String `json:"bio,omitempty"`
	Interests      []string    `json:"interests"`
	LookingFor     []string    `json:"lookingFor"`
	AvatarIPFSHash null.String `json:"avatarIpfsHash,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
	DeletedAt      *time.Time  `json:"-"`
}

// UpsertPersonaInput represents input for creating or updating a persona
type UpsertPersonaInput struct {
	EventID        *string  `json:"eventId,omitempty"`
	DisplayName    string   `json:"displayName" binding:"required,min=1,max=100"`
	Bio            string   `json:"bio,omitempty" binding:"max=1000"`
	Interests      []string `json:"interests" binding:"max=50"`
	LookingFor     []string `json:"lookingFor" binding:"max=20"`
	AvatarIPFSHash string   `json:"avatarIpfsHash,omitempty"`
}
