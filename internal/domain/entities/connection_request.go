package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ConnectionStatus represents the lifecycle state of a connection request
type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "PENDING"
	ConnectionAccepted ConnectionStatus = "ACCEPTED"
	ConnectionRejected ConnectionStatus = "REJECTED"
	ConnectionBlocked  ConnectionStatus = "BLOCKED"
)

// RejectionCooldown is how long a rejected pair must wait before a new request
const RejectionCooldown = 30 * 24 * time.Hour

// ConnectionRequest represents a directed connection request between two wallets,
// optionally scoped to an event. Absence of EventID means the request is global.
type ConnectionRequest struct {
	ID         uuid.UUID        `json:"id"`
	FromWallet string           `json:"fromWallet"`
	ToWallet   string           `json:"toWallet"`
	EventID    *uuid.UUID       `json:"eventId,omitempty"`
	IsGlobal   bool             `json:"isGlobal"`
	Status     ConnectionStatus `json:"status"`
	Message    null.String      `json:"message,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
	DeletedAt  *time.Time       `json:"-"`
}

// Involves reports whether the given wallet is either side of the request
func (r *ConnectionRequest) Involves(wallet string) bool {
	return r.FromWallet == wallet || r.ToWallet == wallet
}

// OtherWallet returns the counterparty of the given wallet, if it is involved
func (r *ConnectionRequest) OtherWallet(wallet string) (string, bool) {
	switch wallet {
	case r.FromWallet:
		return r.ToWallet, true
	case r.ToWallet:
		return r.FromWallet, true
	}
	return "", false
}

// IsTerminal reports whether no further transitions are allowed for this record.
// Rejected records are only terminal while the cooldown is active.
func (r *ConnectionRequest) IsTerminal(now time.Time) bool {
	switch r.Status {
	case ConnectionAccepted, ConnectionBlocked:
		return true
	case ConnectionRejected:
		return now.Before(r.UpdatedAt.Add(RejectionCooldown))
	}
	return false
}

// CooldownRemainingDays returns the whole days left in the rejection cooldown,
// rounded up. Zero means the cooldown has expired or never applied.
func (r *ConnectionRequest) CooldownRemainingDays(now time.Time) int {
	if r.Status != ConnectionRejected {
		return 0
	}
	remaining := r.UpdatedAt.Add(RejectionCooldown).Sub(now)
	if remaining <= 0 {
		return 0
	}
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// RequestConnectionInput represents input for sending a connection request
type RequestConnectionInput struct {
	ToWallet string  `json:"toWallet" binding:"required"`
	EventID  *string `json:"eventId,omitempty"`
	Message  string  `json:"message,omitempty" binding:"max=500"`
}

// BlockConnectionInput represents input for blocking a wallet
type BlockConnectionInput struct {
	Wallet  string  `json:"wallet" binding:"required"`
	EventID *string `json:"eventId,omitempty"`
}
