package entities

import "time"

// NotificationType identifies the kind of notification being delivered
type NotificationType string

const (
	NotificationConnectionRequest  NotificationType = "CONNECTION_REQUEST"
	NotificationConnectionAccepted NotificationType = "CONNECTION_ACCEPTED"
	NotificationConnectionRejected NotificationType = "CONNECTION_REJECTED"
)

// Notification is an outbound message addressed to a wallet. Delivery is
// fire-and-forget; a failed delivery never affects the triggering action.
type Notification struct {
	Wallet    string                 `json:"wallet"`
	Type      NotificationType       `json:"type"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}
