package models

import (
	"time"
)

// Activity types recorded in the audit trail
const (
	ActivityCreditPurchase = "credit_purchase"
)

// ActivityLogEntry represents an append-only audit trail record
type ActivityLogEntry struct {
	ID          string                 `json:"id" db:"id"`
	Type        string                 `json:"type" db:"type"`
	UserID      string                 `json:"user_id" db:"user_id"`
	Amount      int64                  `json:"amount" db:"amount"`
	Description string                 `json:"description" db:"description"`
	Metadata    map[string]interface{} `json:"metadata" db:"metadata"`
	CreatedAt   time.Time              `json:"created_at" db:"created_at"`
}

// ActivityEvent is the message published after a successful credit purchase
type ActivityEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Credits    int       `json:"credits"`
	Amount     int64     `json:"amount"`
	ExternalID string    `json:"external_id"`
	Timestamp  time.Time `json:"timestamp"`
}
