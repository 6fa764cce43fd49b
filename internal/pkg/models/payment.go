package models

import (
	"time"
)

// Payment statuses as reported by the gateway
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
	PaymentStatusExpired = "EXPIRED"
)

// Payment represents an append-only payment record
type Payment struct {
	ID          string                 `json:"id" db:"id"`
	ExternalID  string                 `json:"external_id" db:"external_id"`
	UserID      string                 `json:"user_id" db:"user_id"`
	Amount      int64                  `json:"amount" db:"amount"`
	Currency    string                 `json:"currency" db:"currency"`
	Description string                 `json:"description" db:"description"`
	Status      string                 `json:"status" db:"status"`
	Provider    string                 `json:"provider" db:"provider"`
	Metadata    map[string]interface{} `json:"metadata" db:"metadata"`
	PaidAt      *time.Time             `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt   time.Time              `json:"created_at" db:"created_at"`
}

// InvoiceRequest is the request body for invoice creation
type InvoiceRequest struct {
	UserID    string `json:"userId"`
	Amount    int64  `json:"amount"`
	Credits   int    `json:"credits"`
	PackTitle string `json:"packTitle"`
}

// InvoiceResponse is the response shape for invoice creation
type InvoiceResponse struct {
	Success    bool   `json:"success"`
	InvoiceURL string `json:"invoice_url"`
	InvoiceID  string `json:"invoice_id"`
	ExternalID string `json:"external_id"`
	Amount     int64  `json:"amount"`
	Credits    int    `json:"credits"`
	Package    string `json:"package"`
}

// InvoiceMetadata is embedded in the gateway invoice so the webhook
// can recover purchase context without a pending-transaction table
type InvoiceMetadata struct {
	UserID  string `json:"user_id"`
	Credits int    `json:"credits"`
	Package string `json:"package,omitempty"`
}

// XenditInvoiceRequest is the request body for the Xendit create-invoice API
type XenditInvoiceRequest struct {
	ExternalID         string           `json:"external_id"`
	Amount             int64            `json:"amount"`
	Description        string           `json:"description"`
	Currency           string           `json:"currency,omitempty"`
	InvoiceDuration    int              `json:"invoice_duration,omitempty"`
	SuccessRedirectURL string           `json:"success_redirect_url,omitempty"`
	FailureRedirectURL string           `json:"failure_redirect_url,omitempty"`
	Metadata           *InvoiceMetadata `json:"metadata,omitempty"`
}

// XenditInvoice is the gateway's invoice representation, also delivered
// as the webhook callback payload
type XenditInvoice struct {
	ID            string           `json:"id"`
	ExternalID    string           `json:"external_id"`
	UserID        string           `json:"user_id,omitempty"`
	Status        string           `json:"status"`
	Amount        int64            `json:"amount"`
	PaidAmount    int64            `json:"paid_amount,omitempty"`
	Currency      string           `json:"currency,omitempty"`
	Description   string           `json:"description,omitempty"`
	InvoiceURL    string           `json:"invoice_url,omitempty"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	PaidAt        *time.Time       `json:"paid_at,omitempty"`
	Metadata      *InvoiceMetadata `json:"metadata,omitempty"`
}
