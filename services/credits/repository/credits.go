package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
	"github.com/Jayem09/coduxa-sub002/services/credits"
)

const (
	// pgUndefinedFunction is raised when the increment_user_credits
	// function is missing from the schema
	pgUndefinedFunction = "42883"

	casMaxAttempts = 5
)

// CreditsRepository implements the credits.CreditsRepo interface
type CreditsRepository struct {
	db *sqlx.DB
}

// NewCreditsRepository creates a new credits repository
func NewCreditsRepository(db *sqlx.DB) credits.CreditsRepo {
	return &CreditsRepository{
		db: db,
	}
}

// GetBalance returns the user's credit balance. A user without a balance
// row is a new user with zero credits.
func (r *CreditsRepository) GetBalance(ctx context.Context, userID string) (int, error) {
	var balance int
	err := r.db.GetContext(ctx, &balance, `
		SELECT credits FROM user_credits WHERE user_id = $1
	`, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get credit balance: %w", err)
	}

	return balance, nil
}

// IncrementCredits applies the atomic increment via the database function
// and returns the new balance
func (r *CreditsRepository) IncrementCredits(ctx context.Context, userID string, amount int) (int, error) {
	var balance int
	err := r.db.GetContext(ctx, &balance, `
		SELECT increment_user_credits($1, $2)
	`, userID, amount)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedFunction {
			return 0, credits.ErrAtomicUnavailable
		}
		return 0, fmt.Errorf("failed to increment credits: %w", err)
	}

	return balance, nil
}

// IncrementCreditsCAS is the fallback increment path: a bounded
// compare-and-swap loop. The guarded update only applies when the balance
// still matches the one read, so concurrent deliveries retry instead of
// overwriting each other.
func (r *CreditsRepository) IncrementCreditsCAS(ctx context.Context, userID string, amount int) (int, error) {
	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		var current int
		err := r.db.GetContext(ctx, &current, `
			SELECT credits FROM user_credits WHERE user_id = $1
		`, userID)

		if errors.Is(err, sql.ErrNoRows) {
			res, err := r.db.ExecContext(ctx, `
				INSERT INTO user_credits (user_id, credits, updated_at)
				VALUES ($1, $2, NOW())
				ON CONFLICT (user_id) DO NOTHING
			`, userID, amount)
			if err != nil {
				return 0, fmt.Errorf("failed to insert credit balance: %w", err)
			}

			inserted, err := res.RowsAffected()
			if err != nil {
				return 0, fmt.Errorf("failed to get rows affected: %w", err)
			}
			if inserted == 1 {
				return amount, nil
			}
			// Row appeared concurrently, retry the update path
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read credit balance: %w", err)
		}

		res, err := r.db.ExecContext(ctx, `
			UPDATE user_credits
			SET credits = credits + $2, updated_at = NOW()
			WHERE user_id = $1 AND credits = $3
		`, userID, amount, current)
		if err != nil {
			return 0, fmt.Errorf("failed to update credit balance: %w", err)
		}

		updated, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get rows affected: %w", err)
		}
		if updated == 1 {
			return current + amount, nil
		}
	}

	return 0, fmt.Errorf("credit increment lost the update race after %d attempts", casMaxAttempts)
}

// CreatePayment creates a new payment record
func (r *CreditsRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	metadata, err := json.Marshal(payment.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal payment metadata: %w", err)
	}

	paymentData := map[string]interface{}{
		"id":          payment.ID,
		"external_id": payment.ExternalID,
		"user_id":     payment.UserID,
		"amount":      payment.Amount,
		"currency":    payment.Currency,
		"description": payment.Description,
		"status":      payment.Status,
		"provider":    payment.Provider,
		"metadata":    metadata,
		"paid_at":     payment.PaidAt,
		"created_at":  payment.CreatedAt,
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO payments (
			id, external_id, user_id, amount, currency,
			description, status, provider, metadata, paid_at, created_at
		) VALUES (
			:id, :external_id, :user_id, :amount, :currency,
			:description, :status, :provider, :metadata, :paid_at, :created_at
		)
	`, paymentData)

	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

// CreateActivityLog creates a new activity log entry
func (r *CreditsRepository) CreateActivityLog(ctx context.Context, entry *models.ActivityLogEntry) error {
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal activity metadata: %w", err)
	}

	entryData := map[string]interface{}{
		"id":          entry.ID,
		"type":        entry.Type,
		"user_id":     entry.UserID,
		"amount":      entry.Amount,
		"description": entry.Description,
		"metadata":    metadata,
		"created_at":  entry.CreatedAt,
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO activity_log (
			id, type, user_id, amount, description, metadata, created_at
		) VALUES (
			:id, :type, :user_id, :amount, :description, :metadata, :created_at
		)
	`, entryData)

	if err != nil {
		return fmt.Errorf("failed to create activity log entry: %w", err)
	}

	return nil
}

type activityRow struct {
	ID          string       `db:"id"`
	Type        string       `db:"type"`
	UserID      string       `db:"user_id"`
	Amount      int64        `db:"amount"`
	Description string       `db:"description"`
	Metadata    []byte       `db:"metadata"`
	CreatedAt   sql.NullTime `db:"created_at"`
}

// GetActivityLog returns the user's most recent activity entries
func (r *CreditsRepository) GetActivityLog(ctx context.Context, userID string, limit int) ([]models.ActivityLogEntry, error) {
	var rows []activityRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, type, user_id, amount, description, metadata, created_at
		FROM activity_log
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity log: %w", err)
	}

	entries := make([]models.ActivityLogEntry, 0, len(rows))
	for _, row := range rows {
		entry := models.ActivityLogEntry{
			ID:          row.ID,
			Type:        row.Type,
			UserID:      row.UserID,
			Amount:      row.Amount,
			Description: row.Description,
			CreatedAt:   row.CreatedAt.Time,
		}
		if len(row.Metadata) > 0 {
			if err := json.Unmarshal(row.Metadata, &entry.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal activity metadata: %w", err)
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

type paymentRow struct {
	ID          string       `db:"id"`
	ExternalID  string       `db:"external_id"`
	UserID      string       `db:"user_id"`
	Amount      int64        `db:"amount"`
	Currency    string       `db:"currency"`
	Description string       `db:"description"`
	Status      string       `db:"status"`
	Provider    string       `db:"provider"`
	Metadata    []byte       `db:"metadata"`
	PaidAt      sql.NullTime `db:"paid_at"`
	CreatedAt   sql.NullTime `db:"created_at"`
}

// GetPayments returns the user's most recent payment records
func (r *CreditsRepository) GetPayments(ctx context.Context, userID string, limit int) ([]models.Payment, error) {
	var rows []paymentRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, external_id, user_id, amount, currency,
		       description, status, provider, metadata, paid_at, created_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	payments := make([]models.Payment, 0, len(rows))
	for _, row := range rows {
		payment := models.Payment{
			ID:          row.ID,
			ExternalID:  row.ExternalID,
			UserID:      row.UserID,
			Amount:      row.Amount,
			Currency:    row.Currency,
			Description: row.Description,
			Status:      row.Status,
			Provider:    row.Provider,
			CreatedAt:   row.CreatedAt.Time,
		}
		if row.PaidAt.Valid {
			paidAt := row.PaidAt.Time
			payment.PaidAt = &paidAt
		}
		if len(row.Metadata) > 0 {
			if err := json.Unmarshal(row.Metadata, &payment.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal payment metadata: %w", err)
			}
		}
		payments = append(payments, payment)
	}

	return payments, nil
}
