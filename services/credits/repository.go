package credits

import (
	"context"

	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Jayem09/coduxa-sub002/services/credits CreditsRepo

// CreditsRepo defines the interface for credits repository operations
type CreditsRepo interface {
	// GetBalance returns the user's credit balance. A user without a
	// balance row has zero credits, not an error.
	GetBalance(ctx context.Context, userID string) (int, error)

	// IncrementCredits applies a single-statement atomic credit increment
	// and returns the new balance
	IncrementCredits(ctx context.Context, userID string, credits int) (int, error)

	// IncrementCreditsCAS is the fallback increment path: a bounded
	// compare-and-swap retry loop
	IncrementCreditsCAS(ctx context.Context, userID string, credits int) (int, error)

	CreatePayment(ctx context.Context, payment *models.Payment) error
	CreateActivityLog(ctx context.Context, entry *models.ActivityLogEntry) error

	GetActivityLog(ctx context.Context, userID string, limit int) ([]models.ActivityLogEntry, error)
	GetPayments(ctx context.Context, userID string, limit int) ([]models.Payment, error)
}
