package credits

import (
	"context"

	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Jayem09/coduxa-sub002/services/credits CreditsUC

// CreditsUC defines the interface for credits use cases
type CreditsUC interface {
	GetPackages() map[string]models.CreditPackage
	GetBalance(ctx context.Context, userID string) (int, error)
	GetHistory(ctx context.Context, userID string, limit int) ([]models.ActivityLogEntry, error)
	GetPayments(ctx context.Context, userID string, limit int) ([]models.Payment, error)
	CreateInvoice(ctx context.Context, req *models.InvoiceRequest) (*models.InvoiceResponse, error)
	ProcessWebhook(ctx context.Context, invoice *models.XenditInvoice) error
}
