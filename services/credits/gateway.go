package credits

import (
	"context"

	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Jayem09/coduxa-sub002/services/credits CreditsGW

// CreditsGW defines the credits gateways interface
type CreditsGW interface {
	// Payment gateway
	CreateInvoice(ctx context.Context, req *models.XenditInvoiceRequest) (*models.XenditInvoice, error)

	// Event gateway
	PublishActivityEvent(event *models.ActivityEvent) error
}
