package gateway

import (
	"context"

	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
	nsqpkg "github.com/Jayem09/coduxa-sub002/internal/pkg/nsq"
	"github.com/Jayem09/coduxa-sub002/services/credits"
)

// CreditsGW implements the credits.CreditsGW interface
type CreditsGW struct {
	xendit   *XenditClient
	producer *nsqpkg.Producer
	topic    string
}

// NewCreditsGW creates a new credits gateway. The producer may be nil when
// event publishing is disabled.
func NewCreditsGW(xendit *XenditClient, producer *nsqpkg.Producer, topic string) credits.CreditsGW {
	return &CreditsGW{
		xendit:   xendit,
		producer: producer,
		topic:    topic,
	}
}

// CreateInvoice creates a hosted invoice with the payment gateway
func (g *CreditsGW) CreateInvoice(ctx context.Context, req *models.XenditInvoiceRequest) (*models.XenditInvoice, error) {
	return g.xendit.CreateInvoice(ctx, req)
}

// PublishActivityEvent publishes a credit activity event
func (g *CreditsGW) PublishActivityEvent(event *models.ActivityEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(g.topic, event)
}
