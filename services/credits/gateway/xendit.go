package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
)

const (
	invoicesPath = "/v2/invoices"

	defaultTimeout = 15 * time.Second
)

// XenditClient talks to the Xendit invoice API
type XenditClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewXenditClient creates a new Xendit API client
func NewXenditClient(config models.XenditConfig) *XenditClient {
	return &XenditClient{
		baseURL:   config.BaseURL,
		secretKey: config.SecretKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// CreateInvoice creates a hosted invoice and returns the gateway's
// invoice representation
func (x *XenditClient) CreateInvoice(ctx context.Context, req *models.XenditInvoiceRequest) (*models.XenditInvoice, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, x.baseURL+invoicesPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build invoice request: %w", err)
	}

	// Xendit authenticates with the secret key as basic auth username
	httpReq.SetBasicAuth(x.secretKey, "")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call payment gateway: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("payment gateway returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var invoice models.XenditInvoice
	if err := json.Unmarshal(respBody, &invoice); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	return &invoice, nil
}
