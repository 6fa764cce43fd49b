package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
)

func TestCreateInvoice_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/invoices", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		// Secret key rides as the basic auth username with an empty password
		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "xnd_test_secret", username)
		assert.Empty(t, password)

		var req models.XenditInvoiceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "topup-u1-1700000000000", req.ExternalID)
		assert.Equal(t, int64(240000), req.Amount)
		require.NotNil(t, req.Metadata)
		assert.Equal(t, "u1", req.Metadata.UserID)
		assert.Equal(t, 40, req.Metadata.Credits)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.XenditInvoice{
			ID:         "inv-123",
			ExternalID: req.ExternalID,
			Status:     models.PaymentStatusPending,
			Amount:     req.Amount,
			InvoiceURL: "https://checkout.xendit.co/web/inv-123",
			Metadata:   req.Metadata,
		})
	}))
	defer server.Close()

	client := NewXenditClient(models.XenditConfig{
		BaseURL:   server.URL,
		SecretKey: "xnd_test_secret",
	})

	invoice, err := client.CreateInvoice(context.Background(), &models.XenditInvoiceRequest{
		ExternalID:  "topup-u1-1700000000000",
		Amount:      240000,
		Description: "Popular Pack",
		Metadata: &models.InvoiceMetadata{
			UserID:  "u1",
			Credits: 40,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "inv-123", invoice.ID)
	assert.Equal(t, "https://checkout.xendit.co/web/inv-123", invoice.InvoiceURL)
	assert.Equal(t, models.PaymentStatusPending, invoice.Status)
}

func TestCreateInvoice_GatewayRejectsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_code":"API_VALIDATION_ERROR"}`))
	}))
	defer server.Close()

	client := NewXenditClient(models.XenditConfig{
		BaseURL:   server.URL,
		SecretKey: "xnd_test_secret",
	})

	invoice, err := client.CreateInvoice(context.Background(), &models.XenditInvoiceRequest{
		ExternalID: "topup-u1-1700000000000",
		Amount:     240000,
	})

	assert.Error(t, err)
	assert.Nil(t, invoice)
	assert.Contains(t, err.Error(), "payment gateway returned status 400")
	assert.Contains(t, err.Error(), "API_VALIDATION_ERROR")
}

func TestCreateInvoice_GatewayUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewXenditClient(models.XenditConfig{
		BaseURL:   server.URL,
		SecretKey: "xnd_test_secret",
	})

	invoice, err := client.CreateInvoice(context.Background(), &models.XenditInvoiceRequest{
		ExternalID: "topup-u1-1700000000000",
		Amount:     240000,
	})

	assert.Error(t, err)
	assert.Nil(t, invoice)
	assert.Contains(t, err.Error(), "failed to call payment gateway")
}
