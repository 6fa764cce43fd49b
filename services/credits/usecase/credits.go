package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Jayem09/coduxa-sub002/internal/pkg/database"
	"github.com/Jayem09/coduxa-sub002/internal/pkg/logger"
	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
	"github.com/Jayem09/coduxa-sub002/services/credits"
)

const (
	externalIDPrefix = "topup"
	providerName     = "xendit"

	balanceCacheKeyPrefix  = "credits:balance:"
	webhookDedupeKeyPrefix = "credits:webhook:"

	balanceCacheTTL  = 30 * time.Second
	webhookDedupeTTL = 24 * time.Hour

	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// CreditsUCImpl implements the credits.CreditsUC interface
type CreditsUCImpl struct {
	cfg   *models.Config
	repo  credits.CreditsRepo
	gw    credits.CreditsGW
	cache *database.RedisClient
	log   *logger.AppLogger
}

// NewCreditsUC creates a new credits use case. The cache may be nil when
// Redis is disabled; balance reads then always hit the database.
func NewCreditsUC(cfg *models.Config, repo credits.CreditsRepo, gw credits.CreditsGW, cache *database.RedisClient, log *logger.AppLogger) credits.CreditsUC {
	return &CreditsUCImpl{
		cfg:   cfg,
		repo:  repo,
		gw:    gw,
		cache: cache,
		log:   log,
	}
}

// GetPackages returns the static credit package catalog
func (uc *CreditsUCImpl) GetPackages() map[string]models.CreditPackage {
	return Packages
}

// GetBalance returns the user's credit balance, zero for unknown users
func (uc *CreditsUCImpl) GetBalance(ctx context.Context, userID string) (int, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, balanceCacheKey(userID)); err == nil {
			if balance, err := strconv.Atoi(cached); err == nil {
				return balance, nil
			}
		}
	}

	balance, err := uc.repo.GetBalance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, balanceCacheKey(userID), balance, balanceCacheTTL); err != nil {
			uc.log.WithError(err).Debug("Failed to cache balance")
		}
	}

	return balance, nil
}

// GetHistory returns the user's most recent credit activity
func (uc *CreditsUCImpl) GetHistory(ctx context.Context, userID string, limit int) ([]models.ActivityLogEntry, error) {
	return uc.repo.GetActivityLog(ctx, userID, normalizeLimit(limit))
}

// GetPayments returns the user's most recent payment records
func (uc *CreditsUCImpl) GetPayments(ctx context.Context, userID string, limit int) ([]models.Payment, error) {
	return uc.repo.GetPayments(ctx, userID, normalizeLimit(limit))
}

// CreateInvoice creates a hosted invoice for a credit package purchase.
// The purchase context travels inside the invoice metadata so the webhook
// can recover it without a pending-transaction table.
func (uc *CreditsUCImpl) CreateInvoice(ctx context.Context, req *models.InvoiceRequest) (*models.InvoiceResponse, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", credits.ErrInvalidRequest)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount is required", credits.ErrInvalidRequest)
	}
	if req.Credits <= 0 {
		return nil, fmt.Errorf("%w: credits is required", credits.ErrInvalidRequest)
	}
	if req.PackTitle == "" {
		return nil, fmt.Errorf("%w: packTitle is required", credits.ErrInvalidRequest)
	}

	externalID := fmt.Sprintf("%s-%s-%d", externalIDPrefix, req.UserID, time.Now().UnixMilli())

	invoiceReq := &models.XenditInvoiceRequest{
		ExternalID:      externalID,
		Amount:          req.Amount,
		Description:     fmt.Sprintf("%s - %d credits", req.PackTitle, req.Credits),
		Currency:        uc.cfg.Billing.Currency,
		InvoiceDuration: uc.cfg.Billing.InvoiceExpiry,
		Metadata: &models.InvoiceMetadata{
			UserID:  req.UserID,
			Credits: req.Credits,
			Package: req.PackTitle,
		},
	}

	if frontend := uc.cfg.Server.FrontendURL; frontend != "" {
		invoiceReq.SuccessRedirectURL = frontend + "/credits?payment=success"
		invoiceReq.FailureRedirectURL = frontend + "/credits?payment=failed"
	}

	invoice, err := uc.gw.CreateInvoice(ctx, invoiceReq)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	return &models.InvoiceResponse{
		Success:    true,
		InvoiceURL: invoice.InvoiceURL,
		InvoiceID:  invoice.ID,
		ExternalID: externalID,
		Amount:     req.Amount,
		Credits:    req.Credits,
		Package:    req.PackTitle,
	}, nil
}

// ProcessWebhook applies a paid invoice callback: credit the user, then
// best-effort audit writes. Only the credit increment decides the outcome.
func (uc *CreditsUCImpl) ProcessWebhook(ctx context.Context, invoice *models.XenditInvoice) error {
	if !strings.EqualFold(invoice.Status, models.PaymentStatusPaid) {
		if strings.EqualFold(invoice.Status, models.PaymentStatusExpired) {
			uc.log.WithFields(logrus.Fields{"invoice_id": invoice.ID}).Info("Invoice expired unpaid")
		} else {
			uc.log.WithFields(logrus.Fields{
				"invoice_id": invoice.ID,
				"status":     invoice.Status,
			}).Info("Ignoring non-paid invoice callback")
		}
		return nil
	}

	// The dedupe claim must only outlive this call when the credit increment
	// succeeds; otherwise the gateway's retry would be acknowledged without
	// crediting and the payment lost.
	claimed := false
	if uc.cache != nil && invoice.ID != "" {
		fresh, err := uc.cache.SetNX(ctx, webhookDedupeKeyPrefix+invoice.ID, 1, webhookDedupeTTL)
		if err != nil {
			uc.log.WithError(err).Warn("Webhook dedupe check unavailable, processing anyway")
		} else if !fresh {
			uc.log.WithFields(logrus.Fields{"invoice_id": invoice.ID}).Info("Duplicate webhook delivery acknowledged")
			return nil
		} else {
			claimed = true
		}
	}

	userID, creditAmount := uc.resolvePurchase(invoice)
	if userID == "" {
		uc.releaseDedupe(ctx, claimed, invoice.ID)
		return fmt.Errorf("%w: cannot resolve user from webhook payload", credits.ErrInvalidRequest)
	}
	if creditAmount <= 0 {
		uc.releaseDedupe(ctx, claimed, invoice.ID)
		return fmt.Errorf("%w: resolved credit amount is not positive", credits.ErrInvalidRequest)
	}

	newBalance, err := uc.repo.IncrementCredits(ctx, userID, creditAmount)
	if errors.Is(err, credits.ErrAtomicUnavailable) {
		uc.log.Warn("Atomic increment unavailable, using compare-and-swap fallback")
		newBalance, err = uc.repo.IncrementCreditsCAS(ctx, userID, creditAmount)
	}
	if err != nil {
		uc.releaseDedupe(ctx, claimed, invoice.ID)
		return fmt.Errorf("failed to credit user %s: %w", userID, err)
	}

	uc.log.WithFields(logrus.Fields{
		"user_id":     userID,
		"credits":     creditAmount,
		"new_balance": newBalance,
		"invoice_id":  invoice.ID,
	}).Info("Credits applied")

	uc.recordAudit(ctx, invoice, userID, creditAmount, newBalance)

	return nil
}

// resolvePurchase recovers the purchase context: invoice metadata first,
// otherwise parse the user id out of the external id and derive the credit
// count from the paid amount at the configured rate.
func (uc *CreditsUCImpl) resolvePurchase(invoice *models.XenditInvoice) (string, int) {
	if invoice.Metadata != nil && invoice.Metadata.UserID != "" {
		return invoice.Metadata.UserID, invoice.Metadata.Credits
	}

	userID := parseTopUpExternalID(invoice.ExternalID)

	amount := invoice.PaidAmount
	if amount == 0 {
		amount = invoice.Amount
	}

	var creditAmount int
	if rate := uc.cfg.Billing.PricePerCredit; rate > 0 {
		creditAmount = int(amount / rate)
	}

	return userID, creditAmount
}

// parseTopUpExternalID extracts the user id from a "topup-<user>-<millis>"
// external reference. The user id may itself contain dashes, so the
// timestamp is split off the tail.
func parseTopUpExternalID(externalID string) string {
	rest, ok := strings.CutPrefix(externalID, externalIDPrefix+"-")
	if !ok {
		return ""
	}

	idx := strings.LastIndex(rest, "-")
	if idx <= 0 {
		return ""
	}
	if _, err := strconv.ParseInt(rest[idx+1:], 10, 64); err != nil {
		return ""
	}

	return rest[:idx]
}

// recordAudit appends the payment and activity rows, publishes the activity
// event and drops the cached balance. All of it is advisory: failures are
// logged and never fail the webhook.
func (uc *CreditsUCImpl) recordAudit(ctx context.Context, invoice *models.XenditInvoice, userID string, creditAmount, newBalance int) {
	now := time.Now()

	amount := invoice.PaidAmount
	if amount == 0 {
		amount = invoice.Amount
	}

	currency := invoice.Currency
	if currency == "" {
		currency = uc.cfg.Billing.Currency
	}

	paidAt := invoice.PaidAt
	if paidAt == nil {
		paidAt = &now
	}

	payment := &models.Payment{
		ID:          uuid.New().String(),
		ExternalID:  invoice.ExternalID,
		UserID:      userID,
		Amount:      amount,
		Currency:    currency,
		Description: fmt.Sprintf("Purchased %d credits", creditAmount),
		Status:      models.PaymentStatusPaid,
		Provider:    providerName,
		Metadata: map[string]interface{}{
			"invoice_id":     invoice.ID,
			"payment_method": invoice.PaymentMethod,
			"credits":        creditAmount,
		},
		PaidAt:    paidAt,
		CreatedAt: now,
	}
	if err := uc.repo.CreatePayment(ctx, payment); err != nil {
		uc.log.WithError(err).Warn("Failed to record payment, credits already applied")
	}

	entry := &models.ActivityLogEntry{
		ID:          uuid.New().String(),
		Type:        models.ActivityCreditPurchase,
		UserID:      userID,
		Amount:      amount,
		Description: fmt.Sprintf("Purchased %d credits", creditAmount),
		Metadata: map[string]interface{}{
			"provider":    providerName,
			"external_id": invoice.ExternalID,
			"credits":     creditAmount,
			"new_balance": newBalance,
		},
		CreatedAt: now,
	}
	if err := uc.repo.CreateActivityLog(ctx, entry); err != nil {
		uc.log.WithError(err).Warn("Failed to record activity log entry")
	}

	event := &models.ActivityEvent{
		Type:       models.ActivityCreditPurchase,
		UserID:     userID,
		Credits:    creditAmount,
		Amount:     amount,
		ExternalID: invoice.ExternalID,
		Timestamp:  now.UTC(),
	}
	if err := uc.gw.PublishActivityEvent(event); err != nil {
		uc.log.WithError(err).Warn("Failed to publish activity event")
	}

	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, balanceCacheKey(userID)); err != nil {
			uc.log.WithError(err).Debug("Failed to invalidate cached balance")
		}
	}
}

// releaseDedupe frees a claimed dedupe key after a failed delivery so the
// gateway's retry is processed on its own merits
func (uc *CreditsUCImpl) releaseDedupe(ctx context.Context, claimed bool, invoiceID string) {
	if !claimed {
		return
	}
	if err := uc.cache.Delete(ctx, webhookDedupeKeyPrefix+invoiceID); err != nil {
		uc.log.WithError(err).Warn("Failed to release webhook dedupe key")
	}
}

func balanceCacheKey(userID string) string {
	return balanceCacheKeyPrefix + userID
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return limit
}
