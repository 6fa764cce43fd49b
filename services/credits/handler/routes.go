package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Jayem09/coduxa-sub002/internal/pkg/logger"
	"github.com/Jayem09/coduxa-sub002/internal/pkg/middleware"
	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
	"github.com/Jayem09/coduxa-sub002/services/credits"
)

// CreditsHandler handles HTTP requests for credit operations
type CreditsHandler struct {
	creditsUC credits.CreditsUC
	cfg       *models.Config
	log       *logger.AppLogger
}

// NewCreditsHandler creates a new credits handler
func NewCreditsHandler(creditsUC credits.CreditsUC, cfg *models.Config, log *logger.AppLogger) *CreditsHandler {
	return &CreditsHandler{
		creditsUC: creditsUC,
		cfg:       cfg,
		log:       log,
	}
}

// RegisterRoutes registers the credits routes
func (h *CreditsHandler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	e.GET("/packages", h.GetPackages)

	// Gateway-initiated callback, guarded by the shared callback token
	e.POST("/webhook", h.HandleWebhook, middleware.VerifyCallbackToken(h.cfg.Xendit.CallbackToken))

	// User-facing routes; bearer auth applies when a JWT secret is configured
	protected := e.Group("")
	if h.cfg.JWT.Secret != "" {
		protected = e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	}
	protected.GET("/credits/:userId", h.GetBalance)
	protected.GET("/credits/:userId/history", h.GetHistory)
	protected.GET("/payments/:userId", h.GetPayments)
	protected.POST("/create-invoice", h.CreateInvoice)
}
