package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
	"github.com/Jayem09/coduxa-sub002/internal/utils"
	"github.com/Jayem09/coduxa-sub002/services/credits"
)

// GetPackages returns the static credit package catalog
func (h *CreditsHandler) GetPackages(c echo.Context) error {
	return c.JSON(http.StatusOK, models.PackagesResponse{
		Success:  true,
		Packages: h.creditsUC.GetPackages(),
	})
}

// GetBalance returns the credit balance for a user
func (h *CreditsHandler) GetBalance(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return utils.BadRequestResponse(c, "userId is required")
	}

	balance, err := h.creditsUC.GetBalance(c.Request().Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("Failed to get credit balance")
		return utils.InternalServerErrorResponse(c, "Failed to get credit balance")
	}

	return c.JSON(http.StatusOK, models.BalanceResponse{
		Success: true,
		Credits: balance,
	})
}

// GetHistory returns recent credit activity for a user
func (h *CreditsHandler) GetHistory(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return utils.BadRequestResponse(c, "userId is required")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.creditsUC.GetHistory(c.Request().Context(), userID, limit)
	if err != nil {
		h.log.WithError(err).Error("Failed to get credit history")
		return utils.InternalServerErrorResponse(c, "Failed to get credit history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Credit history retrieved", entries)
}

// GetPayments returns recent payment records for a user
func (h *CreditsHandler) GetPayments(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return utils.BadRequestResponse(c, "userId is required")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	payments, err := h.creditsUC.GetPayments(c.Request().Context(), userID, limit)
	if err != nil {
		h.log.WithError(err).Error("Failed to get payments")
		return utils.InternalServerErrorResponse(c, "Failed to get payments")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved", payments)
}

// CreateInvoice creates a hosted invoice for a credit purchase
func (h *CreditsHandler) CreateInvoice(c echo.Context) error {
	var req models.InvoiceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.creditsUC.CreateInvoice(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, credits.ErrInvalidRequest) {
			return utils.BadRequestResponse(c, err.Error())
		}
		h.log.WithError(err).Error("Failed to create invoice")
		return utils.InternalServerErrorResponse(c, "Failed to create invoice")
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleWebhook processes an invoice callback from the payment gateway.
// The response carries status only: the gateway retries anything but 2xx.
func (h *CreditsHandler) HandleWebhook(c echo.Context) error {
	var invoice models.XenditInvoice
	if err := c.Bind(&invoice); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	h.log.WithFields(logrus.Fields{
		"invoice_id":  invoice.ID,
		"external_id": invoice.ExternalID,
		"status":      invoice.Status,
	}).Info("Webhook received")

	if err := h.creditsUC.ProcessWebhook(c.Request().Context(), &invoice); err != nil {
		if errors.Is(err, credits.ErrInvalidRequest) {
			h.log.WithError(err).Warn("Rejected webhook payload")
			return c.NoContent(http.StatusBadRequest)
		}
		h.log.WithError(err).Error("Failed to process webhook")
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
