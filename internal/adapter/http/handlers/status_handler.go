package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "certificados_xpto/internal/adapter/http/dto/request"
	response "certificados_xpto/internal/adapter/http/dto/response"
	"certificados_xpto/internal/domain/entities"
	"certificados_xpto/internal/usecase"
	"certificados_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// StatusHandler handles the status poll, the provider webhook, the manual
// force-set override and the open-payments reconciliation view.

type StatusHandler struct {
	usecase usecase.IStatusUseCase
}

func NewStatusHandler(uc usecase.IStatusUseCase) *StatusHandler {
	return &StatusHandler{usecase: uc}
}

// GetPaymentStatus resolves the current status for a billing identifier.
// Unknown identifiers answer PENDING, never 404: the id is client-chosen and
// may predate the upstream record.
func (h *StatusHandler) GetPaymentStatus(c *gin.Context) {
	billingID := firstQuery(c, "billingId", "id", "session")
	if billingID == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_BILLING_ID", "Missing billingId or session parameter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := h.usecase.GetStatus(c.Request.Context(), billingID)
	log.Printf("[status][handler] get billing_id=%s status=%s", billingID, status)

	c.JSON(http.StatusOK, response.PaymentStatusResponse{
		BillingID: billingID,
		Status:    string(status),
	})
}

// Webhook ingests arbitrary provider callbacks.
func (h *StatusHandler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.ProcessWebhook(c.Request.Context(), body, c.ContentType(), c.Query("billingId"))
	if err != nil {
		log.Printf("[status][handler] webhook rejected err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WebhookResponse{
		OK:     true,
		Stored: result.Stored,
		Status: string(result.Status),
	})
}

// ForceSetStatus writes a status directly; the sandbox/testing escape hatch.
func (h *StatusHandler) ForceSetStatus(c *gin.Context) {
	var payload request.ForceSetStatusRequest
	_ = c.ShouldBindJSON(&payload)

	billingID := payload.ResolveBillingID()
	if billingID == "" {
		billingID = strings.TrimSpace(c.Query("billingId"))
	}
	if billingID == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_BILLING_ID", "Missing billingId", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status, err := h.usecase.ForceSetStatus(c.Request.Context(), billingID, payload.Status)
	if err != nil {
		appErr := pkg.NewDomainError("STORE_WRITE_FAILED", "Failed to set status", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ForceSetStatusResponse{
		OK:        true,
		BillingID: billingID,
		Status:    string(status),
	})
}

// ListOpenPayments cross-references an upstream date range against the
// local store and returns the not-yet-paid transactions.
func (h *StatusHandler) ListOpenPayments(c *gin.Context) {
	dateInit := c.Query("dateInit")
	dateEnd := c.Query("dateEnd")
	if dateInit == "" || dateEnd == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_DATE_RANGE", "Missing dateInit or dateEnd (format: YYYY-MM-DD HH:II)", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.ListOpenPayments(c.Request.Context(), dateInit, dateEnd, c.Query("type"), c.Query("index"))
	if err != nil {
		var upErr *entities.UpstreamError
		switch {
		case errors.Is(err, usecase.ErrCredentialsNotConfigured):
			appErr := pkg.NewDomainErrorSimple("CREDENTIALS_NOT_CONFIGURED", "API credentials not configured", http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		case errors.Is(err, usecase.ErrUpstreamUnreachable):
			appErr := pkg.NewDomainErrorSimple("UPSTREAM_UNREACHABLE", "Failed to contact upstream API", http.StatusBadGateway)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		case errors.As(err, &upErr):
			c.JSON(upErr.StatusCode, upErr.Payload)
		default:
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	c.JSON(http.StatusOK, response.ListOpenPaymentsResponse{
		Total:            result.Total,
		Open:             result.Open,
		OpenTransactions: result.OpenTransactions,
	})
}

func firstQuery(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			return v
		}
	}
	return ""
}
