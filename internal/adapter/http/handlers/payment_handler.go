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

// PaymentHandler handles payment creation and the boleto approve relay.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment accepts the unified payment intent and returns the
// normalized result. Upstream rejections pass the upstream status through
// with the normalized error body so the client keeps its submitted id.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create start id=%s method=%s", payload.ID, payload.PaymentMethod)

	result, err := h.usecase.CreatePayment(c.Request.Context(), payload.ToEntity())
	if err != nil {
		var upErr *entities.UpstreamError
		if errors.As(err, &upErr) {
			c.JSON(upErr.StatusCode, upErr.Payload)
			return
		}

		var appErr *pkg.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		appErr = mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := result.StatusCode
	if status < 200 || status > 299 {
		status = http.StatusOK
	}
	log.Printf("[payment][handler] create success id=%s billing_id=%s", payload.ID, result.BillingID)

	c.JSON(status, response.FromPaymentResult(result))
}

// ApproveBoleto relays the sandbox approve endpoint; the upstream body and
// status come back untouched.
func (h *PaymentHandler) ApproveBoleto(c *gin.Context) {
	var payload request.ApproveBoletoRequest
	_ = c.ShouldBindJSON(&payload)

	tid := strings.TrimSpace(payload.TID)
	if tid == "" {
		tid = strings.TrimSpace(c.Query("tid"))
	}

	resp, err := h.usecase.ApproveBoleto(c.Request.Context(), tid)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingTID):
			appErr := pkg.NewDomainErrorSimple("MISSING_TID", "Missing tid in request body or query", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		case errors.Is(err, usecase.ErrCredentialsNotConfigured):
			appErr := pkg.NewDomainErrorSimple("CREDENTIALS_NOT_CONFIGURED", "API credentials not configured", http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		default:
			appErr := pkg.NewDomainErrorSimple("UPSTREAM_UNREACHABLE", "Failed to contact the approve endpoint", http.StatusBadGateway)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "text/plain"
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCredentialsNotConfigured):
		return pkg.NewDomainErrorSimple("CREDENTIALS_NOT_CONFIGURED", "API credentials not configured", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrUpstreamUnreachable):
		return pkg.NewDomainErrorSimple("UPSTREAM_UNREACHABLE", "Erro no provedor de pagamento", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
