package routes

import (
	"net/http"

	"certificados_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCreatePayment    = "/create-payment"
	PathGetPaymentStatus = "/get-payment-status"
	PathWebhook          = "/webhook"
	PathForceSetStatus   = "/force-set-status"
	PathListOpenPayments = "/list-open-payments"
	PathApproveBoleto    = "/approve-boleto"
	PathCertificates     = "/certificates"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, statusHandler *handlers.StatusHandler, catalogHandler *handlers.CatalogHandler) {
	rg.POST(PathCreatePayment, paymentHandler.CreatePayment)
	rg.POST(PathApproveBoleto, paymentHandler.ApproveBoleto)

	rg.GET(PathGetPaymentStatus, statusHandler.GetPaymentStatus)
	rg.POST(PathWebhook, statusHandler.Webhook)
	rg.POST(PathForceSetStatus, statusHandler.ForceSetStatus)
	rg.GET(PathListOpenPayments, statusHandler.ListOpenPayments)

	rg.GET(PathCertificates, catalogHandler.ListCertificates)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
