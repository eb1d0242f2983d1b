package handlers

import (
	"net/http"

	"certificados_xpto/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the certificate product catalog so the storefront
// does not hardcode it.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListCertificates(c *gin.Context) {
	c.JSON(http.StatusOK, entities.CertificateCatalog())
}
