package handlers

import (
	"net/http"

	response "major_home/internal/adapter/http/dto/response"
	"major_home/internal/domain/pricing"
	"major_home/pkg"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the static pricing catalog to the wizard and the
// services page. There is no use case behind it; the catalog is read-only
// process configuration.

type ServiceHandler struct{}

func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{}
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServices(pricing.Services()))
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	def, ok := pricing.LookupService(pricing.ServiceType(c.Param("slug")))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Unknown service", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(def))
}
