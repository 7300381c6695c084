package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/micromart/internal/server/http/dto"
)

const serviceVersion = "1.0.0"

// ServiceHandler serves the root and health endpoints shared by both
// services.
type ServiceHandler struct {
	name string
}

// NewServiceHandler constructs ServiceHandler for the named service.
func NewServiceHandler(name string) *ServiceHandler {
	return &ServiceHandler{name: name}
}

// Root handles GET /.
func (h *ServiceHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceInfoResponse{Service: h.name, Status: "running", Version: serviceVersion})
}

// Health handles GET /health.
func (h *ServiceHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy"})
}
