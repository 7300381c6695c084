package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/micromart/internal/domain/errors"
	"github.com/polkiloo/micromart/internal/domain/model"
	"github.com/polkiloo/micromart/internal/server/http/dto"
	"github.com/polkiloo/micromart/internal/usecase"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Get handles GET /orders/{id}. A directory failure degrades the embedded
// user field but never the response status.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Order not found"})
		return
	}
	enriched, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Order not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toEnrichedOrderResponse(*enriched))
}

// List handles GET /orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// ListForUser handles GET /orders/user/{id}. The user's existence gates
// the whole request: 404 when unknown, 503 when the directory cannot
// answer.
func (h *OrderHandler) ListForUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
		return
	}
	orders, err := h.facade.OrdersForUser(c.Request.Context(), id)
	if err != nil {
		writeGateError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid order payload"})
		return
	}

	input := usecase.CreateOrderInput{UserID: req.UserID, Product: req.Product, Total: *req.Total}
	if req.Quantity != nil {
		input.Quantity = *req.Quantity
	}
	order, err := h.facade.CreateOrder(c.Request.Context(), input)
	if err != nil {
		writeGateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// writeGateError maps dependency-gate failures onto HTTP statuses.
func writeGateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
	case errors.Is(err, domainErrors.ErrUserInactive):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "User is not active"})
	case errors.Is(err, domainErrors.ErrDirectoryUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "User service unavailable"})
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:       o.ID,
		UserID:   o.UserID,
		Product:  o.Product,
		Quantity: o.Quantity,
		Total:    o.Total,
		Status:   string(o.Status),
	}
}

func toEnrichedOrderResponse(e model.EnrichedOrder) dto.EnrichedOrderResponse {
	resp := dto.EnrichedOrderResponse{OrderResponse: toOrderResponse(e.Order)}
	switch e.User.Outcome {
	case model.LookupFound:
		resp.User = toUserResponse(*e.User.User)
	case model.LookupMissing:
		resp.User = dto.ErrorResponse{Error: "User not found"}
	default:
		resp.User = dto.ErrorResponse{Error: "User service unavailable"}
	}
	return resp
}
