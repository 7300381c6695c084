package dto

// OrderResponse mirrors a stored order.
type OrderResponse struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"user_id"`
	Product  string  `json:"product"`
	Quantity int64   `json:"quantity"`
	Total    float64 `json:"total"`
	Status   string  `json:"status"`
}

// EnrichedOrderResponse adds the read-time user lookup outcome: a
// UserResponse when the owner was found, an ErrorResponse marker otherwise.
type EnrichedOrderResponse struct {
	OrderResponse
	User any `json:"user"`
}

// CreateOrderRequest describes the POST /orders payload. Quantity defaults
// to 1 when omitted.
type CreateOrderRequest struct {
	UserID   int64    `json:"user_id" binding:"required"`
	Product  string   `json:"product" binding:"required"`
	Quantity *int64   `json:"quantity" binding:"omitempty,gt=0"`
	Total    *float64 `json:"total" binding:"required,gte=0"`
}
