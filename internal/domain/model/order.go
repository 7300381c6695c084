package model

// OrderStatus describes order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// Order describes a purchase order owned by the order service. UserID is a
// foreign reference validated once at creation; the referenced record may
// change or disappear afterwards.
type Order struct {
	ID       int64
	UserID   int64
	Product  string
	Quantity int64
	Total    float64
	Status   OrderStatus
}
