package entity

import "time"

// Order statuses, forward-only: preparing -> on-the-way -> delivered.
const (
	StatusPreparing = "preparing"
	StatusOnTheWay  = "on-the-way"
	StatusDelivered = "delivered"
)

// Order is synthesized at checkout and held in memory until the next order
// replaces it. Status is not stored here; the tracking simulator owns it.
type Order struct {
	ID         string     `json:"id"`
	Items      []CartItem `json:"items"`
	Restaurant Restaurant `json:"restaurant"`

	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`

	PaymentMethod     string    `json:"paymentMethod"`
	DeliveryAddress   string    `json:"deliveryAddress"`
	OrderTime         time.Time `json:"orderTime"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}
