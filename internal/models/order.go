package models

import (
	"time"
)

type Order struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	BranchID    uint      `json:"branch_id" gorm:"not null;index"`
	OrderType   string    `json:"order_type" gorm:"not null"` // DINE_IN, COUNTER, DELIVERY
	TableNo     string    `json:"table_no"`
	CustomerID  *uint     `json:"customer_id"`
	TotalAmount float64   `json:"total_amount" gorm:"default:0"`
	GSTAmount   float64   `json:"gst_amount" gorm:"default:0"`
	NetAmount   float64   `json:"net_amount" gorm:"default:0"`
	Status      string    `json:"status" gorm:"default:'PENDING'"` // PENDING, IN_PROGRESS, BILLED, CANCELLED
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderInProgress OrderStatus = "IN_PROGRESS"
	OrderBilled     OrderStatus = "BILLED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "DINE_IN"
	OrderTypeCounter  OrderType = "COUNTER"
	OrderTypeDelivery OrderType = "DELIVERY"
)

// Direct status updates may only walk these edges. BILLED is absent on
// purpose: an order becomes BILLED only through bill generation, so that
// a BILLED order always has exactly one transaction behind it.
var statusTransitions = map[string][]string{
	string(OrderPending):    {string(OrderInProgress), string(OrderCancelled)},
	string(OrderInProgress): {string(OrderCancelled)},
}

// ValidStatusTransition reports whether a direct update from one order
// status to another is allowed.
func ValidStatusTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderOpen reports whether an order still accepts items.
func OrderOpen(status string) bool {
	return status == string(OrderPending) || status == string(OrderInProgress)
}

// ValidOrderType reports whether the given order type is one of the
// supported kinds.
func ValidOrderType(orderType string) bool {
	switch OrderType(orderType) {
	case OrderTypeDineIn, OrderTypeCounter, OrderTypeDelivery:
		return true
	}
	return false
}
