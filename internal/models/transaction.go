package models

import (
	"time"
)

// Transaction is the single immutable bill finalizing an order. The
// unique index on OrderID is the database-level guard against double
// billing.
type Transaction struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OrderID       uint      `json:"order_id" gorm:"uniqueIndex;not null"`
	BranchID      uint      `json:"branch_id" gorm:"not null"`
	TotalAmount   float64   `json:"total_amount" gorm:"not null"`
	GSTAmount     float64   `json:"gst_amount" gorm:"not null"`
	NetAmount     float64   `json:"net_amount" gorm:"not null"`
	PaymentMethod string    `json:"payment_method" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}
