package models

import (
	"time"
)

// OrderItem is an immutable record of what was sold at what price. The
// price and GST rate are copied out of the menu at attach time and never
// follow later menu edits.
type OrderItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"not null;index"`
	ItemID    uint      `json:"item_id" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	GSTRate   float64   `json:"gst_rate"`
	CreatedAt time.Time `json:"created_at"`
}
