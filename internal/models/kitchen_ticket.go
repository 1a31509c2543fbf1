package models

import (
	"time"
)

// KitchenTicket is one KOT sent to the kitchen. Every attach of an item
// to an order produces its own ticket; repeated attaches of the same
// menu item are separate tickets, never merged quantities.
type KitchenTicket struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"not null;index"`
	ItemID    uint      `json:"item_id" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Status    string    `json:"status" gorm:"column:kot_status;default:'PENDING'"` // PENDING, COMPLETED
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the original restaurant schema's table name.
func (KitchenTicket) TableName() string {
	return "kot"
}

type TicketStatus string

const (
	TicketPending   TicketStatus = "PENDING"
	TicketCompleted TicketStatus = "COMPLETED"
)
