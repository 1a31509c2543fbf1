package models

import (
	"time"
)

type Customer struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	TotalSpent float64   `json:"total_spent" gorm:"default:0"`
	Visits     int       `json:"visits" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
