package models

import (
	"time"
)

type Branch struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
