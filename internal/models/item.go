package models

type Item struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	BranchID    uint    `json:"branch_id" gorm:"not null;index"`
	Name        string  `json:"name" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null"`
	GSTRate     float64 `json:"gst_rate" gorm:"default:0"`
	Category    string  `json:"category"`
	IsAvailable bool    `json:"is_available" gorm:"default:true"`
}
