package models

type Inventory struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	BranchID      uint   `json:"branch_id" gorm:"not null;index"`
	ItemName      string `json:"item_name" gorm:"not null"`
	Stock         int    `json:"stock" gorm:"default:0"`
	LowStockAlert int    `json:"low_stock_alert" gorm:"default:5"`
}
