package repository

import (
	"errors"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	UpsertStock(entry *models.Inventory) error
	GetLowStock(branchID uint) ([]models.Inventory, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

// UpsertStock creates the stock row for a branch item or overwrites its
// counts when one already exists.
func (r *inventoryRepository) UpsertStock(entry *models.Inventory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Inventory
		err := tx.Where("branch_id = ? AND item_name = ?", entry.BranchID, entry.ItemName).
			First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return translate(tx.Create(entry).Error)
		}
		if err != nil {
			return translate(err)
		}

		entry.ID = existing.ID
		return translate(tx.Save(entry).Error)
	})
}

func (r *inventoryRepository) GetLowStock(branchID uint) ([]models.Inventory, error) {
	var entries []models.Inventory
	err := r.db.Where("branch_id = ? AND stock <= low_stock_alert", branchID).
		Order("stock ASC").
		Find(&entries).Error
	if err != nil {
		return nil, translate(err)
	}
	return entries, nil
}
