package services

import (
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/apperrors"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/repository"
)

type InventoryService interface {
	SetStock(entry *models.Inventory) error
	GetLowStock(branchID uint) ([]models.Inventory, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
}

func NewInventoryService(inventoryRepo repository.InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

func (s *inventoryService) SetStock(entry *models.Inventory) error {
	if entry.BranchID == 0 {
		return apperrors.ValidationError{Field: "branch_id", Message: "branch is required"}
	}
	if entry.ItemName == "" {
		return apperrors.ValidationError{Field: "item_name", Message: "item name is required"}
	}
	if entry.Stock < 0 {
		return apperrors.ValidationError{Field: "stock", Message: "stock cannot be negative"}
	}
	return s.inventoryRepo.UpsertStock(entry)
}

func (s *inventoryService) GetLowStock(branchID uint) ([]models.Inventory, error) {
	return s.inventoryRepo.GetLowStock(branchID)
}
