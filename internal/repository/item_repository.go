package repository

import (
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"

	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(item *models.Item) error
	GetByID(id uint) (*models.Item, error)
	GetByBranch(branchID uint) ([]models.Item, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(item *models.Item) error {
	return translate(r.db.Create(item).Error)
}

func (r *itemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *itemRepository) GetByBranch(branchID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("branch_id = ?", branchID).Order("id ASC").Find(&items).Error
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}
