package repository

import (
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	GetByOrderID(orderID uint) ([]models.OrderItem, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var orderItems []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Order("id ASC").Find(&orderItems).Error
	if err != nil {
		return nil, translate(err)
	}
	return orderItems, nil
}
